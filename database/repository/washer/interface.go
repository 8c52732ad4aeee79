package washerRepo

import (
	"context"

	"washly/models"
)

// WasherRepository provides read access to the washer catalogue.
type WasherRepository interface {
	GetAll(ctx context.Context) ([]models.Washer, error)
	GetByID(ctx context.Context, id string) (*models.Washer, error)
	// Seed inserts the fixture catalogue when the collection is empty.
	Seed(ctx context.Context) error
}
