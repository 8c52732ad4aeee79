package models

// ActivityStatus is the lifecycle state of a booking record.
type ActivityStatus string

const (
	ActivityPending   ActivityStatus = "pending"
	ActivityCompleted ActivityStatus = "completed"
	ActivityCancelled ActivityStatus = "cancelled"
)

// Activity is a historical or in-progress booking shown in the history screens.
// Records are append-only; the only in-place mutation is setting Rating once.
type Activity struct {
	ID      string         `json:"id"`
	Status  ActivityStatus `json:"status"`
	Title   string         `json:"title"`
	Vehicle VehicleType    `json:"vehicle"`
	Washer  string         `json:"washer"`
	Date    string         `json:"date"`
	Price   int            `json:"price"`
	Rating  *float64       `json:"rating,omitempty"`
}
