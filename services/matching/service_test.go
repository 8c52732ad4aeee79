package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"washly/models"
	"washly/services/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memWasherRepo serves a fixed catalogue without Mongo.
type memWasherRepo struct {
	washers []models.Washer
}

func (r *memWasherRepo) GetAll(ctx context.Context) ([]models.Washer, error) {
	return r.washers, nil
}

func (r *memWasherRepo) GetByID(ctx context.Context, id string) (*models.Washer, error) {
	for i := range r.washers {
		if r.washers[i].ID == id {
			return &r.washers[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *memWasherRepo) Seed(ctx context.Context) error { return nil }

func testCatalogue() []models.Washer {
	return []models.Washer{
		{ID: "w1", Name: "Karim B.", Rating: 4.9, Reviews: 127, Status: models.WasherAvailable, Price: 3000,
			Location: models.GeoPoint{Latitude: 36.7538, Longitude: 3.0588}},
		{ID: "w2", Name: "Sofiane M.", Rating: 4.7, Reviews: 89, Status: models.WasherAvailable, Price: 2800,
			Location: models.GeoPoint{Latitude: 36.7581, Longitude: 3.0521}},
		{ID: "w3", Name: "Yacine T.", Rating: 4.8, Reviews: 203, Status: models.WasherBusy, Price: 3200,
			Location: models.GeoPoint{Latitude: 36.7492, Longitude: 3.0642}},
	}
}

func newTestService(t *testing.T) (*DefaultMatchingService, *session.DefaultStore, *fakeClock) {
	t.Helper()
	store := session.NewStore(zap.NewNop())
	svc := NewMatchingService(&memWasherRepo{washers: testCatalogue()}, store, nil, zap.NewNop())
	clock := &fakeClock{}
	svc.Schedule = clock.schedule
	return svc, store, clock
}

var testCenter = models.GeoPoint{Latitude: 36.7538, Longitude: 3.0588}

func TestStartFlowRanksCatalogue(t *testing.T) {
	svc, _, clock := newTestService(t)

	snap, err := svc.StartFlow(context.Background(), testCenter)
	require.NoError(t, err)
	assert.Equal(t, PhaseInitializing, snap.Phase)
	assert.Empty(t, snap.Candidates)

	clock.advanceTo(11 * time.Second)
	snap, err = svc.GetFlow(snap.FlowID)
	require.NoError(t, err)
	assert.Equal(t, PhaseFound, snap.Phase)
	require.Len(t, snap.Candidates, 3)
	assert.True(t, snap.Candidates[0].Preferred)
	// w1 sits on the search centre and is available, so it ranks first.
	assert.Equal(t, "w1", snap.Candidates[0].ID)
}

func TestConfirmFlowDebitsAndRecords(t *testing.T) {
	svc, store, clock := newTestService(t)
	store.CreditWallet(10000, "seed", "recharge")

	snap, err := svc.StartFlow(context.Background(), testCenter)
	require.NoError(t, err)
	clock.advanceTo(11 * time.Second)

	_, err = svc.SelectWasher(snap.FlowID, "w1")
	require.NoError(t, err)

	booking, err := svc.ConfirmFlow(snap.FlowID)
	require.NoError(t, err)
	assert.Equal(t, "w1", booking.WasherID)
	assert.Equal(t, 3000, booking.Price)
	assert.Equal(t, 7000, store.Balance())
	require.Len(t, store.Activities(), 1)

	// The flow is gone once confirmed.
	_, err = svc.GetFlow(snap.FlowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestCancelFlowRemovesIt(t *testing.T) {
	svc, store, clock := newTestService(t)

	snap, err := svc.StartFlow(context.Background(), testCenter)
	require.NoError(t, err)
	clock.advanceTo(3 * time.Second)

	require.NoError(t, svc.CancelFlow(snap.FlowID))
	_, err = svc.GetFlow(snap.FlowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)

	// Cancellation leaves the session untouched.
	assert.Zero(t, store.Balance())
	assert.Empty(t, store.Activities())
}

func TestNearbyWashers(t *testing.T) {
	svc, _, _ := newTestService(t)

	washers, err := svc.NearbyWashers(context.Background(), testCenter)
	require.NoError(t, err)
	require.Len(t, washers, 3)
	assert.True(t, washers[0].Preferred)
	assert.Equal(t, "w1", washers[0].ID)
}
