package session

import (
	"sync"
	"sync/atomic"
	"testing"

	"washly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore() *DefaultStore {
	return NewStore(zap.NewNop())
}

func TestLastWriteWins(t *testing.T) {
	s := newTestStore()

	s.SetVehicle(models.VehicleCompacte)
	s.SetVehicle(models.VehicleSUV)
	assert.Equal(t, models.VehicleSUV, s.Snapshot().SelectedVehicle)

	s.SetWashType(models.WashInterior)
	s.SetWashType(models.WashComplete)
	assert.Equal(t, models.WashComplete, s.Snapshot().SelectedWashType)

	s.SetLocation("Alger Centre", &models.GeoPoint{Latitude: 36.75, Longitude: 3.06})
	s.SetLocation("Hydra", nil)
	snap := s.Snapshot()
	assert.Equal(t, "Hydra", snap.SelectedLocation)
	assert.Nil(t, snap.SelectedLocationCoords, "manual entry clears coordinates")
}

func TestRecordActivityIdempotent(t *testing.T) {
	s := newTestStore()

	a := models.Activity{ID: "act-1", Status: models.ActivityPending, Title: "complete wash"}
	assert.True(t, s.RecordActivity(a))
	assert.False(t, s.RecordActivity(a), "second insert with same id is a no-op")
	assert.Len(t, s.Activities(), 1)
}

func TestActivitiesMostRecentFirst(t *testing.T) {
	s := newTestStore()

	s.RecordActivity(models.Activity{ID: "act-1"})
	s.RecordActivity(models.Activity{ID: "act-2"})
	acts := s.Activities()
	require.Len(t, acts, 2)
	assert.Equal(t, "act-2", acts[0].ID)
}

func TestUpdateActivityRating(t *testing.T) {
	s := newTestStore()
	s.RecordActivity(models.Activity{ID: "act-1"})

	assert.False(t, s.UpdateActivityRating("missing", 5), "unknown id leaves the list unchanged")
	assert.Nil(t, s.Activities()[0].Rating)

	assert.True(t, s.UpdateActivityRating("act-1", 4.5))
	require.NotNil(t, s.Activities()[0].Rating)
	assert.Equal(t, 4.5, *s.Activities()[0].Rating)
}

func TestDebitClampsAtZero(t *testing.T) {
	s := newTestStore()
	s.CreditWallet(2000, "seed", "recharge")

	debited, _ := s.DebitWallet(5000, "Booking", "booking")
	assert.Equal(t, 2000, debited)
	assert.Equal(t, 0, s.Balance(), "balance clamps at zero, never negative")
}

func TestClampedDebitLedgerRecordsDebitedAmount(t *testing.T) {
	s := newTestStore()
	s.CreditWallet(2000, "seed", "recharge")

	debited, tx := s.DebitWallet(5000, "Booking", "booking")
	assert.Equal(t, 2000, debited)
	assert.Equal(t, 2000, tx.Amount, "ledger records what was taken, not what was asked")

	// Credits minus debits reconcile with the balance.
	total := 0
	for _, entry := range s.Transactions() {
		if entry.Type == models.TransactionCredit {
			total += entry.Amount
		} else {
			total -= entry.Amount
		}
	}
	assert.Equal(t, s.Balance(), total)
}

func TestWithdrawWalletRejectsOverdraft(t *testing.T) {
	s := newTestStore()
	s.CreditWallet(2000, "seed", "recharge")

	_, err := s.WithdrawWallet(5000, "Withdrawal", "withdrawal")
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 2000, s.Balance(), "rejected withdrawal leaves the balance untouched")
	assert.Len(t, s.Transactions(), 1, "no ledger entry for a rejected withdrawal")
}

func TestWithdrawWalletConcurrentOverdraft(t *testing.T) {
	s := newTestStore()
	s.CreditWallet(5000, "seed", "recharge")

	var wg sync.WaitGroup
	var successes int64
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.WithdrawWallet(1000, "Withdrawal", "withdrawal"); err == nil {
				atomic.AddInt64(&successes, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 5, successes, "only as many withdrawals succeed as the balance covers")
	assert.Equal(t, 0, s.Balance())
	assert.Len(t, s.Transactions(), 6, "one seed credit plus one debit per successful withdrawal")
}

func TestConfirmBookingAtomicEffects(t *testing.T) {
	s := newTestStore()
	s.CreditWallet(10000, "seed", "recharge")
	s.SetVehicle(models.VehicleBerline)
	s.SetWashType(models.WashComplete)
	s.SetLocation("Alger Centre", &models.GeoPoint{Latitude: 36.75, Longitude: 3.06})

	booking, err := s.ConfirmBooking("washer-001", "Karim B.", 5000)
	require.NoError(t, err)
	assert.Equal(t, 5000, booking.Debited)
	assert.Equal(t, 5000, s.Balance())

	acts := s.Activities()
	require.Len(t, acts, 1)
	assert.Equal(t, booking.ActivityID, acts[0].ID)
	assert.Equal(t, models.ActivityPending, acts[0].Status)
	assert.Equal(t, "Karim B.", acts[0].Washer)

	// Two ledger entries: the seed credit and the booking debit.
	txs := s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, models.TransactionDebit, txs[1].Type)
}

func TestConfirmBookingClampsDebit(t *testing.T) {
	s := newTestStore()
	s.CreditWallet(2000, "seed", "recharge")

	booking, err := s.ConfirmBooking("washer-001", "Karim B.", 5000)
	require.NoError(t, err)
	assert.Equal(t, 2000, booking.Debited)
	assert.Equal(t, 5000, booking.Price)
	assert.Equal(t, 0, s.Balance())
}

func TestAddTransactionHasNoIdempotencyGuard(t *testing.T) {
	s := newTestStore()
	tx := models.WalletTransaction{ID: "tx-1", Type: models.TransactionCredit, Amount: 100}

	s.AddTransaction(tx)
	s.AddTransaction(tx)
	assert.Len(t, s.Transactions(), 2, "duplicate submissions produce duplicate entries")
}

func TestReset(t *testing.T) {
	s := newTestStore()
	s.SetProfile("0550112233", "Nadia", "B.", "nadia@example.com")
	s.CreditWallet(4000, "seed", "recharge")
	s.RecordActivity(models.Activity{ID: "act-1"})

	s.Reset()
	snap := s.Snapshot()
	assert.Empty(t, snap.Phone)
	assert.Zero(t, snap.WalletBalance)
	assert.Empty(t, snap.Activities)
	assert.Empty(t, snap.Transactions)
	assert.Equal(t, models.VehicleBerline, snap.SelectedVehicle)
}
