package session

import (
	"errors"
	"sync"
	"time"

	"washly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInsufficientBalance rejects a withdrawal exceeding the current balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Store is the single source of truth for the in-progress booking context,
// wallet balance and activity history. Every mutator enforces its own
// invariants internally; callers never see intermediate state.
type Store interface {
	Snapshot() models.SessionState
	SetProfile(phone, firstName, lastName, email string)
	SetLocation(label string, coords *models.GeoPoint)
	SetVehicle(v models.VehicleType)
	SetWashType(w models.WashType)

	Balance() int
	// CreditWallet adds the amount to the balance and appends a credit entry.
	CreditWallet(amount int, description, category string) models.WalletTransaction
	// DebitWallet subtracts the amount, clamping the balance at zero, and
	// appends a debit entry for the amount actually debited. It returns that
	// amount alongside the entry.
	DebitWallet(amount int, description, category string) (int, models.WalletTransaction)
	// WithdrawWallet debits the exact amount, or fails with
	// ErrInsufficientBalance when the balance cannot cover it. The check and
	// the debit happen under one lock, so concurrent withdrawals cannot both
	// pass against the same funds.
	WithdrawWallet(amount int, description, category string) (models.WalletTransaction, error)
	AddTransaction(tx models.WalletTransaction)
	Transactions() []models.WalletTransaction

	// RecordActivity appends the activity unless an entry with the same ID
	// already exists, in which case it is a no-op. Returns true on insert.
	RecordActivity(a models.Activity) bool
	// UpdateActivityRating sets the rating on the activity with the given ID.
	// Unknown IDs leave the list unchanged and return false.
	UpdateActivityRating(id string, rating float64) bool
	Activities() []models.Activity

	// ConfirmBooking debits the wallet and records the activity as one
	// atomic step. The debit is clamped at zero like DebitWallet.
	ConfirmBooking(washerID, washerName string, price int) (*models.Booking, error)

	Reset()
}

// DefaultStore implements Store with a mutex-guarded SessionState.
type DefaultStore struct {
	mu     sync.RWMutex
	state  models.SessionState
	logger *zap.Logger
}

// NewStore returns an empty session store.
func NewStore(logger *zap.Logger) *DefaultStore {
	return &DefaultStore{
		state:  defaultState(),
		logger: logger,
	}
}

func defaultState() models.SessionState {
	return models.SessionState{
		SelectedVehicle:  models.VehicleBerline,
		SelectedWashType: models.WashExterior,
		WalletBalance:    0,
	}
}

// Snapshot returns a deep copy of the current session state.
func (s *DefaultStore) Snapshot() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyStateLocked()
}

func (s *DefaultStore) copyStateLocked() models.SessionState {
	out := s.state
	out.Activities = append([]models.Activity(nil), s.state.Activities...)
	out.Transactions = append([]models.WalletTransaction(nil), s.state.Transactions...)
	if s.state.SelectedLocationCoords != nil {
		coords := *s.state.SelectedLocationCoords
		out.SelectedLocationCoords = &coords
	}
	return out
}

func (s *DefaultStore) SetProfile(phone, firstName, lastName, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Phone = phone
	s.state.FirstName = firstName
	s.state.LastName = lastName
	s.state.Email = email
}

func (s *DefaultStore) SetLocation(label string, coords *models.GeoPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedLocation = label
	if coords != nil {
		c := *coords
		s.state.SelectedLocationCoords = &c
	} else {
		// Manual text entry carries no coordinates.
		s.state.SelectedLocationCoords = nil
	}
}

func (s *DefaultStore) SetVehicle(v models.VehicleType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedVehicle = v
}

func (s *DefaultStore) SetWashType(w models.WashType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedWashType = w
}

func (s *DefaultStore) Balance() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.WalletBalance
}

func (s *DefaultStore) CreditWallet(amount int, description, category string) models.WalletTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.WalletBalance += amount
	tx := models.WalletTransaction{
		ID:          uuid.New().String(),
		Type:        models.TransactionCredit,
		Amount:      amount,
		Description: description,
		Date:        time.Now(),
		Status:      models.TransactionCompleted,
		Category:    category,
	}
	s.state.Transactions = append(s.state.Transactions, tx)
	s.logger.Info("wallet credited",
		zap.Int("amount", amount),
		zap.Int("balance", s.state.WalletBalance))
	return tx
}

func (s *DefaultStore) DebitWallet(amount int, description, category string) (int, models.WalletTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	debited, tx := s.debitLocked(amount, description, category)
	return debited, tx
}

// debitLocked applies a zero-clamped debit. Callers must hold the write lock.
// The ledger entry records the amount actually debited, so summing the
// ledger always reconciles with the balance even after a clamp.
func (s *DefaultStore) debitLocked(amount int, description, category string) (int, models.WalletTransaction) {
	debited := amount
	if debited > s.state.WalletBalance {
		debited = s.state.WalletBalance
	}
	s.state.WalletBalance -= debited

	tx := models.WalletTransaction{
		ID:          uuid.New().String(),
		Type:        models.TransactionDebit,
		Amount:      debited,
		Description: description,
		Date:        time.Now(),
		Status:      models.TransactionCompleted,
		Category:    category,
	}
	s.state.Transactions = append(s.state.Transactions, tx)
	s.logger.Info("wallet debited",
		zap.Int("requested", amount),
		zap.Int("debited", debited),
		zap.Int("balance", s.state.WalletBalance))
	return debited, tx
}

func (s *DefaultStore) WithdrawWallet(amount int, description, category string) (models.WalletTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount > s.state.WalletBalance {
		s.logger.Warn("withdrawal rejected",
			zap.Int("requested", amount),
			zap.Int("balance", s.state.WalletBalance))
		return models.WalletTransaction{}, ErrInsufficientBalance
	}
	_, tx := s.debitLocked(amount, description, category)
	return tx, nil
}

// AddTransaction appends a pre-built ledger entry unconditionally.
func (s *DefaultStore) AddTransaction(tx models.WalletTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Transactions = append(s.state.Transactions, tx)
}

func (s *DefaultStore) Transactions() []models.WalletTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WalletTransaction(nil), s.state.Transactions...)
}

func (s *DefaultStore) RecordActivity(a models.Activity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordActivityLocked(a)
}

func (s *DefaultStore) recordActivityLocked(a models.Activity) bool {
	for _, existing := range s.state.Activities {
		if existing.ID == a.ID {
			s.logger.Debug("duplicate activity ignored", zap.String("id", a.ID))
			return false
		}
	}
	// Most-recent-first.
	s.state.Activities = append([]models.Activity{a}, s.state.Activities...)
	return true
}

func (s *DefaultStore) UpdateActivityRating(id string, rating float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Activities {
		if s.state.Activities[i].ID == id {
			r := rating
			s.state.Activities[i].Rating = &r
			return true
		}
	}
	return false
}

func (s *DefaultStore) Activities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Activity(nil), s.state.Activities...)
}

// ConfirmBooking performs the debit and the activity append under one lock so
// no reader can observe a debited wallet without its activity record.
func (s *DefaultStore) ConfirmBooking(washerID, washerName string, price int) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	activity := models.Activity{
		ID:      uuid.New().String(),
		Status:  models.ActivityPending,
		Title:   string(s.state.SelectedWashType) + " wash",
		Vehicle: s.state.SelectedVehicle,
		Washer:  washerName,
		Date:    now.Format("02/01/2006 15:04"),
		Price:   price,
	}
	s.recordActivityLocked(activity)
	debited, _ := s.debitLocked(price, "Booking "+washerName, "booking")

	booking := &models.Booking{
		ActivityID: activity.ID,
		WasherID:   washerID,
		WasherName: washerName,
		Vehicle:    s.state.SelectedVehicle,
		WashType:   s.state.SelectedWashType,
		Location:   s.state.SelectedLocation,
		Price:      price,
		Debited:    debited,
		CreatedAt:  now,
	}
	s.logger.Info("booking confirmed",
		zap.String("washer", washerID),
		zap.Int("price", price),
		zap.Int("debited", debited))
	return booking, nil
}

// Reset restores every field to its initial default.
func (s *DefaultStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = defaultState()
}
