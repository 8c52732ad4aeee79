package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"washly/models"
	"washly/services/booking"
	"washly/services/session"
	"washly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service handles wallet top-ups, withdrawals and the visibility flag.
type Service interface {
	Recharge(ctx context.Context, req models.RechargeRequest) (*RechargeResult, error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (*models.WalletTransaction, error)
	Balance() int
	Transactions() []models.WalletTransaction
	BalanceHidden(ctx context.Context) bool
	SetBalanceHidden(ctx context.Context, hidden bool)
}

// RechargeResult reports a top-up with its commission breakdown.
type RechargeResult struct {
	Amount      int                      `json:"amount"`
	Commission  int                      `json:"commission"`
	Credited    int                      `json:"credited"`
	Method      string                   `json:"method"`
	Transaction models.WalletTransaction `json:"transaction"`
}

// DefaultWalletService implements Service over the session store, with the
// visibility flag persisted in Redis.
type DefaultWalletService struct {
	Store  session.Store
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewWalletService(store session.Store, cache *redis.Client, logger *zap.Logger) *DefaultWalletService {
	return &DefaultWalletService{
		Store:  store,
		Cache:  cache,
		Logger: logger,
	}
}

// Recharge validates the request, deducts the per-method commission and
// credits the remainder.
func (s *DefaultWalletService) Recharge(ctx context.Context, req models.RechargeRequest) (*RechargeResult, error) {
	if err := validateRecharge(req); err != nil {
		return nil, fmt.Errorf("invalid recharge request: %w", err)
	}
	rate, err := booking.CommissionRate(req.Method)
	if err != nil {
		return nil, err
	}

	commission := booking.RechargeCommission(req.Amount, rate)
	credited := req.Amount - commission
	tx := s.Store.CreditWallet(credited, fmt.Sprintf("Recharge via %s", req.Method), "recharge")

	s.Logger.Info("wallet recharged",
		zap.Int("amount", req.Amount),
		zap.Int("commission", commission),
		zap.String("method", req.Method))

	return &RechargeResult{
		Amount:      req.Amount,
		Commission:  commission,
		Credited:    credited,
		Method:      req.Method,
		Transaction: tx,
	}, nil
}

// Withdraw validates the amount and delegates to the store, which rejects
// overdrafts and debits under a single lock. Unlike a scheduling debit, a
// withdrawal above the balance fails outright rather than clamping.
func (s *DefaultWalletService) Withdraw(ctx context.Context, req models.WithdrawRequest) (*models.WalletTransaction, error) {
	if req.Amount <= 0 {
		return nil, errors.New("withdrawal amount must be positive")
	}
	tx, err := s.Store.WithdrawWallet(req.Amount, "Withdrawal", "withdrawal")
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *DefaultWalletService) Balance() int {
	return s.Store.Balance()
}

func (s *DefaultWalletService) Transactions() []models.WalletTransaction {
	return s.Store.Transactions()
}

// BalanceHidden reads the persisted visibility flag. Storage failures are
// masked as "visible", matching the degrade-to-default policy.
func (s *DefaultWalletService) BalanceHidden(ctx context.Context) bool {
	if s.Cache == nil {
		return false
	}
	raw, err := s.Cache.Get(ctx, utils.PrefsBalanceHiddenKey).Result()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Warn("failed to read balance visibility", zap.Error(err))
		}
		return false
	}
	var hidden bool
	if err := json.Unmarshal([]byte(raw), &hidden); err != nil {
		s.Logger.Warn("corrupt balance visibility value", zap.Error(err))
		return false
	}
	return hidden
}

// SetBalanceHidden persists the visibility flag. Failures are logged and
// swallowed; the caller proceeds as if the write succeeded.
func (s *DefaultWalletService) SetBalanceHidden(ctx context.Context, hidden bool) {
	if s.Cache == nil {
		return
	}
	data, _ := json.Marshal(hidden)
	if err := s.Cache.Set(ctx, utils.PrefsBalanceHiddenKey, data, 0).Err(); err != nil {
		s.Logger.Warn("failed to persist balance visibility", zap.Error(err))
	}
}

func validateRecharge(req models.RechargeRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid recharge amount")
	}
	if req.Method == "" {
		return errors.New("missing payment method")
	}
	return nil
}
