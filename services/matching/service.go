package matching

import (
	"context"
	"encoding/json"
	"sync"

	washerRepo "washly/database/repository/washer"
	"washly/models"
	"washly/services/session"
	"washly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service manages matching flows end to end: start, inspect, select,
// confirm into a booking, cancel.
type Service interface {
	StartFlow(ctx context.Context, center models.GeoPoint) (FlowSnapshot, error)
	GetFlow(flowID string) (FlowSnapshot, error)
	SelectWasher(flowID, washerID string) (FlowSnapshot, error)
	ConfirmFlow(flowID string) (*models.Booking, error)
	CancelFlow(flowID string) error
	NearbyWashers(ctx context.Context, center models.GeoPoint) ([]models.WasherDTO, error)
}

// DefaultMatchingService implements Service with an in-memory flow registry.
// Snapshots are mirrored to Redis best-effort so other instances can read
// flow progress; the registry stays authoritative.
type DefaultMatchingService struct {
	WasherRepo washerRepo.WasherRepository
	Store      session.Store
	Cache      *redis.Client
	Schedule   Scheduler
	Logger     *zap.Logger

	mu    sync.RWMutex
	flows map[string]*Flow
}

// NewMatchingService wires a matching service over the washer catalogue and
// the session store.
func NewMatchingService(repo washerRepo.WasherRepository, store session.Store, cache *redis.Client, logger *zap.Logger) *DefaultMatchingService {
	return &DefaultMatchingService{
		WasherRepo: repo,
		Store:      store,
		Cache:      cache,
		Schedule:   RealScheduler,
		Logger:     logger,
		flows:      make(map[string]*Flow),
	}
}

func (s *DefaultMatchingService) StartFlow(ctx context.Context, center models.GeoPoint) (FlowSnapshot, error) {
	candidates, err := rankWashers(ctx, s.WasherRepo, center)
	if err != nil {
		return FlowSnapshot{}, err
	}

	flowID := uuid.New().String()
	flow := StartFlow(flowID, candidates, s.Schedule, s.cacheSnapshot, s.Logger)

	s.mu.Lock()
	s.flows[flowID] = flow
	s.mu.Unlock()

	snap := flow.Snapshot()
	s.cacheSnapshot(snap)
	return snap, nil
}

func (s *DefaultMatchingService) GetFlow(flowID string) (FlowSnapshot, error) {
	flow, err := s.lookup(flowID)
	if err != nil {
		return FlowSnapshot{}, err
	}
	return flow.Snapshot(), nil
}

func (s *DefaultMatchingService) SelectWasher(flowID, washerID string) (FlowSnapshot, error) {
	flow, err := s.lookup(flowID)
	if err != nil {
		return FlowSnapshot{}, err
	}
	return flow.Select(washerID)
}

// ConfirmFlow finalizes the flow: the wallet debit and activity append happen
// as one step inside the session store.
func (s *DefaultMatchingService) ConfirmFlow(flowID string) (*models.Booking, error) {
	flow, err := s.lookup(flowID)
	if err != nil {
		return nil, err
	}
	washer, err := flow.Confirm()
	if err != nil {
		return nil, err
	}

	booking, err := s.Store.ConfirmBooking(washer.ID, washer.Name, washer.Price)
	if err != nil {
		return nil, err
	}

	s.remove(flowID)
	return booking, nil
}

func (s *DefaultMatchingService) CancelFlow(flowID string) error {
	flow, err := s.lookup(flowID)
	if err != nil {
		return err
	}
	flow.Cancel()
	s.remove(flowID)
	return nil
}

// NearbyWashers exposes the ranked catalogue without starting a flow.
func (s *DefaultMatchingService) NearbyWashers(ctx context.Context, center models.GeoPoint) ([]models.WasherDTO, error) {
	return rankWashers(ctx, s.WasherRepo, center)
}

func (s *DefaultMatchingService) lookup(flowID string) (*Flow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	flow, ok := s.flows[flowID]
	if !ok {
		return nil, ErrFlowNotFound
	}
	return flow, nil
}

func (s *DefaultMatchingService) remove(flowID string) {
	s.mu.Lock()
	delete(s.flows, flowID)
	s.mu.Unlock()
	if s.Cache != nil {
		s.Cache.Del(context.Background(), utils.FlowCachePrefix+flowID)
	}
}

// cacheSnapshot mirrors flow state to Redis. Failures are logged and masked;
// the in-memory flow remains authoritative.
func (s *DefaultMatchingService) cacheSnapshot(snap FlowSnapshot) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		s.Logger.Warn("failed to marshal flow snapshot", zap.Error(err))
		return
	}
	key := utils.FlowCachePrefix + snap.FlowID
	if err := s.Cache.Set(context.Background(), key, data, utils.FlowCacheTTL).Err(); err != nil {
		s.Logger.Warn("failed to cache flow snapshot",
			zap.String("flow", snap.FlowID),
			zap.Error(err))
	}
}
