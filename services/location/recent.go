package location

import (
	"context"
	"encoding/json"

	"washly/models"
	"washly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RecentLimit caps the persisted recent-locations list.
const RecentLimit = 5

// Service manages the persisted recent-locations list.
type Service interface {
	Recent(ctx context.Context) []models.RecentLocation
	AddRecent(ctx context.Context, loc models.RecentLocation) []models.RecentLocation
	ClearRecent(ctx context.Context)
}

// DefaultLocationService persists the list as a JSON array under one Redis
// key. Read and write failures degrade to an empty list, never to an error.
type DefaultLocationService struct {
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewLocationService(cache *redis.Client, logger *zap.Logger) *DefaultLocationService {
	return &DefaultLocationService{Cache: cache, Logger: logger}
}

func (s *DefaultLocationService) Recent(ctx context.Context) []models.RecentLocation {
	if s.Cache == nil {
		return []models.RecentLocation{}
	}
	raw, err := s.Cache.Get(ctx, utils.PrefsRecentLocationsKey).Result()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Warn("failed to read recent locations", zap.Error(err))
		}
		return []models.RecentLocation{}
	}
	var list []models.RecentLocation
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.Logger.Warn("corrupt recent locations value", zap.Error(err))
		return []models.RecentLocation{}
	}
	return list
}

// AddRecent pushes a confirmed location to the front of the list and persists
// the result. Returns the updated list.
func (s *DefaultLocationService) AddRecent(ctx context.Context, loc models.RecentLocation) []models.RecentLocation {
	list := PushRecent(s.Recent(ctx), loc, RecentLimit)
	if s.Cache != nil {
		data, _ := json.Marshal(list)
		if err := s.Cache.Set(ctx, utils.PrefsRecentLocationsKey, data, 0).Err(); err != nil {
			s.Logger.Warn("failed to persist recent locations", zap.Error(err))
		}
	}
	return list
}

func (s *DefaultLocationService) ClearRecent(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.PrefsRecentLocationsKey).Err(); err != nil {
		s.Logger.Warn("failed to clear recent locations", zap.Error(err))
	}
}

// PushRecent inserts loc at the front, removes any earlier entry with the
// same label, and truncates to limit. Most-recent-first order is preserved.
func PushRecent(list []models.RecentLocation, loc models.RecentLocation, limit int) []models.RecentLocation {
	out := []models.RecentLocation{loc}
	for _, existing := range list {
		if existing.Label == loc.Label {
			continue
		}
		out = append(out, existing)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
