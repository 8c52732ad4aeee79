package geocode

import (
	"context"
	"fmt"

	"washly/models"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// FallbackLabel is returned when reverse geocoding yields nothing usable.
const FallbackLabel = "Position actuelle"

const maxResults = 5

// Service resolves free-text queries and coordinates against the geocoding
// backend. Both directions are best-effort: failures are logged and degrade
// to an empty result set or the fallback label.
type Service interface {
	Search(ctx context.Context, query string) []models.GeocodeResult
	Reverse(ctx context.Context, point models.GeoPoint) string
}

// MapsGeocodeService implements Service on the Google Maps client.
type MapsGeocodeService struct {
	client *maps.Client
	logger *zap.Logger
}

// NewMapsGeocodeService creates a geocode service with the given API key.
func NewMapsGeocodeService(apiKey string, logger *zap.Logger) (*MapsGeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &MapsGeocodeService{client: client, logger: logger}, nil
}

// Search forward-geocodes a free-text query into ranked results. Network or
// API failure yields an empty list.
func (s *MapsGeocodeService) Search(ctx context.Context, query string) []models.GeocodeResult {
	if query == "" {
		return []models.GeocodeResult{}
	}

	resp, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  query,
		Language: "fr",
		Region:   "dz",
	})
	if err != nil {
		s.logger.Warn("forward geocode failed", zap.String("query", query), zap.Error(err))
		return []models.GeocodeResult{}
	}

	var results []models.GeocodeResult
	for _, r := range resp {
		results = append(results, models.GeocodeResult{
			ID:        r.PlaceID,
			Label:     r.FormattedAddress,
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
		})
		if len(results) >= maxResults {
			break
		}
	}
	if results == nil {
		results = []models.GeocodeResult{}
	}
	return results
}

// Reverse resolves coordinates into a human-readable label, falling back to a
// fixed label on any failure or empty response.
func (s *MapsGeocodeService) Reverse(ctx context.Context, point models.GeoPoint) string {
	resp, err := s.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: point.Latitude, Lng: point.Longitude},
		Language: "fr",
	})
	if err != nil {
		s.logger.Warn("reverse geocode failed",
			zap.Float64("lat", point.Latitude),
			zap.Float64("lng", point.Longitude),
			zap.Error(err))
		return FallbackLabel
	}
	if len(resp) == 0 || resp[0].FormattedAddress == "" {
		return FallbackLabel
	}
	return resp[0].FormattedAddress
}
