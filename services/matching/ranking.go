package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	washerRepo "washly/database/repository/washer"
	"washly/models"
)

// RankedWasher pairs a washer with its computed score and distance from the
// search centre, in km.
type RankedWasher struct {
	Washer     models.Washer
	RankPoints float64
	Proximity  float64
}

const (
	maxLocationPoints = 45.0
	availableBonus    = 20.0
	maxReviewPoints   = 20.0
	maxRatingPoints   = 15.0
	searchRadiusKm    = 5.0
	candidateLimit    = 6
)

// rankWashers scores the catalogue around a centre point and returns the
// ranked candidate list the flow reveals.
func rankWashers(ctx context.Context, repo washerRepo.WasherRepository, center models.GeoPoint) ([]models.WasherDTO, error) {
	washers, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load washer catalogue: %w", err)
	}
	if len(washers) == 0 {
		return []models.WasherDTO{}, nil
	}

	computeLocationScore := func(distanceKm float64) float64 {
		if distanceKm >= searchRadiusKm {
			return 0
		}
		return maxLocationPoints * (1 - distanceKm/searchRadiusKm)
	}
	computeReviewScore := func(reviews int) float64 {
		return math.Log10(float64(reviews+1)) * maxReviewPoints / math.Log10(101)
	}
	computeRatingScore := func(rating float64) float64 {
		if rating > 5 {
			rating = 5
		}
		return (rating / 5) * maxRatingPoints
	}

	resultsCh := make(chan RankedWasher, len(washers))
	var wg sync.WaitGroup

	for _, w := range washers {
		wg.Add(1)
		go func(w models.Washer) {
			defer wg.Done()
			distanceKm := haversine(center.Latitude, center.Longitude, w.Location.Latitude, w.Location.Longitude)
			var availScore float64
			if w.Status == models.WasherAvailable {
				availScore = availableBonus
			}
			points := computeLocationScore(distanceKm) +
				availScore +
				computeReviewScore(w.Reviews) +
				computeRatingScore(w.Rating)

			resultsCh <- RankedWasher{
				Washer:     w,
				RankPoints: points,
				Proximity:  distanceKm,
			}
		}(w)
	}

	wg.Wait()
	close(resultsCh)

	var ranked []RankedWasher
	for r := range resultsCh {
		ranked = append(ranked, r)
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].RankPoints > ranked[j].RankPoints
	})
	if len(ranked) > candidateLimit {
		ranked = ranked[:candidateLimit]
	}

	var dtos []models.WasherDTO
	for i, r := range ranked {
		dtos = append(dtos, models.WasherDTO{
			Washer:    r.Washer,
			Preferred: i == 0,
			// Convert km to metres.
			Proximity: r.Proximity * 1000,
		})
	}
	return dtos, nil
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
