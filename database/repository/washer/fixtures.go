package washerRepo

import "washly/models"

// CatalogueFixtures is the seed washer catalogue. The matching flow reveals a
// ranked prefix of this set; entries are reference data and never mutated.
var CatalogueFixtures = []models.Washer{
	{
		ID:       "washer-001",
		Name:     "Karim B.",
		Phone:    "+213550112233",
		Rating:   4.9,
		Reviews:  127,
		Distance: "0.8 km",
		Time:     "5 min",
		Location: models.GeoPoint{Latitude: 36.7538, Longitude: 3.0588},
		Status:   models.WasherAvailable,
		Badges:   []string{"top_rated", "eco_wash"},
		Price:    3000,
	},
	{
		ID:       "washer-002",
		Name:     "Sofiane M.",
		Phone:    "+213661445566",
		Rating:   4.7,
		Reviews:  89,
		Distance: "1.2 km",
		Time:     "8 min",
		Location: models.GeoPoint{Latitude: 36.7581, Longitude: 3.0521},
		Status:   models.WasherAvailable,
		Badges:   []string{"fast_service"},
		Price:    2800,
	},
	{
		ID:       "washer-003",
		Name:     "Yacine T.",
		Phone:    "+213770998877",
		Rating:   4.8,
		Reviews:  203,
		Distance: "1.5 km",
		Time:     "10 min",
		Location: models.GeoPoint{Latitude: 36.7492, Longitude: 3.0642},
		Status:   models.WasherBusy,
		Badges:   []string{"top_rated"},
		Price:    3200,
	},
	{
		ID:       "washer-004",
		Name:     "Amine K.",
		Phone:    "+213540223344",
		Rating:   4.5,
		Reviews:  56,
		Distance: "2.1 km",
		Time:     "14 min",
		Location: models.GeoPoint{Latitude: 36.7610, Longitude: 3.0450},
		Status:   models.WasherAvailable,
		Badges:   []string{"eco_wash"},
		Price:    2700,
	},
	{
		ID:       "washer-005",
		Name:     "Mehdi L.",
		Phone:    "+213660334455",
		Rating:   4.6,
		Reviews:  74,
		Distance: "2.6 km",
		Time:     "17 min",
		Location: models.GeoPoint{Latitude: 36.7455, Longitude: 3.0701},
		Status:   models.WasherOffline,
		Badges:   nil,
		Price:    2900,
	},
	{
		ID:       "washer-006",
		Name:     "Rachid H.",
		Phone:    "+213770556677",
		Rating:   4.4,
		Reviews:  41,
		Distance: "3.0 km",
		Time:     "20 min",
		Location: models.GeoPoint{Latitude: 36.7390, Longitude: 3.0489},
		Status:   models.WasherAvailable,
		Badges:   []string{"fast_service"},
		Price:    2600,
	},
}
