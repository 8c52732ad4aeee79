package models

// WasherStatus tells whether a washer can currently take a job.
type WasherStatus string

const (
	WasherAvailable WasherStatus = "available"
	WasherBusy      WasherStatus = "busy"
	WasherOffline   WasherStatus = "offline"
)

// Washer is a candidate revealed during the matching flow. Catalogue data is
// read-only reference data; nothing mutates a washer at runtime.
type Washer struct {
	ID       string       `bson:"id" json:"id"`
	Name     string       `bson:"name" json:"name"`
	Phone    string       `bson:"phone" json:"phone"`
	Rating   float64      `bson:"rating" json:"rating"`
	Reviews  int          `bson:"reviews" json:"reviews"`
	Distance string       `bson:"distance" json:"distance"`
	Time     string       `bson:"time" json:"time"`
	Location GeoPoint     `bson:"location" json:"location"`
	Status   WasherStatus `bson:"status" json:"status"`
	Badges   []string     `bson:"badges" json:"badges"`
	Price    int          `bson:"price" json:"price"`
}

// WasherDTO is the ranked view returned by proximity searches.
type WasherDTO struct {
	Washer
	Preferred bool    `json:"preferred"`
	Proximity float64 `json:"proximity"` // metres from the search centre
}
