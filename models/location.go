package models

// RecentLocation is a previously confirmed pickup address cached for quick
// re-selection. The list is capped and deduplicated by label.
type RecentLocation struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodeResult is one ranked hit from a forward geocode search.
type GeocodeResult struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
