package model

// ReverseGeocodeRequest carries the coordinates to resolve to a state/LGA.
type ReverseGeocodeRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

// StateCenter is one reference point of the nearest-center heuristic: a state
// capital with its coordinates and the capital's LGA.
type StateCenter struct {
	State string
	LGA   string
	Lat   float64
	Lng   float64
}

// Geocode confidence levels, derived from the distance to the nearest center.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ReverseGeocodeResult is the resolved state/LGA for a coordinate pair.
type ReverseGeocodeResult struct {
	State      string  `json:"state"`
	LGA        string  `json:"lga"`
	DistanceKm float64 `json:"distanceKm"`
	Confidence string  `json:"confidence"`
}
