package model

import "github.com/paulmach/orb"

// LatLng is the basic coordinate pair used across the matching and geocoding services.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts to an orb.Point ([lng, lat] order, as orb expects).
func (l LatLng) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// LatLngFromPoint converts an orb.Point back to a LatLng.
func LatLngFromPoint(p orb.Point) LatLng {
	return LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// LawFirm is a single record in the firm directory.
//
// The identity, location, contact and classification fields are immutable seed
// data. The annotation fields (Distance, MatchTier, MatchReason, Priority and
// the map URLs) are written once per matching request, always on a clone of
// the seed record, never on the shared directory copy.
type LawFirm struct {
	Name          string   `json:"name"`
	ContactPerson string   `json:"contactPerson,omitempty"`
	Source        string   `json:"source"`
	Location      string   `json:"location"`
	Address       string   `json:"address,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Email         string   `json:"email,omitempty"`
	Website       string   `json:"website,omitempty"`
	PracticeAreas []string `json:"practiceAreas"`
	MatchScore    int      `json:"matchScore"`

	// Per-request annotations.
	Distance      *float64 `json:"distance,omitempty"`
	MatchTier     string   `json:"matchTier,omitempty"`
	MatchReason   string   `json:"matchReason,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	MapURL        string   `json:"mapUrl,omitempty"`
	DirectionsURL string   `json:"directionsUrl,omitempty"`
}

// HasCoordinates reports whether the firm has a usable lat/lng pair.
func (f *LawFirm) HasCoordinates() bool {
	return f.Latitude != nil && f.Longitude != nil
}

// ToLatLng returns the firm's coordinates, or the zero value when absent.
func (f *LawFirm) ToLatLng() LatLng {
	if !f.HasCoordinates() {
		return LatLng{}
	}
	return LatLng{Lat: *f.Latitude, Lng: *f.Longitude}
}

// Clone returns a deep copy of the firm, safe to annotate per request.
func (f LawFirm) Clone() LawFirm {
	clone := f
	clone.PracticeAreas = append([]string(nil), f.PracticeAreas...)
	if f.Latitude != nil {
		lat := *f.Latitude
		clone.Latitude = &lat
	}
	if f.Longitude != nil {
		lng := *f.Longitude
		clone.Longitude = &lng
	}
	if f.Distance != nil {
		d := *f.Distance
		clone.Distance = &d
	}
	return clone
}

// CloneFirms deep-copies a slice of firms.
func CloneFirms(firms []LawFirm) []LawFirm {
	if firms == nil {
		return nil
	}
	clones := make([]LawFirm, len(firms))
	for i := range firms {
		clones[i] = firms[i].Clone()
	}
	return clones
}
