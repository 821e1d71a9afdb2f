package helper

import (
	"fmt"
	"math"
	"net/url"
	"sort"

	"ifind-attorney/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance computes the great-circle distance between two points in km.
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// AnnotateDistances stamps each firm that has coordinates with its haversine
// distance from the user. Firms without coordinates keep a nil distance.
func AnnotateDistances(firms []model.LawFirm, user model.LatLng) {
	for i := range firms {
		if firms[i].HasCoordinates() {
			d := HaversineDistance(user, firms[i].ToLatLng())
			firms[i].Distance = &d
		}
	}
}

// SortFirmsByDistance orders firms by annotated distance ascending.
// Firms with no distance sort last. The sort is stable so pool order is
// preserved among equals.
func SortFirmsByDistance(firms []model.LawFirm) {
	sort.SliceStable(firms, func(i, j int) bool {
		di, dj := firms[i].Distance, firms[j].Distance
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})
}

// SortFirmsByScore orders firms by static match score descending.
func SortFirmsByScore(firms []model.LawFirm) {
	sort.SliceStable(firms, func(i, j int) bool {
		return firms[i].MatchScore > firms[j].MatchScore
	})
}

// SortFirmsByScoreThenDistance orders by score descending, breaking ties by
// distance ascending (missing distance last).
func SortFirmsByScoreThenDistance(firms []model.LawFirm) {
	sort.SliceStable(firms, func(i, j int) bool {
		if firms[i].MatchScore != firms[j].MatchScore {
			return firms[i].MatchScore > firms[j].MatchScore
		}
		di, dj := firms[i].Distance, firms[j].Distance
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})
}

// BuildMapURL returns a Google Maps search link for the firm by name.
func BuildMapURL(firm *model.LawFirm) string {
	query := firm.Name
	if firm.Location != "" {
		query += " " + firm.Location
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
}

// BuildDirectionsURL returns a Google Maps directions link from the user's
// position to the firm. The firm's coordinates are preferred as destination;
// its name is used when they are absent.
func BuildDirectionsURL(user model.LatLng, firm *model.LawFirm) string {
	origin := fmt.Sprintf("%f,%f", user.Lat, user.Lng)
	destination := url.QueryEscape(firm.Name)
	if firm.HasCoordinates() {
		destination = fmt.Sprintf("%f,%f", *firm.Latitude, *firm.Longitude)
	}
	return "https://www.google.com/maps/dir/?api=1&origin=" + url.QueryEscape(origin) + "&destination=" + destination
}

// AnnotateMapLinks attaches the map search URL and, when the user's position
// is known, a directions URL to every firm in the slice.
func AnnotateMapLinks(firms []model.LawFirm, user *model.LatLng) {
	for i := range firms {
		firms[i].MapURL = BuildMapURL(&firms[i])
		if user != nil {
			firms[i].DirectionsURL = BuildDirectionsURL(*user, &firms[i])
		}
	}
}
