package helper

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ifind-attorney/internal/domain/model"
)

func coord(v float64) *float64 { return &v }

func TestHaversineDistance(t *testing.T) {
	ikeja := model.LatLng{Lat: 6.6018, Lng: 3.3515}

	t.Run("same point is zero", func(t *testing.T) {
		assert.InDelta(t, 0, HaversineDistance(ikeja, ikeja), 0.0001)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		a := model.LatLng{Lat: 6.0, Lng: 3.0}
		b := model.LatLng{Lat: 7.0, Lng: 3.0}
		// pi * 6371 / 180
		assert.InDelta(t, 111.19, HaversineDistance(a, b), 0.1)
	})

	t.Run("symmetric", func(t *testing.T) {
		abuja := model.LatLng{Lat: 9.0765, Lng: 7.3986}
		assert.InDelta(t, HaversineDistance(ikeja, abuja), HaversineDistance(abuja, ikeja), 0.0001)
	})
}

func TestAnnotateDistances(t *testing.T) {
	firms := []model.LawFirm{
		{Name: "With Coords", Latitude: coord(6.45), Longitude: coord(3.40)},
		{Name: "Without Coords"},
	}
	AnnotateDistances(firms, model.LatLng{Lat: 6.45, Lng: 3.40})

	require.NotNil(t, firms[0].Distance)
	assert.InDelta(t, 0, *firms[0].Distance, 0.0001)
	assert.Nil(t, firms[1].Distance)
}

func TestSortFirmsByDistance(t *testing.T) {
	firms := []model.LawFirm{
		{Name: "No Distance"},
		{Name: "Far", Distance: coord(80)},
		{Name: "Near", Distance: coord(2)},
	}
	SortFirmsByDistance(firms)

	assert.Equal(t, "Near", firms[0].Name)
	assert.Equal(t, "Far", firms[1].Name)
	assert.Equal(t, "No Distance", firms[2].Name, "missing distance sorts last")
}

func TestSortFirmsByScoreThenDistance(t *testing.T) {
	firms := []model.LawFirm{
		{Name: "B", MatchScore: 80, Distance: coord(10)},
		{Name: "A", MatchScore: 80, Distance: coord(5)},
		{Name: "C", MatchScore: 90},
	}
	SortFirmsByScoreThenDistance(firms)

	assert.Equal(t, "C", firms[0].Name)
	assert.Equal(t, "A", firms[1].Name)
	assert.Equal(t, "B", firms[2].Name)
}

func TestBuildMapURLRoundTripsName(t *testing.T) {
	firm := &model.LawFirm{Name: "Adekunle & Partners Law Firm", Location: "Victoria Island, Lagos"}
	mapURL := BuildMapURL(firm)

	parsed, err := url.Parse(mapURL)
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", parsed.Host)
	assert.Equal(t, "Adekunle & Partners Law Firm Victoria Island, Lagos", parsed.Query().Get("query"))
}

func TestBuildDirectionsURL(t *testing.T) {
	user := model.LatLng{Lat: 6.45, Lng: 3.40}

	t.Run("uses firm coordinates when present", func(t *testing.T) {
		firm := &model.LawFirm{Name: "Lagoon Chambers", Latitude: coord(6.4478), Longitude: coord(3.4723)}
		directions := BuildDirectionsURL(user, firm)
		parsed, err := url.Parse(directions)
		require.NoError(t, err)
		assert.Contains(t, parsed.Query().Get("origin"), "6.45")
		assert.Contains(t, parsed.RawQuery, "destination=6.44")
	})

	t.Run("falls back to firm name", func(t *testing.T) {
		firm := &model.LawFirm{Name: "Rivers Justice Partners"}
		parsed, err := url.Parse(BuildDirectionsURL(user, firm))
		require.NoError(t, err)
		assert.Equal(t, "Rivers Justice Partners", parsed.Query().Get("destination"))
	})
}

func TestAnnotateMapLinks(t *testing.T) {
	firms := []model.LawFirm{{Name: "Coal City Advocates", Location: "Enugu"}}

	AnnotateMapLinks(firms, nil)
	assert.NotEmpty(t, firms[0].MapURL)
	assert.Empty(t, firms[0].DirectionsURL)

	user := model.LatLng{Lat: 6.45, Lng: 7.5}
	AnnotateMapLinks(firms, &user)
	assert.NotEmpty(t, firms[0].DirectionsURL)
}
