package service

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"ifind-attorney/internal/domain/helper"
	"ifind-attorney/internal/domain/model"
)

// ErrOutsideCoverage is returned for coordinates outside Nigeria.
var ErrOutsideCoverage = errors.New("coordinates are outside our coverage area")

// Confidence thresholds for the nearest-center heuristic, in km.
const (
	highConfidenceRadiusKm   = 30.0
	mediumConfidenceRadiusKm = 80.0
)

// nigeriaBound is Nigeria's bounding box with a small margin. Points outside
// it are rejected before the nearest-center scan.
var nigeriaBound = orb.Bound{
	Min: orb.Point{2.5, 4.0},
	Max: orb.Point{15.0, 14.2},
}.Pad(0.25)

// stateCenters holds one reference point per state (the capital) plus the
// FCT. The reverse geocoder resolves a coordinate to the nearest of these.
var stateCenters = []model.StateCenter{
	{State: "Abia", LGA: "Umuahia North", Lat: 5.5320, Lng: 7.4860},
	{State: "Adamawa", LGA: "Yola North", Lat: 9.2035, Lng: 12.4954},
	{State: "Akwa Ibom", LGA: "Uyo", Lat: 5.0377, Lng: 7.9128},
	{State: "Anambra", LGA: "Awka South", Lat: 6.2104, Lng: 7.0741},
	{State: "Bauchi", LGA: "Bauchi", Lat: 10.3158, Lng: 9.8442},
	{State: "Bayelsa", LGA: "Yenagoa", Lat: 4.9267, Lng: 6.2676},
	{State: "Benue", LGA: "Makurdi", Lat: 7.7322, Lng: 8.5391},
	{State: "Borno", LGA: "Maiduguri", Lat: 11.8333, Lng: 13.1500},
	{State: "Cross River", LGA: "Calabar Municipal", Lat: 4.9757, Lng: 8.3417},
	{State: "Delta", LGA: "Oshimili South", Lat: 6.1985, Lng: 6.6959},
	{State: "Ebonyi", LGA: "Abakaliki", Lat: 6.3249, Lng: 8.1137},
	{State: "Edo", LGA: "Oredo", Lat: 6.3350, Lng: 5.6037},
	{State: "Ekiti", LGA: "Ado-Ekiti", Lat: 7.6211, Lng: 5.2214},
	{State: "Enugu", LGA: "Enugu North", Lat: 6.4584, Lng: 7.5464},
	{State: "FCT", LGA: "Abuja Municipal", Lat: 9.0765, Lng: 7.3986},
	{State: "Gombe", LGA: "Gombe", Lat: 10.2897, Lng: 11.1673},
	{State: "Imo", LGA: "Owerri Municipal", Lat: 5.4833, Lng: 7.0333},
	{State: "Jigawa", LGA: "Dutse", Lat: 11.7594, Lng: 9.3380},
	{State: "Kaduna", LGA: "Kaduna North", Lat: 10.5105, Lng: 7.4165},
	{State: "Kano", LGA: "Kano Municipal", Lat: 12.0022, Lng: 8.5920},
	{State: "Katsina", LGA: "Katsina", Lat: 12.9908, Lng: 7.6018},
	{State: "Kebbi", LGA: "Birnin Kebbi", Lat: 12.4539, Lng: 4.1975},
	{State: "Kogi", LGA: "Lokoja", Lat: 7.8023, Lng: 6.7333},
	{State: "Kwara", LGA: "Ilorin West", Lat: 8.4966, Lng: 4.5421},
	{State: "Lagos", LGA: "Ikeja", Lat: 6.6018, Lng: 3.3515},
	{State: "Nasarawa", LGA: "Lafia", Lat: 8.4939, Lng: 8.5153},
	{State: "Niger", LGA: "Chanchaga", Lat: 9.6139, Lng: 6.5569},
	{State: "Ogun", LGA: "Abeokuta South", Lat: 7.1475, Lng: 3.3619},
	{State: "Ondo", LGA: "Akure South", Lat: 7.2571, Lng: 5.2058},
	{State: "Osun", LGA: "Osogbo", Lat: 7.7827, Lng: 4.5418},
	{State: "Oyo", LGA: "Ibadan North", Lat: 7.3775, Lng: 3.9470},
	{State: "Plateau", LGA: "Jos North", Lat: 9.8965, Lng: 8.8583},
	{State: "Rivers", LGA: "Port Harcourt", Lat: 4.8156, Lng: 7.0498},
	{State: "Sokoto", LGA: "Sokoto North", Lat: 13.0059, Lng: 5.2476},
	{State: "Taraba", LGA: "Jalingo", Lat: 8.8937, Lng: 11.3596},
	{State: "Yobe", LGA: "Damaturu", Lat: 11.7470, Lng: 11.9608},
	{State: "Zamfara", LGA: "Gusau", Lat: 12.1704, Lng: 6.6641},
}

// GeocodeService resolves coordinates to a Nigerian state and LGA.
type GeocodeService interface {
	ReverseGeocode(lat, lng float64) (*model.ReverseGeocodeResult, error)
}

type nearestCenterGeocodeService struct{}

func NewGeocodeService() GeocodeService {
	return &nearestCenterGeocodeService{}
}

// ReverseGeocode finds the nearest state center by haversine distance. The
// confidence grades how far the point sits from that center.
func (s *nearestCenterGeocodeService) ReverseGeocode(lat, lng float64) (*model.ReverseGeocodeResult, error) {
	point := model.LatLng{Lat: lat, Lng: lng}
	if !nigeriaBound.Contains(point.Point()) {
		return nil, fmt.Errorf("%w: %.4f, %.4f", ErrOutsideCoverage, lat, lng)
	}

	nearest := stateCenters[0]
	nearestDist := helper.HaversineDistance(point, model.LatLng{Lat: nearest.Lat, Lng: nearest.Lng})
	for _, center := range stateCenters[1:] {
		d := helper.HaversineDistance(point, model.LatLng{Lat: center.Lat, Lng: center.Lng})
		if d < nearestDist {
			nearest = center
			nearestDist = d
		}
	}

	confidence := model.ConfidenceLow
	switch {
	case nearestDist < highConfidenceRadiusKm:
		confidence = model.ConfidenceHigh
	case nearestDist < mediumConfidenceRadiusKm:
		confidence = model.ConfidenceMedium
	}

	return &model.ReverseGeocodeResult{
		State:      nearest.State,
		LGA:        nearest.LGA,
		DistanceKm: nearestDist,
		Confidence: confidence,
	}, nil
}
