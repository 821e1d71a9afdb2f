package model

// MatchRequest holds everything a caller can provide to the lawyer matcher.
type MatchRequest struct {
	PracticeAreas []string `json:"practiceAreas"`                    // Ordered; first entry is the primary area for messaging
	LegalIssue    string   `json:"legalIssue"`                       // Informational only
	State         string   `json:"state"`                            // Required; unknown states fall through to the directory-wide fallback
	LGA           string   `json:"lga"`                              // Descriptive only, never used for filtering
	Budget        string   `json:"budget"`                           // Informational only
	UserLatitude  *float64 `json:"userLatitude" binding:"omitempty,min=-90,max=90"`
	UserLongitude *float64 `json:"userLongitude" binding:"omitempty,min=-180,max=180"`
}

// UserLocation returns the caller's coordinates, or nil when absent.
// A partial pair (only one of latitude/longitude) is treated as absent.
func (r *MatchRequest) UserLocation() *LatLng {
	if r.UserLatitude == nil || r.UserLongitude == nil {
		return nil
	}
	return &LatLng{Lat: *r.UserLatitude, Lng: *r.UserLongitude}
}

// PrimaryArea returns the first requested practice area, or an empty string.
func (r *MatchRequest) PrimaryArea() string {
	if len(r.PracticeAreas) == 0 {
		return ""
	}
	return r.PracticeAreas[0]
}

// Criteria returns the echoed-back view of the request used in responses.
func (r *MatchRequest) Criteria() MatchCriteria {
	areas := r.PracticeAreas
	if areas == nil {
		areas = []string{}
	}
	return MatchCriteria{
		PracticeAreas: areas,
		LegalIssue:    r.LegalIssue,
		State:         r.State,
		LGA:           r.LGA,
		Budget:        r.Budget,
	}
}
