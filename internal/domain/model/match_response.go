package model

// MatchResult is the matcher's output before response assembly: four ordered
// tier buckets plus a flag recording whether the guaranteed fallback replaced
// the tier-4 slot. Tier buckets hold request-scoped clones only.
type MatchResult struct {
	Tier1 []LawFirm
	Tier2 []LawFirm
	Tier3 []LawFirm
	Tier4 []LawFirm

	// FallbackUsed is true when tiers 1-4 all came up empty and the tier-4
	// slot was filled with the tier-5 "available firms" fallback instead.
	// The bucket keeps the tier4 key on the wire either way.
	FallbackUsed bool
}

// AllMatches concatenates the tier buckets in priority order.
func (r *MatchResult) AllMatches() []LawFirm {
	all := make([]LawFirm, 0, len(r.Tier1)+len(r.Tier2)+len(r.Tier3)+len(r.Tier4))
	all = append(all, r.Tier1...)
	all = append(all, r.Tier2...)
	all = append(all, r.Tier3...)
	all = append(all, r.Tier4...)
	return all
}

// MatchStrategy explains which tier satisfied the request.
type MatchStrategy struct {
	Label   string // Short label, e.g. "Exact specialist match"
	Details string // Free text; references the first entry's distance when known
	Tier    string // "tier1".."tier5"
}

// MatchCriteria echoes the request back in the response.
type MatchCriteria struct {
	PracticeAreas []string `json:"practiceAreas"`
	LegalIssue    string   `json:"legalIssue"`
	State         string   `json:"state"`
	LGA           string   `json:"lga"`
	Budget        string   `json:"budget"`
}

// TierGroup is one named tier bucket in the response payload.
type TierGroup struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Count       int       `json:"count"`
	Firms       []LawFirm `json:"firms"`
}

// MatchingTiers holds the four fixed tier slots exposed on the wire. When the
// tier-5 fallback fires, its firms occupy the tier4 slot (with the tier-5 name
// and description); consumers should rely on matchingTier, not the slot name.
type MatchingTiers struct {
	Tier1 TierGroup `json:"tier1"`
	Tier2 TierGroup `json:"tier2"`
	Tier3 TierGroup `json:"tier3"`
	Tier4 TierGroup `json:"tier4"`
}

// MatchResponse is the full payload for POST /api/lawyers/match.
type MatchResponse struct {
	MatchID           string        `json:"matchId"`
	Criteria          MatchCriteria `json:"criteria"`
	MatchingTiers     MatchingTiers `json:"matchingTiers"`
	ExactMatchesFound int           `json:"exactMatchesFound"`
	AlternativesFound int           `json:"alternativesFound"`
	MatchingStrategy  string        `json:"matchingStrategy"`
	StrategyDetails   string        `json:"strategyDetails"`
	MatchingTier      string        `json:"matchingTier"`
	Recommendations   []LawFirm     `json:"recommendations"`

	// Legacy flattened views kept for older clients.
	ExactMatches []LawFirm `json:"exactMatches"`
	Alternatives []LawFirm `json:"alternatives"`

	GuaranteedResults bool `json:"guaranteedResults"`
}
