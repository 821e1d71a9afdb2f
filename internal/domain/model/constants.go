package model

// Tier labels attached to matched firms. These are presentation strings the
// consuming UI renders verbatim, so they keep their original casing.
const (
	TierLabelExact    = "TIER 1 — EXACT MATCH"
	TierLabelNearby   = "TIER 2 — NEARBY LOCATION"
	TierLabelRegional = "TIER 3 — REGIONAL SPECIALIST"
	TierLabelGeneral  = "TIER 4 — GENERAL PRACTICE"
	TierLabelFallback = "TIER 5 — AVAILABLE FIRMS"
)

// Machine-usable tier keys reported as matchingTier.
const (
	TierKeyExact    = "tier1"
	TierKeyNearby   = "tier2"
	TierKeyRegional = "tier3"
	TierKeyGeneral  = "tier4"
	TierKeyFallback = "tier5"
)

// TierNameMap maps tier keys to their display labels.
var TierNameMap = map[string]string{
	TierKeyExact:    TierLabelExact,
	TierKeyNearby:   TierLabelNearby,
	TierKeyRegional: TierLabelRegional,
	TierKeyGeneral:  TierLabelGeneral,
	TierKeyFallback: TierLabelFallback,
}

// TierDescriptionMap maps tier keys to the descriptions shown on each bucket.
var TierDescriptionMap = map[string]string{
	TierKeyExact:    "Firms whose listed practice areas exactly match your request",
	TierKeyNearby:   "Specialist firms within travelling distance of your location",
	TierKeyRegional: "Firms in your state practising in related areas",
	TierKeyGeneral:  "General practice firms able to handle a wide range of matters",
	TierKeyFallback: "Available firms from our directory",
}

// Matching thresholds.
const (
	// MaxFirmsPerTier caps every tier bucket.
	MaxFirmsPerTier = 5

	// MinResultsBeforeFallback is the combined result count below which the
	// next tier is evaluated.
	MinResultsBeforeFallback = 3

	// NearbyRadiusKm bounds tier-2 candidates when user coordinates are
	// present. The lower bound of 0 km is exclusive.
	NearbyRadiusKm = 100.0
)

// GeneralPracticeArea is the practice-area label tier 4 looks for.
const GeneralPracticeArea = "General Practice"

// SourceStaticDirectory marks records seeded from the built-in directory.
const SourceStaticDirectory = "static directory"
