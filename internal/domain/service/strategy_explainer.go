package service

import (
	"fmt"

	"ifind-attorney/internal/domain/model"
)

// ExplainStrategy maps the first non-empty tier bucket (in priority order) to
// a short label, a free-text detail and a machine-usable tier key. It is a
// pure function of the result and only affects display text.
func ExplainStrategy(result *model.MatchResult, req *model.MatchRequest) model.MatchStrategy {
	place := req.State
	if req.LGA != "" {
		place = fmt.Sprintf("%s, %s", req.LGA, req.State)
	}

	switch {
	case len(result.Tier1) > 0:
		return model.MatchStrategy{
			Label: "Exact specialist match",
			Details: fmt.Sprintf("Found %d firm(s) in %s specialising in %s.%s",
				len(result.Tier1), place, req.PrimaryArea(), nearestSuffix(result.Tier1)),
			Tier: model.TierKeyExact,
		}
	case len(result.Tier2) > 0:
		return model.MatchStrategy{
			Label: "Nearby specialists",
			Details: fmt.Sprintf("No exact match in your immediate area, but %d specialist firm(s) are within reach.%s",
				len(result.Tier2), nearestSuffix(result.Tier2)),
			Tier: model.TierKeyNearby,
		}
	case len(result.Tier3) > 0:
		return model.MatchStrategy{
			Label: "Regional specialists",
			Details: fmt.Sprintf("Found %d firm(s) in %s practising in areas related to your request.",
				len(result.Tier3), place),
			Tier: model.TierKeyRegional,
		}
	case len(result.Tier4) > 0 && !result.FallbackUsed:
		return model.MatchStrategy{
			Label: "General practice firms",
			Details: fmt.Sprintf("No specialist found; %d general practice firm(s) in %s can handle your matter.%s",
				len(result.Tier4), place, nearestSuffix(result.Tier4)),
			Tier: model.TierKeyGeneral,
		}
	case len(result.Tier4) > 0:
		return model.MatchStrategy{
			Label: "Available firms",
			Details: fmt.Sprintf("Showing %d available firm(s) from our directory.%s",
				len(result.Tier4), nearestSuffix(result.Tier4)),
			Tier: model.TierKeyFallback,
		}
	default:
		return model.MatchStrategy{
			Label:   "Available firms",
			Details: "No law firms are currently listed in our directory.",
			Tier:    model.TierKeyFallback,
		}
	}
}

// nearestSuffix mentions the first entry's distance when it is known.
func nearestSuffix(firms []model.LawFirm) string {
	if len(firms) == 0 || firms[0].Distance == nil {
		return ""
	}
	return fmt.Sprintf(" The closest is %.1f km away.", *firms[0].Distance)
}
