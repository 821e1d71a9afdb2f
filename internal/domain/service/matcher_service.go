package service

import (
	"context"
	"fmt"
	"log"

	"ifind-attorney/internal/domain/helper"
	"ifind-attorney/internal/domain/model"
	"ifind-attorney/internal/domain/repository"
)

// MatcherService turns a match request into a non-empty, tier-ordered,
// deduplicated list of candidate firms.
type MatcherService interface {
	MatchLawyers(ctx context.Context, req *model.MatchRequest) (*model.MatchResult, error)
}

type tieredMatcherService struct {
	firmsRepo repository.FirmsRepository
}

func NewTieredMatcherService(firmsRepo repository.FirmsRepository) MatcherService {
	return &tieredMatcherService{firmsRepo: firmsRepo}
}

// MatchLawyers evaluates the five tiers in strict precedence. Each tier after
// the first is only evaluated when the combined results so far fall short of
// the fallback threshold; tier 5 only fires when tiers 1-4 are all empty.
// The result is non-empty whenever the directory holds at least one firm.
func (s *tieredMatcherService) MatchLawyers(ctx context.Context, req *model.MatchRequest) (*model.MatchResult, error) {
	pool := s.firmsRepo.FirmsForState(req.State)
	areas := helper.NormalizeAreas(req.PracticeAreas)
	userLoc := req.UserLocation()

	if userLoc != nil {
		helper.AnnotateDistances(pool, *userLoc)
	}

	result := &model.MatchResult{}
	placed := make(map[string]bool)

	result.Tier1 = s.findExactMatches(pool, areas, userLoc, placed, req.PrimaryArea())

	if len(result.Tier1) < model.MinResultsBeforeFallback {
		result.Tier2 = s.findNearbyMatches(pool, areas, userLoc, placed)
	}

	if len(result.Tier1)+len(result.Tier2) < model.MinResultsBeforeFallback {
		result.Tier3 = s.findRegionalMatches(pool, areas, placed)
	}

	if len(result.Tier1)+len(result.Tier2)+len(result.Tier3) < model.MinResultsBeforeFallback {
		result.Tier4 = s.findGeneralPracticeMatches(pool, userLoc, placed)
	}

	if len(result.AllMatches()) == 0 {
		result.Tier4 = s.findFallbackFirms(pool, req.State)
		result.FallbackUsed = true
	}

	helper.AnnotateMapLinks(result.Tier1, userLoc)
	helper.AnnotateMapLinks(result.Tier2, userLoc)
	helper.AnnotateMapLinks(result.Tier3, userLoc)
	helper.AnnotateMapLinks(result.Tier4, userLoc)

	log.Printf("matched %d firms for state=%q (tiers %d/%d/%d/%d, fallback=%v)",
		len(result.AllMatches()), req.State,
		len(result.Tier1), len(result.Tier2), len(result.Tier3), len(result.Tier4),
		result.FallbackUsed)

	return result, nil
}

// findExactMatches builds tier 1: case-insensitive exact practice-area
// matches, distance-sorted when the user's position is known, score-sorted
// otherwise. Skipped entirely when no practice areas were requested.
func (s *tieredMatcherService) findExactMatches(pool []model.LawFirm, areas []string, userLoc *model.LatLng, placed map[string]bool, primaryArea string) []model.LawFirm {
	if len(areas) == 0 {
		return nil
	}

	var matches []model.LawFirm
	for _, firm := range pool {
		if helper.HasExactArea(&firm, areas) {
			matches = append(matches, firm.Clone())
		}
	}

	if userLoc != nil {
		helper.SortFirmsByDistance(matches)
	} else {
		helper.SortFirmsByScore(matches)
	}

	matches = helper.CapFirms(matches, model.MaxFirmsPerTier)
	for i := range matches {
		matches[i].MatchTier = model.TierLabelExact
		matches[i].MatchReason = fmt.Sprintf("Specialises in %s", primaryArea)
		placed[matches[i].Name] = true
	}
	return matches
}

// findNearbyMatches builds tier 2: exact-area firms not already placed in
// tier 1. With user coordinates the pool is restricted to firms strictly
// between 0 and 100 km away and sorted by distance; without coordinates the
// first five in pool order are taken.
func (s *tieredMatcherService) findNearbyMatches(pool []model.LawFirm, areas []string, userLoc *model.LatLng, placed map[string]bool) []model.LawFirm {
	if len(areas) == 0 {
		return nil
	}

	var matches []model.LawFirm
	for _, firm := range pool {
		if placed[firm.Name] || !helper.HasExactArea(&firm, areas) {
			continue
		}
		if userLoc != nil {
			d := firm.Distance
			if d == nil || *d <= 0 || *d >= model.NearbyRadiusKm {
				continue
			}
		}
		matches = append(matches, firm.Clone())
	}

	if userLoc != nil {
		helper.SortFirmsByDistance(matches)
	}

	matches = helper.CapFirms(matches, model.MaxFirmsPerTier)
	for i := range matches {
		matches[i].MatchTier = model.TierLabelNearby
		matches[i].MatchReason = "Specialist firm near your location"
		placed[matches[i].Name] = true
	}
	return matches
}

// findRegionalMatches builds tier 3: looser substring matching in either
// direction, sorted by score descending with distance as tie-breaker.
func (s *tieredMatcherService) findRegionalMatches(pool []model.LawFirm, areas []string, placed map[string]bool) []model.LawFirm {
	var matches []model.LawFirm
	for _, firm := range pool {
		if placed[firm.Name] || !helper.HasRelatedArea(&firm, areas) {
			continue
		}
		matches = append(matches, firm.Clone())
	}

	helper.SortFirmsByScoreThenDistance(matches)

	matches = helper.CapFirms(matches, model.MaxFirmsPerTier)
	for i := range matches {
		matches[i].MatchTier = model.TierLabelRegional
		matches[i].MatchReason = "Practises in a related area of law"
		placed[matches[i].Name] = true
	}
	return matches
}

// findGeneralPracticeMatches builds tier 4 from all remaining firms that pass
// the permissive general-practice predicate.
func (s *tieredMatcherService) findGeneralPracticeMatches(pool []model.LawFirm, userLoc *model.LatLng, placed map[string]bool) []model.LawFirm {
	var matches []model.LawFirm
	for _, firm := range pool {
		if placed[firm.Name] || !helper.IsGeneralPracticeCandidate(&firm) {
			continue
		}
		matches = append(matches, firm.Clone())
	}

	if userLoc != nil {
		helper.SortFirmsByDistance(matches)
	} else {
		helper.SortFirmsByScore(matches)
	}

	matches = helper.CapFirms(matches, model.MaxFirmsPerTier)
	for i := range matches {
		matches[i].MatchTier = model.TierLabelGeneral
		matches[i].MatchReason = "General practice firm able to assist"
		placed[matches[i].Name] = true
	}
	return matches
}

// findFallbackFirms builds the tier-5 guaranteed fallback: the first five
// firms of the requested state's pool, or of the whole directory when the
// state has none. Only an entirely empty directory yields zero results.
func (s *tieredMatcherService) findFallbackFirms(pool []model.LawFirm, state string) []model.LawFirm {
	fallback := model.CloneFirms(helper.CapFirms(pool, model.MaxFirmsPerTier))
	if len(fallback) == 0 {
		all := s.firmsRepo.AllFirms()
		fallback = helper.CapFirms(all, model.MaxFirmsPerTier)
		if len(fallback) > 0 {
			log.Printf("state %q has no firms, falling back to directory-wide results", state)
		}
	}

	for i := range fallback {
		fallback[i].MatchTier = model.TierLabelFallback
		if fallback[i].MatchReason == "" {
			fallback[i].MatchReason = "Available law firm from our directory"
		}
	}
	return fallback
}
