package helper

import (
	"strings"

	"ifind-attorney/internal/domain/model"
)

// NormalizeAreas lowercases and trims requested practice areas, dropping
// empty entries while preserving order.
func NormalizeAreas(areas []string) []string {
	normalized := make([]string, 0, len(areas))
	for _, area := range areas {
		area = strings.ToLower(strings.TrimSpace(area))
		if area != "" {
			normalized = append(normalized, area)
		}
	}
	return normalized
}

// HasExactArea reports whether the firm lists a case-insensitive exact match
// for any of the (already normalized) requested areas.
func HasExactArea(firm *model.LawFirm, normalizedAreas []string) bool {
	for _, listed := range firm.PracticeAreas {
		listed = strings.ToLower(strings.TrimSpace(listed))
		for _, requested := range normalizedAreas {
			if listed == requested {
				return true
			}
		}
	}
	return false
}

// HasRelatedArea reports whether any listed area contains a requested area as
// a substring, or vice versa (case-insensitive). This is the looser tier-3
// filter.
func HasRelatedArea(firm *model.LawFirm, normalizedAreas []string) bool {
	for _, listed := range firm.PracticeAreas {
		listed = strings.ToLower(strings.TrimSpace(listed))
		for _, requested := range normalizedAreas {
			if strings.Contains(listed, requested) || strings.Contains(requested, listed) {
				return true
			}
		}
	}
	return false
}

// IsGeneralPracticeCandidate is the tier-4 predicate: the firm lists
// "General Practice", or more than two areas, or at least one area. The last
// clause makes the predicate absorb every remaining seeded firm, which tier 4
// relies on; keep it permissive.
func IsGeneralPracticeCandidate(firm *model.LawFirm) bool {
	for _, listed := range firm.PracticeAreas {
		if strings.EqualFold(strings.TrimSpace(listed), model.GeneralPracticeArea) {
			return true
		}
	}
	if len(firm.PracticeAreas) > 2 {
		return true
	}
	return len(firm.PracticeAreas) > 0
}

// CapFirms truncates the slice to at most max entries.
func CapFirms(firms []model.LawFirm, max int) []model.LawFirm {
	if len(firms) > max {
		return firms[:max]
	}
	return firms
}
