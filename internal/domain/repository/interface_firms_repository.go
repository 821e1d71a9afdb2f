package repository

import "ifind-attorney/internal/domain/model"

// FirmsRepository exposes the immutable firm directory. Every accessor
// returns freshly built copies: callers may annotate the returned records
// without affecting the shared directory or other requests.
type FirmsRepository interface {
	// FirmsForState returns the state's bucket (case-insensitive lookup).
	// An unknown state yields an empty slice, never an error.
	FirmsForState(state string) []model.LawFirm

	// AllFirms returns every firm across all states in deterministic order
	// (states sorted alphabetically, bucket order within a state).
	AllFirms() []model.LawFirm

	// States returns the sorted list of states with at least one firm.
	States() []string

	// TotalFirms returns the number of records in the directory.
	TotalFirms() int
}
