package repository

import (
	"sort"
	"strings"

	"ifind-attorney/internal/domain/model"
)

// memoryDirectory is the immutable in-memory form of the firm directory that
// every loader (static, Supabase, Postgres) builds at startup. It is never
// written to after construction; accessors hand out deep copies so callers
// can annotate records without racing other requests.
type memoryDirectory struct {
	byState map[string][]model.LawFirm // key: lowercased state name
	states  []string                   // canonical names, sorted
	total   int
}

func newMemoryDirectory(byState map[string][]model.LawFirm) *memoryDirectory {
	dir := &memoryDirectory{byState: make(map[string][]model.LawFirm, len(byState))}
	for state, firms := range byState {
		if len(firms) == 0 {
			continue
		}
		dir.byState[strings.ToLower(state)] = model.CloneFirms(firms)
		dir.states = append(dir.states, state)
		dir.total += len(firms)
	}
	sort.Strings(dir.states)
	return dir
}

func (d *memoryDirectory) FirmsForState(state string) []model.LawFirm {
	firms, ok := d.byState[strings.ToLower(strings.TrimSpace(state))]
	if !ok {
		return []model.LawFirm{}
	}
	return model.CloneFirms(firms)
}

func (d *memoryDirectory) AllFirms() []model.LawFirm {
	all := make([]model.LawFirm, 0, d.total)
	for _, state := range d.states {
		all = append(all, model.CloneFirms(d.byState[strings.ToLower(state)])...)
	}
	return all
}

func (d *memoryDirectory) States() []string {
	return append([]string(nil), d.states...)
}

func (d *memoryDirectory) TotalFirms() int {
	return d.total
}
