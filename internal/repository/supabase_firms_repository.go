package repository

import (
	"encoding/json"
	"fmt"

	"ifind-attorney/internal/domain/model"
	"ifind-attorney/internal/domain/repository"
	"ifind-attorney/internal/infrastructure/database"
)

// lawFirmRow is the law_firms table row shape shared by the Supabase and
// Postgres loaders.
type lawFirmRow struct {
	Name          string   `json:"name"`
	ContactPerson string   `json:"contact_person"`
	State         string   `json:"state"`
	Location      string   `json:"location"`
	Address       string   `json:"address"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Website       string   `json:"website"`
	PracticeAreas []string `json:"practice_areas"`
	MatchScore    int      `json:"match_score"`
}

func (r *lawFirmRow) toLawFirm() model.LawFirm {
	return model.LawFirm{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Source:        model.SourceStaticDirectory,
		Location:      r.Location,
		Address:       r.Address,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Phone:         r.Phone,
		Email:         r.Email,
		Website:       r.Website,
		PracticeAreas: r.PracticeAreas,
		MatchScore:    r.MatchScore,
	}
}

func rowsToDirectory(rows []lawFirmRow) map[string][]model.LawFirm {
	byState := make(map[string][]model.LawFirm)
	for _, row := range rows {
		if row.State == "" || len(row.PracticeAreas) == 0 {
			continue
		}
		byState[row.State] = append(byState[row.State], row.toLawFirm())
	}
	return byState
}

// NewSupabaseFirmsRepository loads the law_firms table once via the Supabase
// REST API and serves it as an immutable in-memory directory. The directory
// is never re-read after startup.
func NewSupabaseFirmsRepository(client *database.SupabaseClient) (repository.FirmsRepository, error) {
	data, count, err := client.GetClient().From("law_firms").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch law firms from supabase: %w", err)
	}
	_ = count

	var rows []lawFirmRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal law firm rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("law_firms table is empty")
	}

	return newMemoryDirectory(rowsToDirectory(rows)), nil
}
