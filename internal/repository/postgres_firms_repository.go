package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"ifind-attorney/internal/domain/repository"
	"ifind-attorney/internal/infrastructure/database"
)

// NewPostgresFirmsRepository loads the law_firms table once over a direct
// Postgres connection and serves it as an immutable in-memory directory.
func NewPostgresFirmsRepository(ctx context.Context, client *database.PostgreSQLClient) (repository.FirmsRepository, error) {
	query := `SELECT name, contact_person, state, location, address, latitude, longitude,
	                 phone, email, website, practice_areas, match_score
	          FROM law_firms
	          ORDER BY state, name`

	dbRows, err := client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query law firms: %w", err)
	}
	defer dbRows.Close()

	var rows []lawFirmRow
	for dbRows.Next() {
		var row lawFirmRow
		var contact, address, phone, email, website sql.NullString
		var lat, lng sql.NullFloat64
		if err := dbRows.Scan(
			&row.Name, &contact, &row.State, &row.Location, &address,
			&lat, &lng, &phone, &email, &website,
			pq.Array(&row.PracticeAreas), &row.MatchScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan law firm row: %w", err)
		}
		row.ContactPerson = contact.String
		row.Address = address.String
		row.Phone = phone.String
		row.Email = email.String
		row.Website = website.String
		if lat.Valid {
			row.Latitude = &lat.Float64
		}
		if lng.Valid {
			row.Longitude = &lng.Float64
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate law firm rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("law_firms table is empty")
	}

	return newMemoryDirectory(rowsToDirectory(rows)), nil
}
