package postgres

import (
	"context"
	"fmt"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

// GetNeeds retrieves need records for the inclusive day range [from, to]
func (d *DB) GetNeeds(ctx context.Context, from, to string) ([]db.Need, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, day::text, site_id, start_time, end_time, specialty_id, kind, person_id, required_role
		FROM need
		WHERE day BETWEEN $1 AND $2
		ORDER BY day, id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query needs: %w", err)
	}
	defer rows.Close()

	var needs []db.Need
	for rows.Next() {
		var need db.Need
		var startTime, endTime, specialtyID, personID, requiredRole *string
		if err := rows.Scan(&need.ID, &need.Day, &need.SiteID, &startTime, &endTime, &specialtyID, &need.Kind, &personID, &requiredRole); err != nil {
			return nil, fmt.Errorf("failed to scan need: %w", err)
		}
		if startTime != nil {
			need.StartTime = *startTime
		}
		if endTime != nil {
			need.EndTime = *endTime
		}
		if specialtyID != nil {
			need.SpecialtyID = *specialtyID
		}
		if personID != nil {
			need.PersonID = *personID
		}
		if requiredRole != nil {
			need.RequiredRole = *requiredRole
		}
		needs = append(needs, need)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating needs: %w", err)
	}

	return needs, nil
}
