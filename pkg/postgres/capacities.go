package postgres

import (
	"context"
	"fmt"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

// GetCapacities retrieves capacity records for the inclusive day range [from, to]
func (d *DB) GetCapacities(ctx context.Context, from, to string) ([]db.Capacity, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, day::text, start_time, end_time, person_id, is_backup, specialties, prefers_alternate_site
		FROM capacity
		WHERE day BETWEEN $1 AND $2
		ORDER BY day, id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query capacities: %w", err)
	}
	defer rows.Close()

	var capacities []db.Capacity
	for rows.Next() {
		var capacity db.Capacity
		var startTime, endTime *string
		if err := rows.Scan(&capacity.ID, &capacity.Day, &startTime, &endTime, &capacity.PersonID, &capacity.IsBackup, &capacity.Specialties, &capacity.PrefersAlternateSite); err != nil {
			return nil, fmt.Errorf("failed to scan capacity: %w", err)
		}
		if startTime != nil {
			capacity.StartTime = *startTime
		}
		if endTime != nil {
			capacity.EndTime = *endTime
		}
		capacities = append(capacities, capacity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating capacities: %w", err)
	}

	return capacities, nil
}
