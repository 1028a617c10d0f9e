package postgres

import (
	"context"
	"fmt"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

// GetAssignments retrieves assignment records for a site over the inclusive
// day range [from, to]
func (d *DB) GetAssignments(ctx context.Context, siteID, from, to string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, need_slot_id, day::text, period, site_id, person_ids,
		       required_count, assigned_count, is_1r, is_2f, is_3f, cancelled
		FROM assignment
		WHERE site_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day, period, id
	`, siteID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		if err := rows.Scan(&a.ID, &a.NeedSlotID, &a.Day, &a.Period, &a.SiteID, &a.PersonIDs,
			&a.RequiredCount, &a.AssignedCount, &a.Is1R, &a.Is2F, &a.Is3F, &a.Cancelled); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// InsertAssignments inserts assignment records in one transaction
func (d *DB) InsertAssignments(ctx context.Context, assignments []db.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, need_slot_id, day, period, site_id, person_ids,
			                        required_count, assigned_count, is_1r, is_2f, is_3f, cancelled)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, a.ID, a.NeedSlotID, a.Day, a.Period, a.SiteID, a.PersonIDs,
			a.RequiredCount, a.AssignedCount, a.Is1R, a.Is2F, a.Is3F, a.Cancelled)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
