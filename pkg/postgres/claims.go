package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

const uniqueViolationCode = "23505"

// GetClaims retrieves the claims held by a person on a day
func (d *DB) GetClaims(ctx context.Context, personID, day string) ([]db.Claim, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, person_id, day::text, period
		FROM claim
		WHERE person_id = $1 AND day = $2
	`, personID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}
	defer rows.Close()

	var claims []db.Claim
	for rows.Next() {
		var claim db.Claim
		if err := rows.Scan(&claim.ID, &claim.PersonID, &claim.Day, &claim.Period); err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		claims = append(claims, claim)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating claims: %w", err)
	}

	return claims, nil
}

// InsertClaims inserts claim records in one transaction. When the unique key
// on (person_id, day, period) rejects a row the whole batch rolls back and
// db.ErrDuplicateClaim is returned, so callers can tell a lost race from
// other failures.
func (d *DB) InsertClaims(ctx context.Context, claims []db.Claim) error {
	if len(claims) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, claim := range claims {
		_, err := tx.Exec(ctx, `
			INSERT INTO claim (id, person_id, day, period)
			VALUES ($1, $2, $3, $4)
		`, claim.ID, claim.PersonID, claim.Day, claim.Period)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return fmt.Errorf("claim for person %s on %s %s: %w", claim.PersonID, claim.Day, claim.Period, db.ErrDuplicateClaim)
			}
			return fmt.Errorf("failed to insert claim: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
