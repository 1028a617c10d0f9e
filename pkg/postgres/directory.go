package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

// GetSite retrieves one site record by id. Returns (nil, nil) when the site
// does not exist; callers treat absence as a valid skip.
func (d *DB) GetSite(ctx context.Context, id string) (*db.Site, error) {
	var site db.Site
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, requires_closure, is_flagship, capacity
		FROM site
		WHERE id = $1
	`, id).Scan(&site.ID, &site.Name, &site.RequiresClosure, &site.IsFlagship, &site.Capacity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query site %s: %w", id, err)
	}
	return &site, nil
}

// GetPerson retrieves one person record by id. Returns (nil, nil) when the
// person does not exist.
func (d *DB) GetPerson(ctx context.Context, id string) (*db.Person, error) {
	var person db.Person
	var preferredSiteID *string
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, preferred_site_id, roles, is_backup
		FROM person
		WHERE id = $1
	`, id).Scan(&person.ID, &person.Name, &preferredSiteID, &person.Roles, &person.IsBackup)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query person %s: %w", id, err)
	}
	if preferredSiteID != nil {
		person.PreferredSiteID = *preferredSiteID
	}
	return &person, nil
}
