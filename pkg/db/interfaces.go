package db

import (
	"context"
	"errors"
)

// ErrDuplicateClaim is returned by InsertClaims when the claim table's
// unique key on (person, day, period) rejects a row. It is the signal that
// a concurrent commit won the race after an advisory overlap check passed.
var ErrDuplicateClaim = errors.New("claim already held for person, day and period")

// NeedStore defines read access to coverage-need records
type NeedStore interface {
	GetNeeds(ctx context.Context, from, to string) ([]Need, error)
}

// CapacityStore defines read access to availability records
type CapacityStore interface {
	GetCapacities(ctx context.Context, from, to string) ([]Capacity, error)
}

// DirectoryStore looks up site and person records by id. A nil record with
// a nil error means not found; callers treat that as a valid skip.
type DirectoryStore interface {
	GetSite(ctx context.Context, id string) (*Site, error)
	GetPerson(ctx context.Context, id string) (*Person, error)
}

// ClaimStore defines access to held half-day claims
type ClaimStore interface {
	GetClaims(ctx context.Context, personID, day string) ([]Claim, error)
	InsertClaims(ctx context.Context, claims []Claim) error
}

// AssignmentStore defines access to assignment records
type AssignmentStore interface {
	GetAssignments(ctx context.Context, siteID, from, to string) ([]Assignment, error)
	InsertAssignments(ctx context.Context, assignments []Assignment) error
}
