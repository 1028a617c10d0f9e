package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/roster"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

// ValidateAssignmentsStore defines the store operations ValidateAssignments needs
type ValidateAssignmentsStore interface {
	db.DirectoryStore
	db.ClaimStore
}

// CandidateAssignment is one proposed person/date/periods placement to
// pre-flight before committing
type CandidateAssignment struct {
	PersonID     string
	Date         string
	Periods      []model.Period
	RequiredRole model.RoleCode // empty when the slot has no role requirement
}

// ConflictKind labels why a candidate was rejected
type ConflictKind string

const (
	ConflictOverlap    ConflictKind = "overlap"
	ConflictCompetency ConflictKind = "competency"
)

// AssignmentConflict is one detected problem, reported as data so callers
// can present it and decide to override or abort
type AssignmentConflict struct {
	PersonID    string
	Date        string
	Period      model.Period // set for overlap conflicts
	Kind        ConflictKind
	Description string
}

// ValidateAssignmentsResult reports the pre-flight outcome for a batch
type ValidateAssignmentsResult struct {
	Conflicts []AssignmentConflict

	// SkippedUnknownPeople counts candidates referencing a person the
	// directory does not know; they are skipped, not failed
	SkippedUnknownPeople int
}

// ValidateAssignments runs the competency and overlap checks over a batch of
// candidate assignments. The overlap check is advisory: it reads current
// claims and decides, so callers must still expect the claim table's unique
// key to reject a commit that lost a race.
func ValidateAssignments(ctx context.Context, store ValidateAssignmentsStore, logger *zap.Logger, candidates []CandidateAssignment) (*ValidateAssignmentsResult, error) {
	logger.Info("Validating candidate assignments", zap.Int("count", len(candidates)))

	claims := storeClaims{store}
	result := &ValidateAssignmentsResult{}

	for _, candidate := range candidates {
		person, err := store.GetPerson(ctx, candidate.PersonID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve person %s: %w", candidate.PersonID, err)
		}
		if person == nil {
			logger.Warn("Skipping candidate with unknown person",
				zap.String("person_id", candidate.PersonID),
				zap.String("date", candidate.Date))
			result.SkippedUnknownPeople++
			continue
		}

		if candidate.RequiredRole != "" {
			granted := make([]model.RoleCode, 0, len(person.Roles))
			for _, role := range person.Roles {
				granted = append(granted, model.RoleCode(role))
			}
			if !roster.IsEligible(granted, candidate.RequiredRole) {
				result.Conflicts = append(result.Conflicts, AssignmentConflict{
					PersonID:    candidate.PersonID,
					Date:        candidate.Date,
					Kind:        ConflictCompetency,
					Description: fmt.Sprintf("%s is not eligible for role %s", person.Name, candidate.RequiredRole),
				})
			}
		}

		overlap, err := roster.CheckOverlap(ctx, claims, candidate.PersonID, candidate.Date, candidate.Periods)
		if err != nil {
			return nil, err
		}
		if overlap.HasOverlap {
			result.Conflicts = append(result.Conflicts, AssignmentConflict{
				PersonID:    candidate.PersonID,
				Date:        candidate.Date,
				Period:      overlap.ConflictingPeriod,
				Kind:        ConflictOverlap,
				Description: fmt.Sprintf("%s already holds %s on %s", person.Name, overlap.ConflictingPeriod, overlap.ConflictingDate),
			})
		}
	}

	logger.Info("Validation finished",
		zap.Int("conflicts", len(result.Conflicts)),
		zap.Int("skipped_unknown_people", result.SkippedUnknownPeople))

	return result, nil
}
