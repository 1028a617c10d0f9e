package roster

import (
	"context"
	"fmt"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
)

// ClaimsStore reads the periods a person already holds on a date
type ClaimsStore interface {
	GetClaimedPeriods(ctx context.Context, personID, date string) ([]model.Period, error)
}

// OverlapResult reports whether any candidate period is already claimed.
// ConflictingPeriod and ConflictingDate are only set when HasOverlap is true.
type OverlapResult struct {
	HasOverlap        bool
	ConflictingPeriod model.Period
	ConflictingDate   string
}

// CheckOverlap verifies that none of the candidate periods is already
// claimed by the person on the date. Candidates are checked morning first,
// so the same stored state always reports the same conflicting period.
//
// The check is advisory: it reads current claims and decides, but performs
// no write and takes no lock. Two concurrent check-then-commit sequences can
// still race; the claim table's unique key on (person, day, period) is the
// real mutual exclusion, and callers should re-validate right before commit.
func CheckOverlap(ctx context.Context, claims ClaimsStore, personID, date string, candidatePeriods []model.Period) (*OverlapResult, error) {
	claimed, err := claims.GetClaimedPeriods(ctx, personID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch claims for person %s on %s: %w", personID, date, err)
	}

	claimedSet := make(map[model.Period]bool, len(claimed))
	for _, period := range claimed {
		claimedSet[period] = true
	}
	candidateSet := make(map[model.Period]bool, len(candidatePeriods))
	for _, period := range candidatePeriods {
		candidateSet[period] = true
	}

	for _, period := range model.AllPeriods {
		if claimedSet[period] && candidateSet[period] {
			return &OverlapResult{
				HasOverlap:        true,
				ConflictingPeriod: period,
				ConflictingDate:   date,
			}, nil
		}
	}

	return &OverlapResult{}, nil
}
