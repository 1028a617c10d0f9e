package roster

import (
	"fmt"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
)

// ClosureIssueKind distinguishes the two closure failure modes
type ClosureIssueKind string

const (
	// ClosureUnderstaffed means no one holds a required closing role that day
	ClosureUnderstaffed ClosureIssueKind = "understaffed"
	// ClosureOverstaffed means more than one person holds the same closing role
	ClosureOverstaffed ClosureIssueKind = "overstaffed"
)

// ClosureIssue pinpoints one failing day and marker for operator reporting
type ClosureIssue struct {
	Date        string
	Marker      string // "1R", "2F" or "3F"
	Kind        ClosureIssueKind
	Description string
}

// EvaluateClosure computes per-day closing-responsibility coverage for one
// site over a range of days. Assignments must already be filtered to the
// site; cancelled assignments are ignored. For each day the distinct people
// holding each closing marker are counted: exactly one holder of 1R and of
// 2F is required, and no marker may have more than one holder.
func EvaluateClosure(days []string, assignments []model.Assignment) []model.ClosureDayStatus {
	// Distinct holders per day and marker
	type markerHolders struct {
		holders1R map[string]bool
		holders2F map[string]bool
		holders3F map[string]bool
	}
	byDay := make(map[string]*markerHolders, len(days))
	for _, day := range days {
		byDay[day] = &markerHolders{
			holders1R: make(map[string]bool),
			holders2F: make(map[string]bool),
			holders3F: make(map[string]bool),
		}
	}

	for _, assignment := range assignments {
		if assignment.Cancelled {
			continue
		}
		holders, ok := byDay[assignment.Date]
		if !ok {
			continue // outside the requested range
		}
		for _, personID := range assignment.PersonIDs {
			if assignment.Is1R {
				holders.holders1R[personID] = true
			}
			if assignment.Is2F {
				holders.holders2F[personID] = true
			}
			if assignment.Is3F {
				holders.holders3F[personID] = true
			}
		}
	}

	statuses := make([]model.ClosureDayStatus, 0, len(days))
	for _, day := range days {
		holders := byDay[day]
		statuses = append(statuses, model.ClosureDayStatus{
			Date:        day,
			HasUnique1R: len(holders.holders1R) == 1,
			HasUnique2F: len(holders.holders2F) == 1,
			Multiple1R:  len(holders.holders1R) > 1,
			Multiple2F:  len(holders.holders2F) > 1,
			Multiple3F:  len(holders.holders3F) > 1,
		})
	}
	return statuses
}

// ClosureIssues expands non-compliant day statuses into per-marker issues.
// An empty slice means every day in the range is compliant; any issue at all
// marks the whole range as non-compliant.
func ClosureIssues(statuses []model.ClosureDayStatus) []ClosureIssue {
	var issues []ClosureIssue

	for _, status := range statuses {
		if status.Multiple1R {
			issues = append(issues, overstaffedIssue(status.Date, "1R"))
		} else if !status.HasUnique1R {
			issues = append(issues, understaffedIssue(status.Date, "1R"))
		}

		if status.Multiple2F {
			issues = append(issues, overstaffedIssue(status.Date, "2F"))
		} else if !status.HasUnique2F {
			issues = append(issues, understaffedIssue(status.Date, "2F"))
		}

		if status.Multiple3F {
			issues = append(issues, overstaffedIssue(status.Date, "3F"))
		}
	}

	return issues
}

func understaffedIssue(date, marker string) ClosureIssue {
	return ClosureIssue{
		Date:        date,
		Marker:      marker,
		Kind:        ClosureUnderstaffed,
		Description: fmt.Sprintf("No one holds closing role %s on %s", marker, date),
	}
}

func overstaffedIssue(date, marker string) ClosureIssue {
	return ClosureIssue{
		Date:        date,
		Marker:      marker,
		Kind:        ClosureOverstaffed,
		Description: fmt.Sprintf("More than one person holds closing role %s on %s", marker, date),
	}
}
