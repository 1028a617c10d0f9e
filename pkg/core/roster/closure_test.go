package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
)

func closingAssignment(date, personID string, is1R, is2F, is3F bool) model.Assignment {
	return model.Assignment{
		Date:      date,
		PersonIDs: []string{personID},
		Is1R:      is1R,
		Is2F:      is2F,
		Is3F:      is3F,
	}
}

func TestEvaluateClosure_CompliantDay(t *testing.T) {
	assignments := []model.Assignment{
		closingAssignment("2025-03-03", "p1", true, false, false),
		closingAssignment("2025-03-03", "p2", false, true, false),
	}

	statuses := EvaluateClosure([]string{"2025-03-03"}, assignments)
	require.Len(t, statuses, 1)

	day := statuses[0]
	assert.True(t, day.HasUnique1R)
	assert.True(t, day.HasUnique2F)
	assert.False(t, day.Multiple1R)
	assert.False(t, day.Multiple2F)
	assert.False(t, day.Multiple3F)
	assert.True(t, day.Compliant())
}

func TestEvaluateClosure_DuplicateHolderIsOverstaffed(t *testing.T) {
	assignments := []model.Assignment{
		closingAssignment("2025-03-03", "p1", true, false, false),
		closingAssignment("2025-03-03", "p2", true, false, false),
		closingAssignment("2025-03-03", "p3", false, true, false),
	}

	statuses := EvaluateClosure([]string{"2025-03-03"}, assignments)
	require.Len(t, statuses, 1)

	day := statuses[0]
	assert.True(t, day.Multiple1R)
	assert.False(t, day.HasUnique1R)
	assert.True(t, day.HasUnique2F)
	assert.False(t, day.Compliant())
}

func TestEvaluateClosure_MissingHolderIsUnderstaffed(t *testing.T) {
	assignments := []model.Assignment{
		closingAssignment("2025-03-03", "p1", true, false, false),
	}

	statuses := EvaluateClosure([]string{"2025-03-03"}, assignments)
	require.Len(t, statuses, 1)

	day := statuses[0]
	assert.False(t, day.HasUnique2F, "Nobody holds 2F")
	assert.False(t, day.Multiple2F, "Zero holders is not the overstaffed failure")
	assert.False(t, day.Compliant())
}

func TestEvaluateClosure_CancelledAssignmentsIgnored(t *testing.T) {
	cancelled := closingAssignment("2025-03-03", "p2", true, false, false)
	cancelled.Cancelled = true

	assignments := []model.Assignment{
		closingAssignment("2025-03-03", "p1", true, false, false),
		closingAssignment("2025-03-03", "p3", false, true, false),
		cancelled,
	}

	statuses := EvaluateClosure([]string{"2025-03-03"}, assignments)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Compliant())
}

func TestEvaluateClosure_SamePersonCountedOnce(t *testing.T) {
	// The same person holding 1R on two assignments is still a unique holder
	assignments := []model.Assignment{
		closingAssignment("2025-03-03", "p1", true, false, false),
		closingAssignment("2025-03-03", "p1", true, false, false),
		closingAssignment("2025-03-03", "p2", false, true, false),
	}

	statuses := EvaluateClosure([]string{"2025-03-03"}, assignments)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].HasUnique1R)
	assert.False(t, statuses[0].Multiple1R)
}

func TestEvaluateClosure_OneBadDayBreaksTheWeek(t *testing.T) {
	days := []string{"2025-03-03", "2025-03-04", "2025-03-05"}
	assignments := []model.Assignment{
		// Monday and Tuesday compliant
		closingAssignment("2025-03-03", "p1", true, false, false),
		closingAssignment("2025-03-03", "p2", false, true, false),
		closingAssignment("2025-03-04", "p1", true, false, false),
		closingAssignment("2025-03-04", "p2", false, true, false),
		// Wednesday has two 1R holders
		closingAssignment("2025-03-05", "p1", true, false, false),
		closingAssignment("2025-03-05", "p2", true, false, false),
		closingAssignment("2025-03-05", "p3", false, true, false),
	}

	statuses := EvaluateClosure(days, assignments)
	require.Len(t, statuses, 3)
	assert.True(t, statuses[0].Compliant())
	assert.True(t, statuses[1].Compliant())
	assert.False(t, statuses[2].Compliant())

	issues := ClosureIssues(statuses)
	require.Len(t, issues, 1)
	assert.Equal(t, "2025-03-05", issues[0].Date)
	assert.Equal(t, "1R", issues[0].Marker)
	assert.Equal(t, ClosureOverstaffed, issues[0].Kind)
}

func TestClosureIssues_DistinguishesFailureModes(t *testing.T) {
	statuses := []model.ClosureDayStatus{
		{Date: "2025-03-03", HasUnique1R: false, HasUnique2F: true},                  // nobody on 1R
		{Date: "2025-03-04", Multiple1R: true, HasUnique2F: true},                    // two on 1R
		{Date: "2025-03-05", HasUnique1R: true, HasUnique2F: true, Multiple3F: true}, // duplicated 3F
	}

	issues := ClosureIssues(statuses)
	require.Len(t, issues, 3)

	assert.Equal(t, ClosureUnderstaffed, issues[0].Kind)
	assert.Equal(t, "1R", issues[0].Marker)
	assert.Equal(t, ClosureOverstaffed, issues[1].Kind)
	assert.Equal(t, "1R", issues[1].Marker)
	assert.Equal(t, ClosureOverstaffed, issues[2].Kind)
	assert.Equal(t, "3F", issues[2].Marker)
}

func TestClosureIssues_EmptyForCompliantRange(t *testing.T) {
	statuses := []model.ClosureDayStatus{
		{Date: "2025-03-03", HasUnique1R: true, HasUnique2F: true},
	}
	assert.Empty(t, ClosureIssues(statuses))
}
