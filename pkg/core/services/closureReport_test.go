package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/roster"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

func closureStore() *mockStore {
	return &mockStore{
		sites: map[string]*db.Site{
			"site-1": {ID: "site-1", Name: "Clinique Centre", RequiresClosure: true},
			"site-2": {ID: "site-2", Name: "Clinique Lac"},
		},
	}
}

func TestClosureReport_CompliantWeek(t *testing.T) {
	store := closureStore()
	store.assignments = []db.Assignment{
		{ID: "a1", SiteID: "site-1", Day: "2025-03-03", Period: "matin", PersonIDs: []string{"p1"}, Is1R: true},
		{ID: "a2", SiteID: "site-1", Day: "2025-03-03", Period: "matin", PersonIDs: []string{"p2"}, Is2F: true},
	}

	result, err := ClosureReport(context.Background(), store, zap.NewNop(), "site-1", "2025-03-03", "2025-03-03")
	require.NoError(t, err)

	assert.True(t, result.NeedsClosure)
	assert.Equal(t, "Clinique Centre", result.SiteName)
	require.Len(t, result.Days, 1)
	assert.True(t, result.Days[0].Compliant())
	assert.Empty(t, result.Issues)
	assert.True(t, result.Compliant)
}

func TestClosureReport_SingleBadDayFailsTheRange(t *testing.T) {
	store := closureStore()
	store.assignments = []db.Assignment{
		// Monday is fine
		{ID: "a1", SiteID: "site-1", Day: "2025-03-03", PersonIDs: []string{"p1"}, Is1R: true},
		{ID: "a2", SiteID: "site-1", Day: "2025-03-03", PersonIDs: []string{"p2"}, Is2F: true},
		// Tuesday has two 1R holders
		{ID: "a3", SiteID: "site-1", Day: "2025-03-04", PersonIDs: []string{"p1"}, Is1R: true},
		{ID: "a4", SiteID: "site-1", Day: "2025-03-04", PersonIDs: []string{"p2"}, Is1R: true},
		{ID: "a5", SiteID: "site-1", Day: "2025-03-04", PersonIDs: []string{"p3"}, Is2F: true},
	}

	result, err := ClosureReport(context.Background(), store, zap.NewNop(), "site-1", "2025-03-03", "2025-03-04")
	require.NoError(t, err)

	assert.False(t, result.Compliant)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "2025-03-04", result.Issues[0].Date)
	assert.Equal(t, "1R", result.Issues[0].Marker)
	assert.Equal(t, roster.ClosureOverstaffed, result.Issues[0].Kind)
}

func TestClosureReport_EmptyDayIsUnderstaffed(t *testing.T) {
	store := closureStore()

	result, err := ClosureReport(context.Background(), store, zap.NewNop(), "site-1", "2025-03-03", "2025-03-03")
	require.NoError(t, err)

	assert.False(t, result.Compliant)
	require.Len(t, result.Issues, 2)
	for _, issue := range result.Issues {
		assert.Equal(t, roster.ClosureUnderstaffed, issue.Kind)
	}
}

func TestClosureReport_NonClosingSite(t *testing.T) {
	store := closureStore()

	result, err := ClosureReport(context.Background(), store, zap.NewNop(), "site-2", "2025-03-03", "2025-03-08")
	require.NoError(t, err)

	assert.False(t, result.NeedsClosure)
	assert.Empty(t, result.Days)
	assert.True(t, result.Compliant)
}

func TestClosureReport_UnknownSite(t *testing.T) {
	store := closureStore()

	_, err := ClosureReport(context.Background(), store, zap.NewNop(), "site-missing", "2025-03-03", "2025-03-08")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestClosureReport_StoreFailurePropagates(t *testing.T) {
	store := closureStore()
	store.getAssignmentsErr = errors.New("store down")

	_, err := ClosureReport(context.Background(), store, zap.NewNop(), "site-1", "2025-03-03", "2025-03-08")
	assert.Error(t, err)
}
