package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
)

// mockClaimsStore implements ClaimsStore for testing
type mockClaimsStore struct {
	claims map[string][]model.Period // "<person>|<date>" -> claimed periods
	err    error
}

func (m *mockClaimsStore) GetClaimedPeriods(ctx context.Context, personID, date string) ([]model.Period, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.claims[personID+"|"+date], nil
}

func TestCheckOverlap_MorningAlreadyClaimed(t *testing.T) {
	store := &mockClaimsStore{claims: map[string][]model.Period{
		"person-1|2025-03-03": {model.PeriodMorning},
	}}

	result, err := CheckOverlap(context.Background(), store, "person-1", "2025-03-03",
		[]model.Period{model.PeriodMorning, model.PeriodAfternoon})
	require.NoError(t, err)

	assert.True(t, result.HasOverlap)
	assert.Equal(t, model.PeriodMorning, result.ConflictingPeriod)
	assert.Equal(t, "2025-03-03", result.ConflictingDate)
}

func TestCheckOverlap_MorningReportedFirst(t *testing.T) {
	// Both periods conflict; morning must be reported regardless of the
	// order the store returns claims in
	store := &mockClaimsStore{claims: map[string][]model.Period{
		"person-1|2025-03-03": {model.PeriodAfternoon, model.PeriodMorning},
	}}

	result, err := CheckOverlap(context.Background(), store, "person-1", "2025-03-03",
		[]model.Period{model.PeriodAfternoon, model.PeriodMorning})
	require.NoError(t, err)

	assert.True(t, result.HasOverlap)
	assert.Equal(t, model.PeriodMorning, result.ConflictingPeriod)
}

func TestCheckOverlap_NoConflict(t *testing.T) {
	store := &mockClaimsStore{claims: map[string][]model.Period{
		"person-1|2025-03-03": {model.PeriodMorning},
	}}

	result, err := CheckOverlap(context.Background(), store, "person-1", "2025-03-03",
		[]model.Period{model.PeriodAfternoon})
	require.NoError(t, err)

	assert.False(t, result.HasOverlap)
	assert.Empty(t, result.ConflictingPeriod)
}

func TestCheckOverlap_NoExistingClaims(t *testing.T) {
	store := &mockClaimsStore{claims: map[string][]model.Period{}}

	result, err := CheckOverlap(context.Background(), store, "person-2", "2025-03-03",
		[]model.Period{model.PeriodMorning, model.PeriodAfternoon})
	require.NoError(t, err)

	assert.False(t, result.HasOverlap)
}

func TestCheckOverlap_StoreFailurePropagates(t *testing.T) {
	store := &mockClaimsStore{err: errors.New("claims store down")}

	_, err := CheckOverlap(context.Background(), store, "person-1", "2025-03-03",
		[]model.Period{model.PeriodMorning})
	assert.Error(t, err)
}
