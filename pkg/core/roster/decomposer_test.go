package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
)

// mockDirectory implements Directory for testing
type mockDirectory struct {
	sites   map[string]*SiteInfo
	people  map[string]*PersonInfo
	siteErr error
	peopErr error
}

func (m *mockDirectory) GetSite(ctx context.Context, id string) (*SiteInfo, error) {
	if m.siteErr != nil {
		return nil, m.siteErr
	}
	return m.sites[id], nil
}

func (m *mockDirectory) GetPerson(ctx context.Context, id string) (*PersonInfo, error) {
	if m.peopErr != nil {
		return nil, m.peopErr
	}
	return m.people[id], nil
}

func testDirectory() *mockDirectory {
	return &mockDirectory{
		sites: map[string]*SiteInfo{
			"site-1": {ID: "site-1", Name: "Clinique Centre", RequiresClosure: true},
		},
		people: map[string]*PersonInfo{
			"person-1": {ID: "person-1", Name: "Anne Morel", PreferredSiteID: "site-1"},
		},
	}
}

func TestDecomposeNeed_SpansBothPeriods(t *testing.T) {
	decomposer := NewSlotDecomposer(testDirectory(), zap.NewNop())

	need := model.Need{
		ID:     "need-1",
		Date:   "2025-03-03",
		SiteID: "site-1",
		Start:  "07:00",
		End:    "13:30",
		Kind:   model.NeedKindPhysician,
	}

	slots, err := decomposer.DecomposeNeed(context.Background(), need)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, "need-1-matin", slots[0].ID)
	assert.Equal(t, model.PeriodMorning, slots[0].Period)
	assert.Equal(t, "need-1-apres_midi", slots[1].ID)
	assert.Equal(t, model.PeriodAfternoon, slots[1].Period)

	for _, slot := range slots {
		assert.Equal(t, "need-1", slot.SourceID)
		assert.Equal(t, model.SlotSourceNeed, slot.Source)
		assert.Equal(t, "2025-03-03", slot.Date)
		assert.Equal(t, "Clinique Centre", slot.SiteName)
		assert.True(t, slot.SiteRequiresClosure)
	}
}

func TestDecomposeNeed_SinglePeriod(t *testing.T) {
	decomposer := NewSlotDecomposer(testDirectory(), zap.NewNop())

	need := model.Need{ID: "need-2", Date: "2025-03-03", SiteID: "site-1", Start: "08:00", End: "11:00"}

	slots, err := decomposer.DecomposeNeed(context.Background(), need)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "need-2-matin", slots[0].ID)
}

func TestDecomposeNeed_LunchGapYieldsNothing(t *testing.T) {
	decomposer := NewSlotDecomposer(testDirectory(), zap.NewNop())

	need := model.Need{ID: "need-3", Date: "2025-03-03", SiteID: "site-1", Start: "12:00", End: "13:00"}

	slots, err := decomposer.DecomposeNeed(context.Background(), need)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestDecomposeNeed_NoTimeFieldsYieldsNothing(t *testing.T) {
	decomposer := NewSlotDecomposer(testDirectory(), zap.NewNop())

	// Pure-administrative record without clinic hours
	need := model.Need{ID: "need-4", Date: "2025-03-03", SiteID: "site-1"}

	slots, err := decomposer.DecomposeNeed(context.Background(), need)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestDecomposeNeed_UnknownSiteSkipsRecord(t *testing.T) {
	decomposer := NewSlotDecomposer(testDirectory(), zap.NewNop())

	need := model.Need{ID: "need-5", Date: "2025-03-03", SiteID: "site-missing", Start: "08:00", End: "11:00"}

	slots, err := decomposer.DecomposeNeed(context.Background(), need)
	require.NoError(t, err)
	assert.Empty(t, slots, "Unresolvable site should skip the record, not fail")
}

func TestDecomposeNeed_DirectoryFailurePropagates(t *testing.T) {
	directory := testDirectory()
	directory.siteErr = errors.New("directory unavailable")
	decomposer := NewSlotDecomposer(directory, zap.NewNop())

	need := model.Need{ID: "need-6", Date: "2025-03-03", SiteID: "site-1", Start: "08:00", End: "11:00"}

	_, err := decomposer.DecomposeNeed(context.Background(), need)
	assert.Error(t, err)
}

func TestDecomposeNeed_Idempotent(t *testing.T) {
	decomposer := NewSlotDecomposer(testDirectory(), zap.NewNop())

	need := model.Need{ID: "need-7", Date: "2025-03-03", SiteID: "site-1", Start: "07:00", End: "13:30"}

	first, err := decomposer.DecomposeNeed(context.Background(), need)
	require.NoError(t, err)
	second, err := decomposer.DecomposeNeed(context.Background(), need)
	require.NoError(t, err)

	assert.Equal(t, first, second, "Re-decomposition must yield identical slots")
}

func TestDecomposeCapacity_CarriesPersonAttributes(t *testing.T) {
	decomposer := NewSlotDecomposer(testDirectory(), zap.NewNop())

	capacity := model.Capacity{
		ID:                   "cap-1",
		Date:                 "2025-03-04",
		Start:                "13:30",
		End:                  "17:00",
		PersonID:             "person-1",
		IsBackup:             true,
		Specialties:          []string{"ophtalmo"},
		PrefersAlternateSite: true,
	}

	slots, err := decomposer.DecomposeCapacity(context.Background(), capacity)
	require.NoError(t, err)
	require.Len(t, slots, 1)

	slot := slots[0]
	assert.Equal(t, "cap-1-apres_midi", slot.ID)
	assert.Equal(t, model.SlotSourceCapacity, slot.Source)
	assert.Equal(t, "Anne Morel", slot.PersonName)
	assert.Equal(t, "site-1", slot.SiteID)
	assert.True(t, slot.IsBackup)
	assert.True(t, slot.PrefersAlternateSite)
	assert.Equal(t, []string{"ophtalmo"}, slot.Specialties)
}

func TestDecomposeCapacity_UnknownPersonSkipsRecord(t *testing.T) {
	decomposer := NewSlotDecomposer(testDirectory(), zap.NewNop())

	capacity := model.Capacity{ID: "cap-2", Date: "2025-03-04", Start: "08:00", End: "11:00", PersonID: "person-missing"}

	slots, err := decomposer.DecomposeCapacity(context.Background(), capacity)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
