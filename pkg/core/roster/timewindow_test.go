package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	// Plain intersection
	assert.True(t, Overlaps(8*60, 11*60, 7*60+30, 12*60))

	// Touching boundaries do not overlap: end of morning == start of lunch
	assert.False(t, Overlaps(7*60+30, 12*60, 12*60, 13*60))
	assert.False(t, Overlaps(12*60, 13*60, 7*60+30, 12*60))

	// Window spanning the whole day overlaps both periods
	assert.True(t, Overlaps(7*60, 13*60+30, 7*60+30, 12*60))
	assert.True(t, Overlaps(7*60, 13*60+30, 13*60, 17*60))

	// Disjoint
	assert.False(t, Overlaps(17*60, 18*60, 13*60, 17*60))
}

func TestWithin(t *testing.T) {
	assert.True(t, Within(8*60, 11*60, 7*60+30, 12*60))
	assert.True(t, Within(7*60+30, 12*60, 7*60+30, 12*60))
	assert.False(t, Within(7*60, 11*60, 7*60+30, 12*60))
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("07:30")
	require.NoError(t, err)
	assert.Equal(t, 7*60+30, minutes)

	minutes, err = ParseClock("17:00")
	require.NoError(t, err)
	assert.Equal(t, 17*60, minutes)

	// Seconds are tolerated
	minutes, err = ParseClock("13:00:00")
	require.NoError(t, err)
	assert.Equal(t, 13*60, minutes)

	_, err = ParseClock("")
	assert.Error(t, err)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("noon")
	assert.Error(t, err)
}
