package roster

import (
	"fmt"
	"strconv"
	"strings"
)

// Overlaps reports whether two half-open clock windows [startA, endA) and
// [startB, endB) share any time. Windows that only touch at a boundary
// (e.g. end of morning equals start of afternoon) do not overlap.
// Times are minutes since midnight.
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}

// Within reports whether [start, end) lies entirely inside [outerStart, outerEnd)
func Within(start, end, outerStart, outerEnd int) bool {
	return start >= outerStart && end <= outerEnd
}

// ParseClock parses an "HH:MM" clock time into minutes since midnight.
// "HH:MM:SS" is accepted too; the seconds are ignored.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hours*60 + minutes, nil
}
