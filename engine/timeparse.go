package engine

import (
	"strings"
	"time"

	"fieldboard.com/fieldboard/model"
)

// ParseTimeOfDay parses a clock value like "9:05" or "09:05" (24-hour).
// It returns nil for empty or malformed input instead of an error: a bad
// cell in a source sheet degrades to an absent time, it never fails a load.
func ParseTimeOfDay(raw string) *model.TimeOfDay {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		// Tolerate a seconds component, some sources append one.
		t, err = time.Parse("15:04:05", s)
	}
	if err != nil {
		return nil
	}

	return &model.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// DurationMinutes computes the visit length from check-in to check-out.
// Either side missing yields 0. A check-out that precedes the check-in is
// clamped to 0 rather than wrapped past midnight; overnight visits are not
// representable in a single day sheet.
func DurationMinutes(checkIn, checkOut *model.TimeOfDay) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	diff := checkOut.Minutes() - checkIn.Minutes()
	if diff < 0 {
		return 0
	}
	return diff
}
