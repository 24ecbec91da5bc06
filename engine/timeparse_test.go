package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldboard.com/fieldboard/model"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected *model.TimeOfDay
	}{
		{
			name:     "Two digit hour",
			raw:      "09:30",
			expected: &model.TimeOfDay{Hour: 9, Minute: 30},
		},
		{
			name:     "Single digit hour",
			raw:      "9:05",
			expected: &model.TimeOfDay{Hour: 9, Minute: 5},
		},
		{
			name:     "Midnight",
			raw:      "00:00",
			expected: &model.TimeOfDay{Hour: 0, Minute: 0},
		},
		{
			name:     "End of day",
			raw:      "23:59",
			expected: &model.TimeOfDay{Hour: 23, Minute: 59},
		},
		{
			name:     "Seconds component tolerated",
			raw:      "14:45:30",
			expected: &model.TimeOfDay{Hour: 14, Minute: 45},
		},
		{
			name:     "Surrounding whitespace",
			raw:      "  08:15 ",
			expected: &model.TimeOfDay{Hour: 8, Minute: 15},
		},
		{
			name:     "Empty",
			raw:      "",
			expected: nil,
		},
		{
			name:     "Whitespace only",
			raw:      "   ",
			expected: nil,
		},
		{
			name:     "Hour out of range",
			raw:      "25:00",
			expected: nil,
		},
		{
			name:     "Minute out of range",
			raw:      "10:75",
			expected: nil,
		},
		{
			name:     "Not a time",
			raw:      "lunch",
			expected: nil,
		},
		{
			name:     "Missing minutes",
			raw:      "10:",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimeOfDay(tt.raw)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseTimeOfDayRange(t *testing.T) {
	// Every successfully parsed value must be a real clock time.
	for _, raw := range []string{"0:00", "7:59", "12:30", "23:01"} {
		got := ParseTimeOfDay(raw)
		if assert.NotNil(t, got, raw) {
			assert.GreaterOrEqual(t, got.Hour, 0)
			assert.LessOrEqual(t, got.Hour, 23)
			assert.GreaterOrEqual(t, got.Minute, 0)
			assert.LessOrEqual(t, got.Minute, 59)
		}
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  *model.TimeOfDay
		checkOut *model.TimeOfDay
		expected int
	}{
		{
			name:     "Half hour visit",
			checkIn:  &model.TimeOfDay{Hour: 9, Minute: 0},
			checkOut: &model.TimeOfDay{Hour: 9, Minute: 30},
			expected: 30,
		},
		{
			name:     "Crossing the hour",
			checkIn:  &model.TimeOfDay{Hour: 11, Minute: 45},
			checkOut: &model.TimeOfDay{Hour: 13, Minute: 10},
			expected: 85,
		},
		{
			name:     "Zero length",
			checkIn:  &model.TimeOfDay{Hour: 10, Minute: 0},
			checkOut: &model.TimeOfDay{Hour: 10, Minute: 0},
			expected: 0,
		},
		{
			name:     "Check-out before check-in clamps to zero",
			checkIn:  &model.TimeOfDay{Hour: 10, Minute: 0},
			checkOut: &model.TimeOfDay{Hour: 9, Minute: 0},
			expected: 0,
		},
		{
			name:     "Missing check-in",
			checkIn:  nil,
			checkOut: &model.TimeOfDay{Hour: 9, Minute: 0},
			expected: 0,
		},
		{
			name:     "Missing check-out",
			checkIn:  &model.TimeOfDay{Hour: 9, Minute: 0},
			checkOut: nil,
			expected: 0,
		},
		{
			name:     "Both missing",
			checkIn:  nil,
			checkOut: nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DurationMinutes(tt.checkIn, tt.checkOut)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}
