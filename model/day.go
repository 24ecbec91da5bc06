package model

// Day identifies which weekday sheet a visit record came from.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
)

// Days is the canonical reporting week, in display order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayIndex returns the position of d in the canonical week, or -1 if d is
// not one of the six known labels.
func DayIndex(d Day) int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

// ParseDay maps a sheet or query label to a Day.
func ParseDay(s string) (Day, bool) {
	d := Day(s)
	if DayIndex(d) < 0 {
		return "", false
	}
	return d, true
}
