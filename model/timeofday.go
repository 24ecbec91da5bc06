package model

import (
	"encoding/json"
	"fmt"
	"time"
)

const timeOfDayLayout = "15:04" // HH:mm

// TimeOfDay is a clock time at minute granularity. Visit records carry
// pointers to it so an absent or unparsable source value stays nil.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the minutes elapsed since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*t = TimeOfDay{}
		return nil
	}
	parsed, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return fmt.Errorf("invalid time format: %v", err)
	}
	t.Hour = parsed.Hour()
	t.Minute = parsed.Minute()
	return nil
}
