package handlers

import (
	"time"

	"fieldboard.com/fieldboard/model"
)

type SnapshotDTO struct {
	ID       string    `json:"id"`
	LoadedAt time.Time `json:"loadedAt"`
}

type PersonnelStatsDTO struct {
	Name               string  `json:"name"`
	Visits             int     `json:"visits"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes"`
	TotalMinutes       int     `json:"totalMinutes"`
	FieldHours         float64 `json:"fieldHours"`
}

type DayCountDTO struct {
	Day    model.Day `json:"day"`
	Visits int       `json:"visits"`
}

type LocationCountDTO struct {
	Location string `json:"location"`
	Visits   int    `json:"visits"`
}

type LocationStatsDTO struct {
	Location           string  `json:"location"`
	Visits             int     `json:"visits"`
	Personnel          int     `json:"personnel"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes"`
	TotalMinutes       int     `json:"totalMinutes"`
}

type VisitDTO struct {
	Day             model.Day        `json:"day"`
	VisitNumber     int              `json:"visitNumber"`
	Location        string           `json:"location"`
	CheckInTime     *model.TimeOfDay `json:"checkInTime"`
	CheckOutTime    *model.TimeOfDay `json:"checkOutTime"`
	DurationMinutes int              `json:"durationMinutes"`
	MapsLink        string           `json:"mapsLink,omitempty"`
}

func newVisitDTO(r model.VisitRecord) VisitDTO {
	return VisitDTO{
		Day:             r.Day,
		VisitNumber:     r.VisitNumber,
		Location:        r.Location,
		CheckInTime:     r.CheckInTime,
		CheckOutTime:    r.CheckOutTime,
		DurationMinutes: r.DurationMinutes,
		MapsLink:        r.MapsLink,
	}
}
