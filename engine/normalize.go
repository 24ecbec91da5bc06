package engine

import (
	"strconv"
	"strings"

	"fieldboard.com/fieldboard/model"
)

// Normalize unions the per-day tables delivered by a source reader into one
// typed record sequence. Days are taken in canonical Monday..Saturday order;
// a day absent from tables simply contributes nothing. Row order within each
// day is preserved. An empty result means "no data yet", not a failure.
func Normalize(tables map[model.Day][]model.RawRecord) []model.VisitRecord {
	var records []model.VisitRecord
	for _, day := range model.Days {
		rows, ok := tables[day]
		if !ok {
			continue
		}
		for _, row := range rows {
			records = append(records, coerceRecord(day, row))
		}
	}
	return records
}

// coerceRecord is the schema-coercion boundary: every missing/malformed
// field policy lives here so the aggregation layer never branches on nils.
func coerceRecord(day model.Day, row model.RawRecord) model.VisitRecord {
	rec := model.VisitRecord{
		Day:           day,
		PersonnelName: field(row, model.ColPersonnelName),
		VisitNumber:   coerceVisitNumber(field(row, model.ColVisitNumber)),
		Location:      field(row, model.ColLocation),
		CheckInTime:   ParseTimeOfDay(field(row, model.ColCheckInTime)),
		CheckOutTime:  ParseTimeOfDay(field(row, model.ColCheckOutTime)),
		LoginTime:     ParseTimeOfDay(field(row, model.ColLoginTime)),
		LogoutTime:    ParseTimeOfDay(field(row, model.ColLogoutTime)),
		MapsLink:      field(row, model.ColMapsLink),
		Selfie:        field(row, model.ColSelfie),
	}
	rec.DurationMinutes = DurationMinutes(rec.CheckInTime, rec.CheckOutTime)

	for key, value := range row {
		if recognisedColumn(key) {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string)
		}
		rec.Extra[key] = value
	}

	return rec
}

func field(row model.RawRecord, col string) string {
	return strings.TrimSpace(row[col])
}

// coerceVisitNumber turns the "Visit #" cell into a non-negative int.
// Non-numeric or missing values default to 0; some sources hand back
// numeric cells formatted as floats ("3.0").
func coerceVisitNumber(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0
		}
		n = int(f)
	}
	if n < 0 {
		return 0
	}
	return n
}

func recognisedColumn(col string) bool {
	switch col {
	case model.ColPersonnelName, model.ColVisitNumber, model.ColLocation,
		model.ColCheckInTime, model.ColCheckOutTime,
		model.ColLoginTime, model.ColLogoutTime,
		model.ColMapsLink, model.ColSelfie:
		return true
	}
	return false
}
