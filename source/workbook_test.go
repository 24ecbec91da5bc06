package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"fieldboard.com/fieldboard/model"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Monday"); err != nil {
		t.Fatalf("failed to create sheet: %v", err)
	}
	mondayRows := [][]interface{}{
		{"Personnel Name", "Visit #", "Location", "Check-In Time", "Check-Out Time"},
		{"Alice", "1", "North Depot", "09:00", "09:45"},
		{"Bob", "1", "Harbour Site", "10:15", "11:00"},
		{}, // blank row, must be skipped
		{"Alice", "2", "South Yard", "13:00", "13:30"},
	}
	for i, row := range mondayRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Monday", cell, &row); err != nil {
			t.Fatalf("failed to write row: %v", err)
		}
	}

	if _, err := f.NewSheet("Wednesday"); err != nil {
		t.Fatalf("failed to create sheet: %v", err)
	}
	wednesdayRows := [][]interface{}{
		{"Personnel Name", "Visit #", "Location", "Check-In Time", "Check-Out Time", "Notes"},
		{"Bob", "1", "North Depot", "08:30", "", "keys with office"},
	}
	for i, row := range wednesdayRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Wednesday", cell, &row); err != nil {
			t.Fatalf("failed to write row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "visits.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func TestWorkbookReaderFetch(t *testing.T) {
	path := writeTestWorkbook(t)

	reader := NewWorkbookReader(path)
	tables, err := reader.Fetch(context.Background())
	assert.NoError(t, err)

	// Only the sheets that exist contribute a table.
	assert.Len(t, tables, 2)
	assert.NotContains(t, tables, model.Tuesday)

	monday := tables[model.Monday]
	if assert.Len(t, monday, 3) {
		assert.Equal(t, "Alice", monday[0]["Personnel Name"])
		assert.Equal(t, "09:00", monday[0]["Check-In Time"])
		assert.Equal(t, "South Yard", monday[2]["Location"])
	}

	wednesday := tables[model.Wednesday]
	if assert.Len(t, wednesday, 1) {
		// Short row padded, extra column carried through.
		assert.Equal(t, "", wednesday[0]["Check-Out Time"])
		assert.Equal(t, "keys with office", wednesday[0]["Notes"])
	}
}

func TestWorkbookReaderMissingFile(t *testing.T) {
	reader := NewWorkbookReader(filepath.Join(t.TempDir(), "nope.xlsx"))

	_, err := reader.Fetch(context.Background())
	assert.Error(t, err)
}

func TestRecordsFromRows(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected int
	}{
		{
			name:     "Nil rows",
			rows:     nil,
			expected: 0,
		},
		{
			name:     "Header only",
			rows:     [][]string{{"Personnel Name"}},
			expected: 0,
		},
		{
			name: "Blank rows skipped",
			rows: [][]string{
				{"Personnel Name"},
				{"  "},
				{"Alice"},
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, recordsFromRows(tt.rows), tt.expected)
		})
	}
}
