package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"fieldboard.com/fieldboard/model"
)

// WorkbookReader reads the six weekday sheets from a local .xlsx workbook.
type WorkbookReader struct {
	Path string
}

func NewWorkbookReader(path string) *WorkbookReader {
	return &WorkbookReader{Path: path}
}

func (w *WorkbookReader) Fetch(ctx context.Context) (map[model.Day][]model.RawRecord, error) {
	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", w.Path, err)
	}
	defer f.Close()

	present := make(map[string]bool)
	for _, sheet := range f.GetSheetList() {
		present[sheet] = true
	}

	tables := make(map[model.Day][]model.RawRecord)
	for _, day := range model.Days {
		if !present[string(day)] {
			continue
		}
		rows, err := f.GetRows(string(day))
		if err != nil {
			fmt.Printf("[WARN] failed to read sheet %s: %v\n", day, err)
			continue
		}
		if records := recordsFromRows(rows); len(records) > 0 {
			tables[day] = records
		}
	}

	return tables, nil
}
