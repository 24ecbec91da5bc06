package source

import (
	"context"
	"strings"

	"fieldboard.com/fieldboard/model"
)

// Reader fetches the per-day visit tables from an external spreadsheet
// source. A day whose sheet is missing is simply absent from the result;
// only a failure to reach the source at all is an error.
type Reader interface {
	Fetch(ctx context.Context) (map[model.Day][]model.RawRecord, error)
}

// recordsFromRows converts a header row plus data rows into loosely-typed
// records. Rows shorter than the header are padded with empty cells; rows
// with no content at all are skipped.
func recordsFromRows(rows [][]string) []model.RawRecord {
	if len(rows) < 2 {
		return nil
	}

	headers := rows[0]
	var records []model.RawRecord

	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rec := make(model.RawRecord, len(headers))
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			value := ""
			if i < len(row) {
				value = row[i]
			}
			rec[header] = value
		}
		records = append(records, rec)
	}

	return records
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
