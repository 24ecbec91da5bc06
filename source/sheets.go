package source

import (
	"context"
	"encoding/csv"
	"fmt"

	"fieldboard.com/fieldboard/model"
)

// SheetsReader pulls each weekday tab of a shared spreadsheet through the
// document's CSV export endpoint. The document must be link-readable; the
// reader does not authenticate.
type SheetsReader struct {
	Transport     *Transport
	SpreadsheetID string
}

func NewSheetsReader(baseURL, spreadsheetID string) *SheetsReader {
	return &SheetsReader{
		Transport:     NewTransport(baseURL),
		SpreadsheetID: spreadsheetID,
	}
}

func (s *SheetsReader) Fetch(ctx context.Context) (map[model.Day][]model.RawRecord, error) {
	tables := make(map[model.Day][]model.RawRecord)

	for _, day := range model.Days {
		records, err := s.fetchSheet(ctx, day)
		if err != nil {
			// A missing or unreadable tab is not fatal, the day just
			// contributes no records.
			fmt.Printf("[WARN] skipping sheet %s: %v\n", day, err)
			continue
		}
		if len(records) > 0 {
			tables[day] = records
		}
	}

	return tables, nil
}

func (s *SheetsReader) fetchSheet(ctx context.Context, day model.Day) ([]model.RawRecord, error) {
	path := fmt.Sprintf("/spreadsheets/d/%s/gviz/tq", s.SpreadsheetID)
	query := map[string]string{
		"tqx":   "out:csv",
		"sheet": string(day),
	}

	resp, err := s.Transport.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("export returned status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	return recordsFromRows(rows), nil
}
