package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8090", cfg.Server.Addr)
	assert.Equal(t, SourceWorkbook, cfg.Source.Kind)
	assert.Equal(t, "visits.xlsx", cfg.Source.Path)
}

func TestParseSheetsSource(t *testing.T) {
	cfg, err := Parse([]byte(`
source:
  kind: sheets
  spreadsheetId: doc-123
`))
	assert.NoError(t, err)
	assert.Equal(t, SourceSheets, cfg.Source.Kind)
	assert.Equal(t, "doc-123", cfg.Source.SpreadsheetID)
	assert.Equal(t, "https://docs.google.com", cfg.Source.BaseURL)
}

func TestParseUnknownKind(t *testing.T) {
	_, err := Parse([]byte(`
source:
  kind: database
`))
	assert.Error(t, err)
}
