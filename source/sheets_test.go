package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldboard.com/fieldboard/model"
)

func TestSheetsReaderFetch(t *testing.T) {
	csvBySheet := map[string]string{
		"Monday": "\"Personnel Name\",\"Visit #\",\"Location\",\"Check-In Time\",\"Check-Out Time\"\n" +
			"\"Alice\",\"1\",\"North Depot\",\"09:00\",\"09:45\"\n" +
			"\"Bob\",\"1\",\"Harbour Site\",\"10:15\",\"11:00\"\n",
		"Thursday": "\"Personnel Name\",\"Visit #\",\"Location\",\"Check-In Time\",\"Check-Out Time\"\n" +
			"\"Cara\",\"1\",\"South Yard\",\"08:00\",\"08:20\"\n",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spreadsheets/d/doc-123/gviz/tq", r.URL.Path)
		assert.Equal(t, "out:csv", r.URL.Query().Get("tqx"))

		body, ok := csvBySheet[r.URL.Query().Get("sheet")]
		if !ok {
			// The export endpoint answers 400 for tabs that do not exist.
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	reader := NewSheetsReader(server.URL, "doc-123")
	tables, err := reader.Fetch(context.Background())
	assert.NoError(t, err)

	// Missing tabs are skipped, not errors.
	assert.Len(t, tables, 2)
	assert.Contains(t, tables, model.Monday)
	assert.Contains(t, tables, model.Thursday)
	assert.NotContains(t, tables, model.Saturday)

	monday := tables[model.Monday]
	if assert.Len(t, monday, 2) {
		assert.Equal(t, "Alice", monday[0]["Personnel Name"])
		assert.Equal(t, "Harbour Site", monday[1]["Location"])
	}
}

func TestSheetsReaderAllTabsMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	reader := NewSheetsReader(server.URL, "doc-123")
	tables, err := reader.Fetch(context.Background())

	// "No data yet" is a state the caller handles, not a fetch failure.
	assert.NoError(t, err)
	assert.Empty(t, tables)
}
