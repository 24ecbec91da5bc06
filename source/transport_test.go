package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportGetInvalidBaseURL(t *testing.T) {
	transport := NewTransport("http://bad host")

	_, err := transport.Get(context.Background(), "/spreadsheets/d/doc-123/gviz/tq", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base url")
}

func TestTransportBuildURL(t *testing.T) {
	transport := NewTransport("https://docs.google.com")

	full, err := transport.buildURL("/spreadsheets/d/doc-123/gviz/tq", map[string]string{
		"tqx":   "out:csv",
		"sheet": "Monday",
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/doc-123/gviz/tq?sheet=Monday&tqx=out%3Acsv", full)
}
