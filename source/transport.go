package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Transport handles low-level HTTP against the spreadsheet export host.
type Transport struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewTransport(baseURL string) *Transport {
	return &Transport{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) (string, error) {
	u, err := url.Parse(t.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", t.BaseURL, err)
	}
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Get sends a GET request
func (t *Transport) Get(ctx context.Context, path string, query map[string]string) (*http.Response, error) {
	fullURL, err := t.buildURL(path, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	return t.HTTPClient.Do(req)
}
