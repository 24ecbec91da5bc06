package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Source kinds understood by the dashboard.
const (
	SourceWorkbook = "workbook"
	SourceSheets   = "sheets"
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Base64-encoded HS256 secret for API tokens. Leave empty to run the
	// API unauthenticated (local development only).
	SigningSecret string `yaml:"signingSecret"`
}

type SourceConfig struct {
	Kind          string `yaml:"kind"`
	Path          string `yaml:"path"`          // workbook
	BaseURL       string `yaml:"baseURL"`       // sheets
	SpreadsheetID string `yaml:"spreadsheetId"` // sheets
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Source SourceConfig `yaml:"source"`
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// Load reads the configuration file once per process.
func Load(path string) (*Config, error) {
	once.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("read config: %w", err)
			return
		}
		cfg, loadErr = Parse(data)
	})
	return cfg, loadErr
}

// Parse decodes a configuration document and applies defaults.
func Parse(data []byte) (*Config, error) {
	parsed := &Config{}
	if err := yaml.Unmarshal(data, parsed); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if parsed.Server.Addr == "" {
		parsed.Server.Addr = "0.0.0.0:8090"
	}
	if parsed.Source.Kind == "" {
		parsed.Source.Kind = SourceWorkbook
	}
	if parsed.Source.Kind == SourceWorkbook && parsed.Source.Path == "" {
		parsed.Source.Path = "visits.xlsx"
	}
	if parsed.Source.Kind == SourceSheets && parsed.Source.BaseURL == "" {
		parsed.Source.BaseURL = "https://docs.google.com"
	}

	switch parsed.Source.Kind {
	case SourceWorkbook, SourceSheets:
	default:
		return nil, fmt.Errorf("unknown source kind %q", parsed.Source.Kind)
	}

	return parsed, nil
}
