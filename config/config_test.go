package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			APIKey:   "valid-api-key",
			Language: "en-US",
		},
		Browse: BrowseConfig{
			Columns:    4,
			Categories: []string{"popular", "top_rated"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.TMDB.APIKey = "" },
			wantErr: "tmdb.api_key",
		},
		{
			name:    "placeholder api key",
			mutate:  func(c *Config) { c.TMDB.APIKey = "your-api-key-here" },
			wantErr: "tmdb.api_key",
		},
		{
			name:    "empty language",
			mutate:  func(c *Config) { c.TMDB.Language = "" },
			wantErr: "tmdb.language",
		},
		{
			name:    "zero columns",
			mutate:  func(c *Config) { c.Browse.Columns = 0 },
			wantErr: "browse.columns",
		},
		{
			name:    "unknown category",
			mutate:  func(c *Config) { c.Browse.Categories = []string{"trending"} },
			wantErr: "browse.categories",
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging level",
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error = %v, want message containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
tmdb:
  api_key: file-key
  language: fi-FI
browse:
  columns: 3
  categories:
    - popular
    - now_playing
server:
  listen: ":9090"
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TMDB.APIKey != "file-key" {
		t.Errorf("api key = %q, want %q", cfg.TMDB.APIKey, "file-key")
	}
	if cfg.TMDB.Language != "fi-FI" {
		t.Errorf("language = %q, want %q", cfg.TMDB.Language, "fi-FI")
	}
	if cfg.Browse.Columns != 3 {
		t.Errorf("columns = %d, want 3", cfg.Browse.Columns)
	}
	if cfg.Server.Listen != ":9090" {
		t.Errorf("listen = %q, want %q", cfg.Server.Listen, ":9090")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("logging format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
tmdb:
  api_key: file-key
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TMDB.Language != "en-US" {
		t.Errorf("default language = %q, want en-US", cfg.TMDB.Language)
	}
	if cfg.Browse.Columns != 4 {
		t.Errorf("default columns = %d, want 4", cfg.Browse.Columns)
	}
	if len(cfg.Browse.Categories) != 4 {
		t.Errorf("default categories = %v, want all four", cfg.Browse.Categories)
	}
	if cfg.Server.Listen != ":8080" {
		t.Errorf("default listen = %q, want :8080", cfg.Server.Listen)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with a missing explicit config file should fail")
	}
}
