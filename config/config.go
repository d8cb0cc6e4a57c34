// Package config loads and validates the application configuration from a
// YAML file and FILMGRID_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/filmgrid/filmgrid/tmdb"
)

// Load loads the configuration. When configPath is empty the standard
// locations are searched; a missing config file is not an error as long as
// the environment supplies the API key.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("FILMGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".filmgrid"))
		}

		// Check /etc
		v.AddConfigPath("/etc/filmgrid/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		// No config file found: an explicit path is an error, otherwise
		// defaults plus environment variables carry the configuration.
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TMDB defaults. The empty api_key default registers the key so the
	// FILMGRID_TMDB_API_KEY environment variable can supply it.
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.language", tmdb.DefaultLanguage)
	v.SetDefault("tmdb.timeout", "30s")

	// Browse defaults
	v.SetDefault("browse.columns", 4)
	v.SetDefault("browse.categories", []string{"popular", "top_rated", "upcoming", "now_playing"})

	// Server defaults
	v.SetDefault("server.listen", ":8080")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDB.APIKey == "" || cfg.TMDB.APIKey == "your-api-key-here" {
		return fmt.Errorf("tmdb.api_key must be set to a valid API key")
	}

	if cfg.TMDB.Language == "" {
		return fmt.Errorf("tmdb.language must not be empty")
	}

	if cfg.Browse.Columns < 1 {
		return fmt.Errorf("browse.columns must be at least 1")
	}

	for _, category := range cfg.Browse.Categories {
		if _, err := tmdb.ParseListEndpoint(category); err != nil {
			return fmt.Errorf("invalid browse.categories entry: %w", err)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
