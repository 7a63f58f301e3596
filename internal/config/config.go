// Package config loads Spotify credentials from a config file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/justestif/moodtunes/internal/validation"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "config.json"

// Environment variables that override file values.
const (
	EnvClientID     = "SPOTIFY_CLIENT_ID"
	EnvClientSecret = "SPOTIFY_CLIENT_SECRET"
	EnvCacheToken   = "CACHE_TOKEN"
)

// ErrMissingCredentials is returned when the client ID or secret is missing or empty.
var ErrMissingCredentials = errors.New("spotify client ID or secret is missing")

// Config holds the Spotify application credentials.
type Config struct {
	ClientID     string `json:"SPOTIFY_CLIENT_ID" yaml:"SPOTIFY_CLIENT_ID" name:"SPOTIFY_CLIENT_ID" validate:"required"`
	ClientSecret string `json:"SPOTIFY_CLIENT_SECRET" yaml:"SPOTIFY_CLIENT_SECRET" name:"SPOTIFY_CLIENT_SECRET" validate:"required"`

	// CacheToken persists the app token between runs. Off by default.
	CacheToken bool `json:"CACHE_TOKEN" yaml:"CACHE_TOKEN"`
}

// Load reads configuration from path, then applies environment overrides.
// A .env file in the working directory is loaded into the environment first.
// A missing config file is not an error as long as the environment supplies
// the credentials. Returns ErrMissingCredentials if either credential is empty.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath
	}

	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ClientID = getEnv(EnvClientID, cfg.ClientID)
	cfg.ClientSecret = getEnv(EnvClientSecret, cfg.ClientSecret)
	if raw := os.Getenv(EnvCacheToken); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvCacheToken, err)
		}
		cfg.CacheToken = v
	}

	cfg.ClientID = strings.TrimSpace(cfg.ClientID)
	cfg.ClientSecret = strings.TrimSpace(cfg.ClientSecret)

	if fieldErrors := validation.Validate(cfg); fieldErrors != nil {
		return nil, fmt.Errorf("%w in %s (%s)", ErrMissingCredentials, path, validation.Join(fieldErrors))
	}

	return cfg, nil
}

// readFile decodes path by extension: YAML for .yaml/.yml, JSON otherwise.
// Returns an empty Config if the file does not exist.
func readFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
