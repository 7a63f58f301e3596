package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvClientID, "")
	t.Setenv(EnvClientSecret, "")
	t.Setenv(EnvCacheToken, "")
	// godotenv reads .env from the working directory
	chdir(t, t.TempDir())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		content    string
		wantID     string
		wantSecret string
		wantCache  bool
		wantErr    error
	}{
		{
			name:       "json file",
			file:       "config.json",
			content:    `{"SPOTIFY_CLIENT_ID": "id-123", "SPOTIFY_CLIENT_SECRET": "secret-456"}`,
			wantID:     "id-123",
			wantSecret: "secret-456",
		},
		{
			name:       "yaml file",
			file:       "config.yaml",
			content:    "SPOTIFY_CLIENT_ID: yaml-id\nSPOTIFY_CLIENT_SECRET: yaml-secret\nCACHE_TOKEN: true\n",
			wantID:     "yaml-id",
			wantSecret: "yaml-secret",
			wantCache:  true,
		},
		{
			name:    "missing secret",
			file:    "config.json",
			content: `{"SPOTIFY_CLIENT_ID": "id-123"}`,
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "empty id",
			file:    "config.json",
			content: `{"SPOTIFY_CLIENT_ID": "", "SPOTIFY_CLIENT_SECRET": "secret"}`,
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "whitespace only id",
			file:    "config.json",
			content: `{"SPOTIFY_CLIENT_ID": "   ", "SPOTIFY_CLIENT_SECRET": "secret"}`,
			wantErr: ErrMissingCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeFile(t, tt.file, tt.content)

			cfg, err := Load(path)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if cfg != nil {
					t.Errorf("Load() returned non-nil config with error")
				}
				return
			}

			if cfg.ClientID != tt.wantID {
				t.Errorf("ClientID = %q, want %q", cfg.ClientID, tt.wantID)
			}
			if cfg.ClientSecret != tt.wantSecret {
				t.Errorf("ClientSecret = %q, want %q", cfg.ClientSecret, tt.wantSecret)
			}
			if cfg.CacheToken != tt.wantCache {
				t.Errorf("CacheToken = %v, want %v", cfg.CacheToken, tt.wantCache)
			}
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{"SPOTIFY_CLIENT_ID": "file-id", "SPOTIFY_CLIENT_SECRET": "file-secret"}`)

	t.Setenv(EnvClientID, "env-id")
	t.Setenv(EnvCacheToken, "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ClientID != "env-id" {
		t.Errorf("ClientID = %q, want %q", cfg.ClientID, "env-id")
	}
	if cfg.ClientSecret != "file-secret" {
		t.Errorf("ClientSecret = %q, want %q", cfg.ClientSecret, "file-secret")
	}
	if !cfg.CacheToken {
		t.Error("CacheToken = false, want true")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	if _, err := Load(path); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Load() error = %v, want ErrMissingCredentials", err)
	}

	t.Setenv(EnvClientID, "env-id")
	t.Setenv(EnvClientSecret, "env-secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ClientID != "env-id" || cfg.ClientSecret != "env-secret" {
		t.Errorf("Load() = %+v, want env credentials", cfg)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even to ""
	os.Unsetenv(EnvClientID)
	os.Unsetenv(EnvClientSecret)
	t.Cleanup(func() {
		os.Unsetenv(EnvClientID)
		os.Unsetenv(EnvClientSecret)
	})

	if err := os.WriteFile(".env", []byte("SPOTIFY_CLIENT_ID=dotenv-id\nSPOTIFY_CLIENT_SECRET=dotenv-secret\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ClientID != "dotenv-id" {
		t.Errorf("ClientID = %q, want %q", cfg.ClientID, "dotenv-id")
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "config.json", `{"SPOTIFY_CLIENT_ID": `},
		{"malformed yaml", "config.yml", "SPOTIFY_CLIENT_ID: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeFile(t, tt.file, tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want parse error")
			}
			if errors.Is(err, ErrMissingCredentials) {
				t.Errorf("Load() error = %v, want a parse error", err)
			}
		})
	}
}

func TestLoad_InvalidCacheToken(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{"SPOTIFY_CLIENT_ID": "id", "SPOTIFY_CLIENT_SECRET": "secret"}`)
	t.Setenv(EnvCacheToken, "sometimes")

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want error for invalid CACHE_TOKEN")
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Chdir() error = %v", err)
		}
	})
}
