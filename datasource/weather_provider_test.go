package datasource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("OPENWEATHERMAP_API_KEY", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.OpenWeatherMap.APIKey != PlaceholderAPIKey {
		t.Errorf("expected placeholder key, got %q", cfg.OpenWeatherMap.APIKey)
	}
	if cfg.OpenWeatherMap.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.OpenWeatherMap.BaseURL)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"openWeatherMap": {"apiKey": "from-file"}, "port": 9090, "timeout": "3s"}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("OPENWEATHERMAP_API_KEY", "")
	t.Setenv("PORT", "")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.OpenWeatherMap.APIKey != "from-file" || cfg.Port != 9090 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.OpenWeatherMap.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL to survive, got %q", cfg.OpenWeatherMap.BaseURL)
	}
	if cfg.RequestTimeout() != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.RequestTimeout())
	}

	t.Setenv("OPENWEATHERMAP_API_KEY", "from-env")
	t.Setenv("PORT", "7070")
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.OpenWeatherMap.APIKey != "from-env" || cfg.Port != 7070 {
		t.Errorf("env values not applied: %+v", cfg)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		key     string
		wantErr bool
	}{
		{"", true},
		{"   ", true},
		{PlaceholderAPIKey, true},
		{"abc123", false},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		cfg.OpenWeatherMap.APIKey = tc.key
		err := cfg.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("key %q: expected error=%v, got %v", tc.key, tc.wantErr, err)
		}
		var cfgErr *ConfigurationError
		if tc.wantErr && !errors.As(err, &cfgErr) {
			t.Errorf("key %q: expected *ConfigurationError, got %T", tc.key, err)
		}
	}
}

func TestRequestTimeoutFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = "not-a-duration"
	if cfg.RequestTimeout() != DefaultTimeout {
		t.Errorf("expected default timeout, got %s", cfg.RequestTimeout())
	}
}
