package config

import (
	"os"
	"testing"
)

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv(EnvServer, "https://library.example.com")
	defer os.Unsetenv(EnvServer)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerURL != "https://library.example.com" {
		t.Errorf("ServerURL = %q, want env override", cfg.ServerURL)
	}
}

func TestLoad_DefaultWithoutFile(t *testing.T) {
	os.Unsetenv(EnvServer)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerURL != defaultServerURL {
		t.Errorf("ServerURL = %q, want default %q", cfg.ServerURL, defaultServerURL)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	os.Unsetenv(EnvServer)
	t.Setenv("HOME", t.TempDir())

	if err := SetServer("https://books.example.org"); err != nil {
		t.Fatalf("SetServer failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerURL != "https://books.example.org" {
		t.Errorf("ServerURL = %q after round trip", cfg.ServerURL)
	}
}

func TestConfig_Host(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://library.example.com", "library.example.com"},
		{"http://localhost:8080", "localhost:8080"},
		{"localhost", "localhost"},
	}

	for _, tt := range tests {
		cfg := &Config{ServerURL: tt.url}
		if got := cfg.Host(); got != tt.want {
			t.Errorf("Host(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
