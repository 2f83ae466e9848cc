package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	configDirName  = "libhub"
	configFileName = "config.json"

	// EnvServer overrides the configured server URL.
	EnvServer = "LIBHUB_SERVER"

	defaultServerURL = "http://localhost:8080"
)

// Config is the user's local configuration stored in
// ~/.config/libhub/config.json.
type Config struct {
	ServerURL string `json:"server_url"`
}

// GetConfigPath returns the path to the user config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", configDirName)
	return filepath.Join(configDir, configFileName), nil
}

// Load resolves the configuration: .env files, then the LIBHUB_SERVER
// environment variable, then the config file, then the built-in default.
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	if env := os.Getenv(EnvServer); env != "" {
		return &Config{ServerURL: env}, nil
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{ServerURL: defaultServerURL}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}

	return &cfg, nil
}

// Save writes the configuration to the user config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetServer updates the server URL and saves the config.
func SetServer(serverURL string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	cfg.ServerURL = serverURL
	return Save(cfg)
}

// Host returns the host part of the server URL, used to scope stored
// credentials per server.
func (c *Config) Host() string {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Host == "" {
		return c.ServerURL
	}
	return u.Host
}
