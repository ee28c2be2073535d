package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvDatabasePath = "SLOTASK_DB"
	EnvSocketPath   = "SLOTASK_SOCKET"
	EnvThemeFile    = "SLOTASK_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	DatabasePath    string      `yaml:"database_path"`
	SocketPath      string      `yaml:"socket_path"`
	LogPath         string      `yaml:"log_path"`
	LogLevel        string      `yaml:"log_level"`
	HTTPAddr        string      `yaml:"http_addr"`
	EventDebounceMS int         `yaml:"event_debounce_ms"`
	KeyMappings     KeyMappings `yaml:"key_mappings"`
	ColorScheme     ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	dir := dataDir()
	return &Config{
		DatabasePath:    filepath.Join(dir, "slotask.db"),
		SocketPath:      filepath.Join(dir, "slotask.sock"),
		LogPath:         filepath.Join(dir, "logs", "slotask.log"),
		LogLevel:        "info",
		HTTPAddr:        "127.0.0.1:8420",
		EventDebounceMS: 100,
		KeyMappings:     DefaultKeyMappings(),
		ColorScheme:     *DefaultColorScheme(),
	}
}

// Load reads the config from the user's config directory, falling back to
// defaults when the file does not exist. Environment overrides are applied last.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile reads the config at path; a missing file yields defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

// Save writes the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location of the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "slotask", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "slotask", "config.yaml"), nil
}

// dataDir is where the database, socket and logs live by default
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".slotask"
	}
	return filepath.Join(home, ".slotask")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	d := Default()
	if c.DatabasePath == "" {
		c.DatabasePath = d.DatabasePath
	}
	if c.SocketPath == "" {
		c.SocketPath = d.SocketPath
	}
	if c.LogPath == "" {
		c.LogPath = d.LogPath
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.HTTPAddr == "" {
		c.HTTPAddr = d.HTTPAddr
	}
	if c.EventDebounceMS <= 0 {
		c.EventDebounceMS = d.EventDebounceMS
	}

	c.DatabasePath = expandHome(c.DatabasePath)
	c.SocketPath = expandHome(c.SocketPath)
	c.LogPath = expandHome(c.LogPath)

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDatabasePath); v != "" {
		c.DatabasePath = expandHome(v)
	}
	if v := os.Getenv(EnvSocketPath); v != "" {
		c.SocketPath = expandHome(v)
	}
	loadThemeFile(c)
}

// loadThemeFile merges the theme from SLOTASK_THEME_FILE, if set and readable
func loadThemeFile(c *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	data, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(data, &themeConfig) == nil {
		c.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
