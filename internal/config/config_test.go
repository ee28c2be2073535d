package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points every lookup at a fresh temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvDatabasePath, "")
	t.Setenv(EnvSocketPath, "")
	t.Setenv(EnvThemeFile, "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "slotask")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.MoveCardLeft != "H" || defaults.MoveCardRight != "L" {
		t.Errorf("Default move keys = %s/%s, want H/L", defaults.MoveCardLeft, defaults.MoveCardRight)
	}
	if defaults.Reload != "r" {
		t.Errorf("Default Reload key = %s, want r", defaults.Reload)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if filepath.Base(cfg.DatabasePath) != "slotask.db" {
		t.Errorf("Default database path = %s, want .../slotask.db", cfg.DatabasePath)
	}
	if cfg.HTTPAddr != "127.0.0.1:8420" {
		t.Errorf("Default http addr = %s", cfg.HTTPAddr)
	}
	if cfg.EventDebounceMS != 100 {
		t.Errorf("Default debounce = %d, want 100", cfg.EventDebounceMS)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `database_path: "~/boards/work.db"
http_addr: ":9000"
log_level: debug
key_mappings:
  quit: "x"
  move_card_up: "u"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "boards", "work.db"); cfg.DatabasePath != want {
		t.Errorf("DatabasePath = %s, want %s", cfg.DatabasePath, want)
	}
	if cfg.HTTPAddr != ":9000" {
		t.Errorf("HTTPAddr = %s, want :9000", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.KeyMappings.Quit != "x" || cfg.KeyMappings.MoveCardUp != "u" {
		t.Errorf("Custom keys not loaded: %+v", cfg.KeyMappings)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.NextCard != "j" {
		t.Errorf("NextCard key = %s, want j (default)", cfg.KeyMappings.NextCard)
	}
	if cfg.SocketPath == "" || cfg.ColorScheme.Accent == "" {
		t.Error("Expected missing values to be filled with defaults")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "database_path: [unclosed")

	if _, err := Load(); err == nil {
		t.Fatal("Expected an error for malformed YAML")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "database_path: /from/file.db\n")
	t.Setenv(EnvDatabasePath, "/from/env.db")
	t.Setenv(EnvSocketPath, "/tmp/env.sock")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DatabasePath != "/from/env.db" {
		t.Errorf("DatabasePath = %s, want env override", cfg.DatabasePath)
	}
	if cfg.SocketPath != "/tmp/env.sock" {
		t.Errorf("SocketPath = %s, want env override", cfg.SocketPath)
	}
}

func TestThemeFileLoading(t *testing.T) {
	isolate(t)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := `theme:
  accent: "#FF0000"
  priority_urgent: "#00FF00"
`
	if err := os.WriteFile(themePath, []byte(themeContent), 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.PriorityColor("urgent") != "#00FF00" {
		t.Errorf("Expected urgent #00FF00, got %s", cfg.ColorScheme.PriorityUrgent)
	}
	if cfg.ColorScheme.Title != DefaultColorScheme().Title {
		t.Errorf("Expected title to keep its default, got %s", cfg.ColorScheme.Title)
	}
}

func TestColorSchemePresets(t *testing.T) {
	c := ColorScheme{Preset: "wave", Accent: "#123456"}
	c.ApplyDefaults()

	if c.Accent != "#123456" {
		t.Errorf("Explicit accent overwritten: %s", c.Accent)
	}
	if c.Title != WaveColorScheme().Title {
		t.Errorf("Title = %s, want wave preset %s", c.Title, WaveColorScheme().Title)
	}

	unknown := ColorScheme{Preset: "neon"}
	unknown.ApplyDefaults()
	if unknown.Accent != DefaultColorScheme().Accent {
		t.Errorf("Unknown preset should fall back to default, got %s", unknown.Accent)
	}

	if got := DefaultColorScheme().PriorityColor("bogus"); got != DefaultColorScheme().PriorityMedium {
		t.Errorf("Unknown priority colour = %s, want medium", got)
	}
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.KeyMappings.Quit = "x"
	cfg.HTTPAddr = ":7000"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(dir, "slotask", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.HTTPAddr != ":7000" {
		t.Errorf("Reloaded HTTPAddr = %s, want :7000", cfg2.HTTPAddr)
	}
}
