package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Timer.FocusMinutes != 25 || cfg.Timer.BreakMinutes != 5 {
		t.Errorf("expected 25/5 minutes, got %d/%d", cfg.Timer.FocusMinutes, cfg.Timer.BreakMinutes)
	}
	if cfg.Appearance.Theme != "coffee" {
		t.Errorf("expected default theme 'coffee', got %q", cfg.Appearance.Theme)
	}
	if cfg.Appearance.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.Appearance.FPS)
	}
	if !cfg.Notifications.Enabled || !cfg.Notifications.Sound {
		t.Error("expected notifications and sound enabled by default")
	}
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if cfg.Timer.FocusMinutes != 25 {
		t.Errorf("FocusMinutes = %d, want 25", cfg.Timer.FocusMinutes)
	}
	if strings.HasPrefix(cfg.Storage.DataDir, "~") {
		t.Errorf("DataDir %q was not expanded", cfg.Storage.DataDir)
	}
}

func TestLoadFrom_CoercesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[timer]
focus_minutes = 500
break_minutes = 0

[appearance]
theme = "lava"
fps = -3

[storage]
data_dir = "/tmp/vessel-test"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Timer.FocusMinutes != 120 {
		t.Errorf("FocusMinutes = %d, want 120", cfg.Timer.FocusMinutes)
	}
	if cfg.Timer.BreakMinutes != 5 {
		t.Errorf("BreakMinutes = %d, want 5", cfg.Timer.BreakMinutes)
	}
	if cfg.Appearance.Theme != "coffee" {
		t.Errorf("Theme = %q, want coffee", cfg.Appearance.Theme)
	}
	if cfg.Appearance.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want %d", cfg.Appearance.FPS, DefaultFPS)
	}
	if cfg.Notifications.Enabled != true {
		t.Error("missing section should keep defaults")
	}
	if got := GetDBPath(cfg); got != filepath.Join("/tmp/vessel-test", "vessel.db") {
		t.Errorf("GetDBPath() = %q", got)
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Timer.FocusMinutes = 50
	cfg.Appearance.Theme = "rocket"
	cfg.Appearance.Dark = true
	cfg.Storage.DataDir = t.TempDir()

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.Timer.FocusMinutes != 50 || loaded.Appearance.Theme != "rocket" || !loaded.Appearance.Dark {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"timer.focus_minutes", "45", false},
		{"timer.focus_minutes", "abc", true},
		{"appearance.theme", "Sand", false},
		{"appearance.theme", "lava", true},
		{"appearance.dark", "true", false},
		{"appearance.dark", "maybe", true},
		{"log.level", "debug", false},
		{"log.level", "loud", true},
		{"nope", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	cfg := DefaultConfig()
	_ = cfg.Set("appearance.theme", "Sand")
	if got, _ := cfg.Get("appearance.theme"); got != "sand" {
		t.Errorf("Get(appearance.theme) = %q, want sand", got)
	}
	if err := cfg.Set("bogus", "x"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Set(bogus) error = %v, want ErrUnknownKey", err)
	}
	if _, err := cfg.Get("bogus"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get(bogus) error = %v, want ErrUnknownKey", err)
	}
}

func TestKeys_Sorted(t *testing.T) {
	keys := Keys()
	if len(keys) != 11 {
		t.Fatalf("expected 11 keys, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Errorf("keys not sorted: %q > %q", keys[i-1], keys[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for raw, want := range tests {
		got, err := ParseLevel(raw)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) error = nil")
	}
}

func TestLogPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DataDir = "/data"
	if got := GetLogPath(cfg); got != filepath.Join("/data", "vessel.log") {
		t.Errorf("GetLogPath() = %q", got)
	}
	cfg.Log.File = "/var/log/vessel.log"
	if got := GetLogPath(cfg); got != "/var/log/vessel.log" {
		t.Errorf("GetLogPath() = %q", got)
	}
}
