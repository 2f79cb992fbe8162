// Package config provides configuration management for Vessel.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/theme"
)

// ErrUnknownKey is returned by Set for keys the config does not define.
var ErrUnknownKey = errors.New("unknown config key")

const (
	// DefaultFPS is the TUI redraw rate.
	DefaultFPS = 10
	// MaxFPS caps the redraw rate.
	MaxFPS = 60
)

const (
	dirName    = ".vessel"
	defaultDir = "~/" + dirName
)

// Config holds all configuration for the Vessel application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Appearance    AppearanceConfig   `mapstructure:"appearance"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Log           LogConfig          `mapstructure:"log"`
	Storage       StorageConfig      `mapstructure:"storage"`
}

// TimerConfig holds the default phase lengths in minutes.
type TimerConfig struct {
	FocusMinutes int `mapstructure:"focus_minutes"`
	BreakMinutes int `mapstructure:"break_minutes"`
}

// AppearanceConfig holds the default theme and redraw settings.
type AppearanceConfig struct {
	Theme string `mapstructure:"theme"`
	Dark  bool   `mapstructure:"dark"`
	FPS   int    `mapstructure:"fps"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// LogConfig holds logging settings. File is relative to the data dir
// unless absolute.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir  string `mapstructure:"data_dir"`
	Database string `mapstructure:"database"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			FocusMinutes: domain.DefaultFocusMinutes,
			BreakMinutes: domain.DefaultBreakMinutes,
		},
		Appearance: AppearanceConfig{
			Theme: string(theme.Default().ID),
			FPS:   DefaultFPS,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "vessel.log",
		},
		Storage: StorageConfig{
			DataDir:  defaultDir,
			Database: "vessel.db",
		},
	}
}

// Durations returns the configured phase lengths.
func (c *Config) Durations() domain.Durations {
	return domain.NewDurations(c.Timer.FocusMinutes, c.Timer.BreakMinutes)
}

// Preferences returns the configured defaults for the preference store.
func (c *Config) Preferences() domain.Preferences {
	return domain.Preferences{
		Durations: c.Durations(),
		Theme:     c.Appearance.Theme,
		Dark:      c.Appearance.Dark,
	}
}

// normalize coerces out-of-range values instead of rejecting the file.
func (c *Config) normalize() error {
	d := c.Durations()
	c.Timer.FocusMinutes = d.FocusMinutes
	c.Timer.BreakMinutes = d.BreakMinutes

	t, _ := theme.Parse(c.Appearance.Theme)
	c.Appearance.Theme = string(t.ID)

	if c.Appearance.FPS <= 0 {
		c.Appearance.FPS = DefaultFPS
	}
	if c.Appearance.FPS > MaxFPS {
		c.Appearance.FPS = MaxFPS
	}

	// Expand ~ in data directory
	if c.Storage.DataDir == "" || strings.HasPrefix(c.Storage.DataDir, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		rest := strings.TrimPrefix(c.Storage.DataDir, "~")
		if rest == "" {
			rest = dirName
		}
		c.Storage.DataDir = filepath.Join(homeDir, rest)
	}
	if c.Storage.Database == "" {
		c.Storage.Database = "vessel.db"
	}
	return nil
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration at configPath, creating it with
// defaults when missing.
func LoadFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes cfg to configPath.
func SaveTo(configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)
	for key, value := range cfg.values() {
		v.Set(key, value)
	}
	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(DefaultConfig().values()))
	for key := range DefaultConfig().values() {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of key.
func (c *Config) Get(key string) (string, error) {
	value, ok := c.values()[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return fmt.Sprint(value), nil
}

// Set parses raw into key. Numeric and boolean keys reject malformed
// input; range coercion happens on the next load.
func (c *Config) Set(key, raw string) error {
	switch key {
	case "timer.focus_minutes":
		return setInt(&c.Timer.FocusMinutes, key, raw)
	case "timer.break_minutes":
		return setInt(&c.Timer.BreakMinutes, key, raw)
	case "appearance.theme":
		t, ok := theme.Parse(raw)
		if !ok {
			return fmt.Errorf("unknown theme %q (available: %s)", raw, strings.Join(themeNames(), ", "))
		}
		c.Appearance.Theme = string(t.ID)
	case "appearance.dark":
		return setBool(&c.Appearance.Dark, key, raw)
	case "appearance.fps":
		return setInt(&c.Appearance.FPS, key, raw)
	case "notifications.enabled":
		return setBool(&c.Notifications.Enabled, key, raw)
	case "notifications.sound":
		return setBool(&c.Notifications.Sound, key, raw)
	case "log.level":
		if _, err := ParseLevel(raw); err != nil {
			return err
		}
		c.Log.Level = strings.ToLower(raw)
	case "log.file":
		c.Log.File = raw
	case "storage.data_dir":
		c.Storage.DataDir = raw
	case "storage.database":
		c.Storage.Database = raw
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func (c *Config) values() map[string]any {
	return map[string]any{
		"timer.focus_minutes":   c.Timer.FocusMinutes,
		"timer.break_minutes":   c.Timer.BreakMinutes,
		"appearance.theme":      c.Appearance.Theme,
		"appearance.dark":       c.Appearance.Dark,
		"appearance.fps":        c.Appearance.FPS,
		"notifications.enabled": c.Notifications.Enabled,
		"notifications.sound":   c.Notifications.Sound,
		"log.level":             c.Log.Level,
		"log.file":              c.Log.File,
		"storage.data_dir":      c.Storage.DataDir,
		"storage.database":      c.Storage.Database,
	}
}

func setInt(dst *int, key, raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key, raw string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dst = b
	return nil
}

func themeNames() []string {
	ids := theme.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names
}

// newViper returns a TOML viper bound to configPath with defaults set.
func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	for key, value := range DefaultConfig().values() {
		v.SetDefault(key, value)
	}
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetDataDir returns ~/.vessel.
func GetDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, dirName), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return resolve(cfg.Storage.DataDir, cfg.Storage.Database)
}

// GetLogPath returns the path to the log file.
func GetLogPath(cfg *Config) string {
	return resolve(cfg.Storage.DataDir, cfg.Log.File)
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	return level, nil
}
