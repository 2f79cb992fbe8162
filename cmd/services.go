package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/xvierd/vessel-cli/internal/adapters/notification"
	"github.com/xvierd/vessel-cli/internal/adapters/storage"
	"github.com/xvierd/vessel-cli/internal/adapters/ticker"
	"github.com/xvierd/vessel-cli/internal/config"
	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/logging"
	"github.com/xvierd/vessel-cli/internal/ports"
	"github.com/xvierd/vessel-cli/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config    *config.Config
	log       *slog.Logger
	logCloser io.Closer
	storage   ports.SettingsStore
	prefs     *services.PreferenceService
	notifier  *notification.Notifier
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	cfg, cfgErr := loadConfig()
	if cfgErr != nil {
		// If config loading fails, use defaults
		cfg = config.DefaultConfig()
	}
	app.config = cfg

	log, closer, err := logging.New(app.config)
	if err != nil {
		log, closer = logging.Discard(), nil
	}
	app.log, app.logCloser = log, closer
	if cfgErr != nil {
		app.log.Warn("failed to load config, using defaults", "error", cfgErr)
	}

	// Initialize notifier
	app.notifier = notification.New(&app.config.Notifications)

	// Determine database path
	path := dbPath
	if path == "" {
		path = config.GetDBPath(app.config)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// Initialize storage
	app.storage, err = storage.New(path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.prefs = services.NewPreferenceService(app.storage, app.config.Preferences(), app.log)
	app.log.Debug("services initialized", "db", path)
	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// resolveConfigPath returns the config file this run reads and writes.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// cleanupServices closes all resources.
func cleanupServices() error {
	var errs []error
	if app.storage != nil {
		errs = append(errs, app.storage.Close())
		app.storage = nil
	}
	if app.logCloser != nil {
		errs = append(errs, app.logCloser.Close())
		app.logCloser = nil
	}
	return errors.Join(errs...)
}

// newTimerService builds the countdown with wall-clock ticks, the desktop
// notifier and the completed-session counter attached.
func newTimerService(ctx context.Context, d domain.Durations) *services.TimerService {
	return services.NewTimerService(d, ticker.Wall{},
		services.WithChime(app.notifier),
		services.WithObserver(app.notifier),
		services.WithObserver(app.prefs.CompletionRecorder(ctx)),
		services.WithLogger(app.log),
	)
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
