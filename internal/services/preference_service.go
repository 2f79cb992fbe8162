package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/ports"
	"github.com/xvierd/vessel-cli/internal/theme"
)

// PreferenceService reads and writes user preferences as key-value
// scalars. Stored values override the defaults it was built with.
type PreferenceService struct {
	store    ports.SettingsStore
	defaults domain.Preferences
	log      *slog.Logger
}

// NewPreferenceService creates a preference service backed by store.
func NewPreferenceService(store ports.SettingsStore, defaults domain.Preferences, log *slog.Logger) *PreferenceService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &PreferenceService{store: store, defaults: defaults, log: log}
}

// Load returns the stored preferences merged over the defaults. Values
// that do not parse fall back to defaults instead of failing.
func (s *PreferenceService) Load(ctx context.Context) (domain.Preferences, error) {
	stored, err := s.store.All(ctx)
	if err != nil {
		return s.defaults, fmt.Errorf("failed to load settings: %w", err)
	}

	prefs := s.defaults
	if raw, ok := stored[domain.KeyFocusMinutes]; ok {
		prefs.Durations.FocusMinutes = domain.ParseFocusMinutes(raw)
	}
	if raw, ok := stored[domain.KeyBreakMinutes]; ok {
		prefs.Durations.BreakMinutes = domain.ParseBreakMinutes(raw)
	}
	prefs.Durations = prefs.Durations.Normalize()

	if raw, ok := stored[domain.KeyTheme]; ok {
		t, valid := theme.Parse(raw)
		if !valid {
			s.log.Warn("unknown stored theme", "theme", raw, "using", t.ID)
		}
		prefs.Theme = string(t.ID)
	}
	if !theme.Valid(theme.ID(prefs.Theme)) {
		prefs.Theme = string(theme.Default().ID)
	}

	if raw, ok := stored[domain.KeyDark]; ok {
		if dark, err := strconv.ParseBool(raw); err == nil {
			prefs.Dark = dark
		}
	}
	return prefs, nil
}

// SaveDurations persists both durations after coercion and returns the
// values actually stored.
func (s *PreferenceService) SaveDurations(ctx context.Context, focusMinutes, breakMinutes int) (domain.Durations, error) {
	d := domain.NewDurations(focusMinutes, breakMinutes)
	if err := s.store.Set(ctx, domain.KeyFocusMinutes, strconv.Itoa(d.FocusMinutes)); err != nil {
		return d, fmt.Errorf("failed to save focus duration: %w", err)
	}
	if err := s.store.Set(ctx, domain.KeyBreakMinutes, strconv.Itoa(d.BreakMinutes)); err != nil {
		return d, fmt.Errorf("failed to save break duration: %w", err)
	}
	return d, nil
}

// SaveTheme persists the theme, falling back to the first one for unknown
// input, and returns the theme stored.
func (s *PreferenceService) SaveTheme(ctx context.Context, raw string) (theme.Theme, error) {
	t, _ := theme.Parse(raw)
	if err := s.store.Set(ctx, domain.KeyTheme, string(t.ID)); err != nil {
		return t, fmt.Errorf("failed to save theme: %w", err)
	}
	return t, nil
}

// SaveDark persists the dark mode flag.
func (s *PreferenceService) SaveDark(ctx context.Context, dark bool) error {
	if err := s.store.Set(ctx, domain.KeyDark, strconv.FormatBool(dark)); err != nil {
		return fmt.Errorf("failed to save dark mode: %w", err)
	}
	return nil
}

// Reset removes every stored preference.
func (s *PreferenceService) Reset(ctx context.Context) error {
	for _, key := range []string{domain.KeyFocusMinutes, domain.KeyBreakMinutes, domain.KeyTheme, domain.KeyDark} {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	return nil
}

// CompletedFocusSessions returns how many focus phases have run out.
func (s *PreferenceService) CompletedFocusSessions(ctx context.Context) (int, error) {
	raw, err := s.store.Get(ctx, domain.KeyCompletedFocusSessions)
	if errors.Is(err, domain.ErrSettingNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read completed sessions: %w", err)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

// RecordCompletedFocus increments the completed focus counter.
func (s *PreferenceService) RecordCompletedFocus(ctx context.Context) (int, error) {
	n, err := s.CompletedFocusSessions(ctx)
	if err != nil {
		return 0, err
	}
	n++
	if err := s.store.Set(ctx, domain.KeyCompletedFocusSessions, strconv.Itoa(n)); err != nil {
		return 0, fmt.Errorf("failed to save completed sessions: %w", err)
	}
	return n, nil
}

// CompletionRecorder returns a phase observer that counts focus phases
// that ran to the end. Entering a break only happens when focus expires.
func (s *PreferenceService) CompletionRecorder(ctx context.Context) ports.PhaseObserver {
	return ports.PhaseObserverFunc(func(isBreak bool) {
		if !isBreak {
			return
		}
		if n, err := s.RecordCompletedFocus(ctx); err != nil {
			s.log.Warn("failed to record completed focus", "error", err)
		} else {
			s.log.Info("focus completed", "total", n)
		}
	})
}
