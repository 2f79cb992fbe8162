package domain

import "errors"

// ErrSettingNotFound is returned by settings stores for absent keys.
var ErrSettingNotFound = errors.New("setting not found")

// Setting keys persisted as key-value scalars.
const (
	KeyFocusMinutes           = "focus_minutes"
	KeyBreakMinutes           = "break_minutes"
	KeyTheme                  = "theme"
	KeyDark                   = "dark"
	KeyCompletedFocusSessions = "completed_focus_sessions"
)

// Preferences are the user-chosen settings that survive restarts.
type Preferences struct {
	Durations Durations
	Theme     string
	Dark      bool
}

// DefaultPreferences returns 25/5 minutes on the first theme.
func DefaultPreferences() Preferences {
	return Preferences{
		Durations: DefaultDurations(),
		Theme:     "coffee",
	}
}
