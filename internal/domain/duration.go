package domain

import (
	"strconv"
	"strings"
)

// Duration bounds and defaults, in minutes.
const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
	MinMinutes          = 1
	MaxFocusMinutes     = 120
	MaxBreakMinutes     = 60
)

// Durations holds the configured length of each phase in minutes.
type Durations struct {
	FocusMinutes int `json:"focus_minutes" yaml:"focus_minutes"`
	BreakMinutes int `json:"break_minutes" yaml:"break_minutes"`
}

// DefaultDurations returns the 25/5 cycle.
func DefaultDurations() Durations {
	return Durations{
		FocusMinutes: DefaultFocusMinutes,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// NewDurations builds a Durations value, coercing both fields into range.
func NewDurations(focusMinutes, breakMinutes int) Durations {
	return Durations{
		FocusMinutes: CoerceFocusMinutes(focusMinutes),
		BreakMinutes: CoerceBreakMinutes(breakMinutes),
	}
}

// Normalize returns d with both fields coerced into range.
func (d Durations) Normalize() Durations {
	return NewDurations(d.FocusMinutes, d.BreakMinutes)
}

// Minutes returns the configured minutes for a phase.
func (d Durations) Minutes(p Phase) int {
	if p.IsBreak() {
		return d.BreakMinutes
	}
	return d.FocusMinutes
}

// Seconds returns the length of a phase in seconds.
func (d Durations) Seconds(p Phase) int {
	return d.Minutes(p) * 60
}

// CoerceFocusMinutes maps a missing (zero) value to the default and clamps
// the rest into [1,120].
func CoerceFocusMinutes(m int) int {
	return coerceMinutes(m, DefaultFocusMinutes, MaxFocusMinutes)
}

// CoerceBreakMinutes maps a missing (zero) value to the default and clamps
// the rest into [1,60].
func CoerceBreakMinutes(m int) int {
	return coerceMinutes(m, DefaultBreakMinutes, MaxBreakMinutes)
}

func coerceMinutes(m, def, max int) int {
	if m == 0 {
		return def
	}
	if m < MinMinutes {
		return MinMinutes
	}
	if m > max {
		return max
	}
	return m
}

// ParseMinutes converts raw user input to minutes. Input that does not
// start with an integer, or that parses to zero, yields def.
func ParseMinutes(raw string, def int) int {
	s := strings.TrimSpace(raw)
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return def
	}
	return n
}

// ParseFocusMinutes parses and coerces a focus duration.
func ParseFocusMinutes(raw string) int {
	return CoerceFocusMinutes(ParseMinutes(raw, DefaultFocusMinutes))
}

// ParseBreakMinutes parses and coerces a break duration.
func ParseBreakMinutes(raw string) int {
	return CoerceBreakMinutes(ParseMinutes(raw, DefaultBreakMinutes))
}
