package domain

// Phase represents which half of the focus/break cycle is active.
type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

// PhaseOf returns the phase matching an isBreak flag.
func PhaseOf(isBreak bool) Phase {
	if isBreak {
		return PhaseBreak
	}
	return PhaseFocus
}

// IsBreak reports whether the phase is a break.
func (p Phase) IsBreak() bool {
	return p == PhaseBreak
}

// Complement returns the other phase.
func (p Phase) Complement() Phase {
	if p == PhaseBreak {
		return PhaseFocus
	}
	return PhaseBreak
}

// Label returns the status line shown under the clock.
func (p Phase) Label() string {
	switch p {
	case PhaseBreak:
		return "Break Time"
	default:
		return "Focus Session"
	}
}
