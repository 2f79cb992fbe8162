package domain

// Session is the mutable countdown state of the focus/break cycle.
// It is owned by a single driver; callers needing a stable view take a
// Snapshot.
type Session struct {
	ID        string
	Phase     Phase
	Running   bool
	Remaining int
	Durations Durations
}

// Transition describes a phase change produced by Tick or Reset.
type Transition struct {
	From    Phase
	To      Phase
	Chimed  bool
	Elapsed bool
}

// NewSession creates an idle focus session with a full countdown.
func NewSession(d Durations) *Session {
	d = d.Normalize()
	return &Session{
		ID:        NewSessionID(),
		Phase:     PhaseFocus,
		Remaining: d.Seconds(PhaseFocus),
		Durations: d,
	}
}

// Start marks the session running. It reports whether the state changed.
func (s *Session) Start() bool {
	if s.Running {
		return false
	}
	s.Running = true
	return true
}

// Pause stops the countdown, keeping Remaining as-is. It reports whether
// the state changed.
func (s *Session) Pause() bool {
	if !s.Running {
		return false
	}
	s.Running = false
	return true
}

// Tick consumes one second. When the last second elapses the phase flips
// and the countdown reloads with the new phase's duration; the returned
// transition is non-nil in that case.
func (s *Session) Tick() *Transition {
	if s.Remaining <= 1 {
		from := s.Phase
		s.Phase = from.Complement()
		s.Remaining = s.Durations.Seconds(s.Phase)
		return &Transition{From: from, To: s.Phase, Chimed: true, Elapsed: true}
	}
	s.Remaining--
	return nil
}

// Reset returns to an idle focus phase with a full countdown and a new ID.
func (s *Session) Reset() Transition {
	from := s.Phase
	s.ID = NewSessionID()
	s.Running = false
	s.Phase = PhaseFocus
	s.Remaining = s.Durations.Seconds(PhaseFocus)
	return Transition{From: from, To: PhaseFocus}
}

// ApplyDurations stores new durations and reloads the active phase's
// countdown from scratch, even mid-run. Progress is not prorated.
func (s *Session) ApplyDurations(d Durations) {
	s.Durations = d.Normalize()
	s.Remaining = s.Durations.Seconds(s.Phase)
}

// Total returns the length of the active phase in seconds.
func (s *Session) Total() int {
	return s.Durations.Seconds(s.Phase)
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID,
		Phase:     s.Phase,
		Running:   s.Running,
		Remaining: s.Remaining,
		Total:     s.Total(),
		Durations: s.Durations,
	}
}

// Snapshot is a read-only view of a Session at one instant.
type Snapshot struct {
	ID        string    `json:"id"`
	Phase     Phase     `json:"phase"`
	Running   bool      `json:"running"`
	Remaining int       `json:"remaining_seconds"`
	Total     int       `json:"total_seconds"`
	Durations Durations `json:"durations"`
}

// IsBreak reports whether the snapshot is in the break phase.
func (s Snapshot) IsBreak() bool {
	return s.Phase.IsBreak()
}

// FillLevel recomputes the fill level for this snapshot.
func (s Snapshot) FillLevel() float64 {
	return ComputeFillLevel(s.Remaining, s.Total, s.IsBreak())
}

// Clock returns the remaining time as MM:SS.
func (s Snapshot) Clock() string {
	return FormatClock(s.Remaining)
}
