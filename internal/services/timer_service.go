package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/ports"
)

// TickInterval is how often a running session consumes one second.
const TickInterval = time.Second

// TimerService drives a domain.Session. It owns the only live tick source:
// arming a new one always cancels the previous one first, and ticks from a
// cancelled source are dropped.
type TimerService struct {
	mu         sync.Mutex
	session    *domain.Session
	ticker     ports.Ticker
	interval   time.Duration
	stopTick   func()
	generation uint64

	chime     ports.Chime
	observers []ports.PhaseObserver
	log       *slog.Logger

	// Phase announcements are delivered in the order the state changed:
	// issued is taken under mu, served advances as each one finishes.
	issued uint64
	turnMu sync.Mutex
	turn   *sync.Cond
	served uint64
}

// TimerOption configures a TimerService.
type TimerOption func(*TimerService)

// WithChime sets the sound played at every phase transition.
func WithChime(c ports.Chime) TimerOption {
	return func(s *TimerService) { s.chime = c }
}

// WithObserver registers a phase observer.
func WithObserver(o ports.PhaseObserver) TimerOption {
	return func(s *TimerService) { s.observers = append(s.observers, o) }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) TimerOption {
	return func(s *TimerService) { s.log = log }
}

// WithInterval overrides the tick interval.
func WithInterval(d time.Duration) TimerOption {
	return func(s *TimerService) {
		if d > 0 {
			s.interval = d
		}
	}
}

// NewTimerService creates an idle focus session driven by ticker.
func NewTimerService(d domain.Durations, ticker ports.Ticker, opts ...TimerOption) *TimerService {
	s := &TimerService{
		session:  domain.NewSession(d),
		ticker:   ticker,
		interval: TickInterval,
		log:      slog.New(slog.DiscardHandler),
	}
	s.turn = sync.NewCond(&s.turnMu)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddObserver registers a phase observer after construction.
func (s *TimerService) AddObserver(o ports.PhaseObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Start begins counting down. It is a no-op while already running.
func (s *TimerService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked()
}

// Pause stops counting down and keeps the remaining time.
func (s *TimerService) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauseLocked()
}

// Toggle starts an idle session or pauses a running one.
func (s *TimerService) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Running {
		s.pauseLocked()
		return
	}
	s.startLocked()
}

func (s *TimerService) startLocked() {
	if !s.session.Start() {
		return
	}
	s.armLocked()
	s.log.Info("timer started", "session", s.session.ID, "phase", s.session.Phase, "remaining", s.session.Remaining)
}

func (s *TimerService) pauseLocked() {
	if !s.session.Pause() {
		return
	}
	s.disarmLocked()
	s.log.Info("timer paused", "session", s.session.ID, "remaining", s.session.Remaining)
}

// armLocked replaces any tick source with a fresh one.
func (s *TimerService) armLocked() {
	s.disarmLocked()
	gen := s.generation
	s.stopTick = s.ticker.Every(s.interval, func() { s.tick(gen) })
}

// disarmLocked cancels the tick source and invalidates its ticks.
func (s *TimerService) disarmLocked() {
	if s.stopTick != nil {
		s.stopTick()
		s.stopTick = nil
	}
	s.generation++
}

// Tick consumes one second of a running session. Idle sessions ignore it.
func (s *TimerService) Tick() {
	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()
	s.tick(gen)
}

func (s *TimerService) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || !s.session.Running {
		s.mu.Unlock()
		return
	}
	tr := s.session.Tick()
	id := s.session.ID
	if tr == nil {
		s.mu.Unlock()
		return
	}
	ticket := s.takeTicketLocked()
	s.mu.Unlock()

	s.log.Info("phase complete", "session", id, "from", tr.From, "to", tr.To)
	s.inTurn(ticket, func() {
		s.playChime()
		s.notify(tr.To.IsBreak())
	})
}

// Reset returns to an idle focus phase with a full countdown.
func (s *TimerService) Reset() {
	s.mu.Lock()
	s.disarmLocked()
	s.session.Reset()
	id := s.session.ID
	ticket := s.takeTicketLocked()
	s.mu.Unlock()

	s.log.Info("timer reset", "session", id)
	s.inTurn(ticket, func() { s.notify(false) })
}

// OnDurationChange applies new durations. The active phase restarts from
// its new full length even mid-countdown.
func (s *TimerService) OnDurationChange(focusMinutes, breakMinutes int) {
	d := domain.NewDurations(focusMinutes, breakMinutes)
	if d.FocusMinutes != focusMinutes || d.BreakMinutes != breakMinutes {
		s.log.Warn("durations coerced",
			"focus", focusMinutes, "break", breakMinutes,
			"focus_used", d.FocusMinutes, "break_used", d.BreakMinutes)
	}

	s.mu.Lock()
	s.session.ApplyDurations(d)
	remaining := s.session.Remaining
	s.mu.Unlock()

	s.log.Info("durations changed", "focus", d.FocusMinutes, "break", d.BreakMinutes, "remaining", remaining)
}

// Snapshot returns the current state.
func (s *TimerService) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Snapshot()
}

// Execute runs a named command.
func (s *TimerService) Execute(cmd ports.TimerCommand) error {
	switch cmd {
	case ports.CmdToggle:
		s.Toggle()
	case ports.CmdStart:
		s.Start()
	case ports.CmdPause:
		s.Pause()
	case ports.CmdReset:
		s.Reset()
	default:
		return fmt.Errorf("unknown timer command %q", cmd)
	}
	return nil
}

// Close stops the tick source.
func (s *TimerService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disarmLocked()
}

// playChime fires the chime. Failures never reach the tick logic.
func (s *TimerService) playChime() {
	if s.chime == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("chime panicked", "panic", r)
		}
	}()
	if err := s.chime.Play(); err != nil {
		s.log.Debug("chime failed", "error", err)
	}
}

func (s *TimerService) takeTicketLocked() uint64 {
	s.issued++
	return s.issued
}

// inTurn runs fn once every earlier ticket has been served. Observers must
// not reset the timer from inside OnPhaseChange.
func (s *TimerService) inTurn(ticket uint64, fn func()) {
	s.turnMu.Lock()
	for s.served+1 != ticket {
		s.turn.Wait()
	}
	s.turnMu.Unlock()

	defer func() {
		s.turnMu.Lock()
		s.served = ticket
		s.turn.Broadcast()
		s.turnMu.Unlock()
	}()
	fn()
}

func (s *TimerService) notify(isBreak bool) {
	s.mu.Lock()
	observers := append([]ports.PhaseObserver(nil), s.observers...)
	s.mu.Unlock()
	for _, o := range observers {
		o.OnPhaseChange(isBreak)
	}
}

// Ensure TimerService implements ports.SessionTimer.
var _ ports.SessionTimer = (*TimerService)(nil)
