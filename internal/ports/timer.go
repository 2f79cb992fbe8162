package ports

import (
	"context"
	"time"

	"github.com/xvierd/vessel-cli/internal/domain"
)

// TimerCommand represents a user action on the countdown.
type TimerCommand string

const (
	// CmdToggle starts an idle timer or pauses a running one.
	CmdToggle TimerCommand = "toggle"

	// CmdStart starts the timer.
	CmdStart TimerCommand = "start"

	// CmdPause pauses the timer.
	CmdPause TimerCommand = "pause"

	// CmdReset returns to an idle focus phase.
	CmdReset TimerCommand = "reset"

	// CmdQuit exits the application.
	CmdQuit TimerCommand = "quit"
)

// Ticker is a recurring tick source.
// This is a driven port (implemented by adapters and test doubles).
type Ticker interface {
	// Every calls fn once per interval until stop is called. After stop
	// returns no further calls are started.
	Every(interval time.Duration, fn func()) (stop func())
}

// SessionTimer is the focus/break state machine as seen by hosts.
// This is a driving port (implemented by the services layer).
type SessionTimer interface {
	Start()
	Pause()
	Toggle()
	Reset()
	Tick()
	OnDurationChange(focusMinutes, breakMinutes int)
	Snapshot() domain.Snapshot
	Execute(cmd TimerCommand) error
}

// Timer is the interactive display of a running session.
// This is a driving port (called by the application layer).
type Timer interface {
	// Run starts the display and blocks until the user quits or ctx ends.
	Run(ctx context.Context) error

	// Stop gracefully stops the display.
	Stop()

	// OnPhaseChange forwards a phase switch to the display.
	OnPhaseChange(isBreak bool)
}
