package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/vessel-cli/internal/ports"
)

// Timer implements the ports.Timer interface using Bubbletea.
type Timer struct {
	program *tea.Program
	model   Model
	opts    []tea.ProgramOption
	cancel  context.CancelFunc
	mu      sync.Mutex
	wg      sync.WaitGroup

	// Phase changes queued for the program, in arrival order.
	pending []bool
	wake    chan struct{}
	sent    int
}

// NewTimer creates a new TUI timer adapter around model. Without options
// the program takes over the terminal with the alternate screen.
func NewTimer(model Model, opts ...tea.ProgramOption) *Timer {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Timer{model: model, opts: opts, wake: make(chan struct{}, 1)}
}

// Run starts the timer interface and blocks until completion.
func (t *Timer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t.mu.Lock()
	t.program = tea.NewProgram(t.model, t.opts...)
	t.cancel = cancel
	program := t.program
	t.mu.Unlock()

	// Handle context cancellation
	t.wg.Add(2)
	go func() {
		defer t.wg.Done()
		<-ctx.Done()
		program.Quit()
	}()
	go func() {
		defer t.wg.Done()
		t.forward(ctx, program)
	}()

	final, err := program.Run()

	// Signal cancellation and wait for goroutines
	cancel()
	t.wg.Wait()

	t.mu.Lock()
	t.program = nil
	if m, ok := final.(Model); ok {
		t.model = m
	}
	t.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// forward hands queued phase changes to the program. Send blocks until the
// event loop takes the message, so it never runs on the caller's goroutine:
// the caller may be the event loop itself (a reset key).
func (t *Timer) forward(ctx context.Context, program *tea.Program) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.wake:
		}

		t.mu.Lock()
		batch := t.pending
		t.pending = nil
		t.mu.Unlock()

		for _, isBreak := range batch {
			program.Send(phaseMsg{isBreak: isBreak})
			t.mu.Lock()
			t.sent++
			t.mu.Unlock()
		}
	}
}

// Stop gracefully stops the timer interface.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
}

// OnPhaseChange queues a phase switch for the running program and returns
// immediately. It is safe to call from any goroutine, including Update.
func (t *Timer) OnPhaseChange(isBreak bool) {
	t.mu.Lock()
	if t.program == nil {
		t.mu.Unlock()
		return
	}
	t.pending = append(t.pending, isBreak)
	t.mu.Unlock()

	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// Ensure Timer implements the ports it serves.
var (
	_ ports.Timer         = (*Timer)(nil)
	_ ports.PhaseObserver = (*Timer)(nil)
)
