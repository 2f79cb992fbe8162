package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const programTimeout = 3 * time.Second

func newHeadlessTimer(m Model) *Timer {
	return NewTimer(m,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
}

// runHeadless starts timer in the background and waits for its program.
func runHeadless(t *testing.T, timer *Timer) (*tea.Program, <-chan error) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- timer.Run(context.Background()) }()

	deadline := time.Now().Add(programTimeout)
	for time.Now().Before(deadline) {
		timer.mu.Lock()
		p := timer.program
		timer.mu.Unlock()
		if p != nil {
			return p, done
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("program never started")
	return nil, nil
}

// sendAll delivers msgs without blocking the test on a stuck event loop.
func sendAll(p *tea.Program, msgs ...tea.Msg) {
	go func() {
		for _, msg := range msgs {
			p.Send(msg)
		}
	}()
}

func waitExit(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(programTimeout):
		t.Fatal("program did not exit; the event loop is blocked")
	}
}

func waitSent(t *testing.T, timer *Timer, n int) {
	t.Helper()
	deadline := time.Now().Add(programTimeout)
	for time.Now().Before(deadline) {
		timer.mu.Lock()
		sent := timer.sent
		timer.mu.Unlock()
		if sent >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("program received fewer than %d phase messages", n)
}

func TestTimerResetKeyKeepsProgramResponsive(t *testing.T) {
	m, svc, _, _ := newTestModel(t, Options{})
	timer := newHeadlessTimer(m)
	svc.AddObserver(timer)

	p, done := runHeadless(t, timer)
	sendAll(p, key(" "), key("r"), key("q"))
	waitExit(t, done)

	snap := svc.Snapshot()
	assert.False(t, snap.Running, "reset leaves the timer idle")
	assert.Equal(t, snap.Total, snap.Remaining)
}

func TestTimerTickPhaseChangeReachesProgram(t *testing.T) {
	m, svc, tick, _ := newTestModel(t, Options{Completed: 4})
	timer := newHeadlessTimer(m)
	svc.AddObserver(timer)

	// Started before the program runs, like --start.
	svc.Start()
	p, done := runHeadless(t, timer)

	tick.Fire(svc.Snapshot().Total)
	require.True(t, svc.Snapshot().IsBreak())
	waitSent(t, timer, 1)

	sendAll(p, key("r"), key("q"))
	waitExit(t, done)

	assert.Equal(t, 5, timer.model.completed, "the finished focus phase is counted")
	assert.False(t, svc.Snapshot().IsBreak())
}

func TestTimerStopEndsRun(t *testing.T) {
	m, svc, _, _ := newTestModel(t, Options{})
	timer := newHeadlessTimer(m)
	svc.AddObserver(timer)

	// Nothing is running yet; the change is dropped without blocking.
	timer.OnPhaseChange(true)

	_, done := runHeadless(t, timer)
	timer.Stop()
	waitExit(t, done)

	timer.mu.Lock()
	defer timer.mu.Unlock()
	assert.Nil(t, timer.program)
	assert.Zero(t, timer.sent)
}
