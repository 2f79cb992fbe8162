// Package ticker provides the wall-clock tick source.
package ticker

import (
	"sync"
	"time"

	"github.com/xvierd/vessel-cli/internal/ports"
)

// Wall ticks on real time.
type Wall struct{}

// Ensure Wall implements ports.Ticker.
var _ ports.Ticker = Wall{}

// Every runs fn on its own goroutine once per interval. stop ends the
// loop without waiting for a call that is already running.
func (Wall) Every(interval time.Duration, fn func()) func() {
	stopCh := make(chan struct{})
	var once sync.Once

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-t.C:
				select {
				case <-stopCh:
					return
				default:
				}
				fn()
			}
		}
	}()

	return func() { once.Do(func() { close(stopCh) }) }
}

// Manual is a tick source driven by tests. Only the most recently armed,
// unstopped callback is live.
type Manual struct {
	mu      sync.Mutex
	fns     []func()
	stopped []bool
	armed   int
}

// Ensure Manual implements ports.Ticker.
var _ ports.Ticker = (*Manual)(nil)

// Every records fn as a tick source.
func (m *Manual) Every(_ time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := len(m.fns)
	m.fns = append(m.fns, fn)
	m.stopped = append(m.stopped, false)
	m.armed++
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if !m.stopped[idx] {
			m.stopped[idx] = true
			m.armed--
		}
	}
}

// Live returns how many sources are armed and not stopped.
func (m *Manual) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.armed
}

// Armed returns how many sources were ever armed.
func (m *Manual) Armed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.fns)
}

// Fire calls every live source n times.
func (m *Manual) Fire(n int) {
	for i := 0; i < n; i++ {
		for _, fn := range m.live() {
			fn()
		}
	}
}

// FireStale calls every source, including stopped ones, once. It mimics
// a tick racing with its own cancellation.
func (m *Manual) FireStale() {
	m.mu.Lock()
	fns := append([]func(){}, m.fns...)
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (m *Manual) live() []func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []func()
	for i, fn := range m.fns {
		if !m.stopped[i] {
			out = append(out, fn)
		}
	}
	return out
}
