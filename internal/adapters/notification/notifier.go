// Package notification provides desktop notification utilities.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/vessel-cli/internal/config"
	"github.com/xvierd/vessel-cli/internal/ports"
)

// Notifier handles desktop notifications and the phase chime.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify func(title, message string, icon any) error
	beep   func(freq float64, duration int) error

	mu      sync.Mutex
	onBreak bool
}

// Ensure Notifier implements the ports it serves.
var (
	_ ports.Chime         = (*Notifier)(nil)
	_ ports.PhaseObserver = (*Notifier)(nil)
)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg, notify: beeep.Notify, beep: beeep.Beep}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return n.notify(title, message, "")
}

// Play sounds the chime if sound is enabled.
func (n *Notifier) Play() error {
	if n.cfg == nil || !n.cfg.Sound {
		return nil
	}
	return n.beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

// OnPhaseChange announces the phase that just began. A reset that leaves
// the session in focus is not announced.
func (n *Notifier) OnPhaseChange(isBreak bool) {
	n.mu.Lock()
	changed := n.onBreak != isBreak
	n.onBreak = isBreak
	n.mu.Unlock()
	if !changed {
		return
	}
	if isBreak {
		_ = n.Notify("☕ Break Time", "Focus session complete. Step away for a bit.")
		return
	}
	_ = n.Notify("🎯 Focus Session", "Back to focus.")
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
