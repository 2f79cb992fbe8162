package ports

//go:generate mockgen -source=notifier.go -destination=mocks/notifier_mock.go -package=mocks

// Chime plays a short notification sound when a phase ends.
// This is a driven port (implemented by adapters). Callers ignore errors.
type Chime interface {
	Play() error
}

// PhaseObserver is told about every focus/break switch, including the
// return to focus on reset.
// This is a driving port (implemented by the host).
type PhaseObserver interface {
	OnPhaseChange(isBreak bool)
}

// PhaseObserverFunc adapts a function to PhaseObserver.
type PhaseObserverFunc func(isBreak bool)

// OnPhaseChange calls f.
func (f PhaseObserverFunc) OnPhaseChange(isBreak bool) {
	f(isBreak)
}
