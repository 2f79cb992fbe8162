package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/vessel-cli/internal/adapters/ticker"
	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/scheme"
	"github.com/xvierd/vessel-cli/internal/services"
	"github.com/xvierd/vessel-cli/internal/theme"
)

type fakePrefs struct {
	durations []domain.Durations
	themes    []string
	dark      []bool
	err       error
}

func (f *fakePrefs) SaveDurations(_ context.Context, focus, brk int) (domain.Durations, error) {
	d := domain.NewDurations(focus, brk)
	f.durations = append(f.durations, d)
	return d, f.err
}

func (f *fakePrefs) SaveTheme(_ context.Context, raw string) (theme.Theme, error) {
	f.themes = append(f.themes, raw)
	t, _ := theme.Parse(raw)
	return t, f.err
}

func (f *fakePrefs) SaveDark(_ context.Context, dark bool) error {
	f.dark = append(f.dark, dark)
	return f.err
}

func key(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T, want Model", next)
		}
	}
	return m
}

func newTestModel(t *testing.T, opts Options) (Model, *services.TimerService, *ticker.Manual, *fakePrefs) {
	t.Helper()
	tick := &ticker.Manual{}
	svc := services.NewTimerService(domain.DefaultDurations(), tick)
	t.Cleanup(svc.Close)
	prefs := &fakePrefs{}
	return NewModel(context.Background(), svc, prefs, opts), svc, tick, prefs
}

func TestKeyToggleAndReset(t *testing.T) {
	m, svc, tick, _ := newTestModel(t, Options{})

	m = send(t, m, key(" "))
	if !svc.Snapshot().Running {
		t.Fatal("space should start the timer")
	}
	tick.Fire(10)
	if got := svc.Snapshot().Remaining; got != 1490 {
		t.Errorf("Remaining = %d, want 1490", got)
	}

	m = send(t, m, key("p"))
	if svc.Snapshot().Running {
		t.Error("p should pause the timer")
	}

	send(t, m, key("r"))
	snap := svc.Snapshot()
	if snap.Running || snap.Remaining != 1500 || snap.IsBreak() {
		t.Errorf("after reset snapshot = %+v", snap)
	}
}

func TestKeyDurations(t *testing.T) {
	m, svc, _, prefs := newTestModel(t, Options{})

	m = send(t, m, key("+"), key("+"), key("]"))
	d := svc.Snapshot().Durations
	if d.FocusMinutes != 27 || d.BreakMinutes != 6 {
		t.Errorf("Durations = %+v, want 27/6", d)
	}
	if got := svc.Snapshot().Remaining; got != 27*60 {
		t.Errorf("Remaining = %d, want %d", got, 27*60)
	}
	if len(prefs.durations) != 3 {
		t.Errorf("SaveDurations called %d times, want 3", len(prefs.durations))
	}

	for i := 0; i < 10; i++ {
		m = send(t, m, key("["))
	}
	if got := svc.Snapshot().Durations.BreakMinutes; got != domain.MinMinutes {
		t.Errorf("BreakMinutes = %d, want %d", got, domain.MinMinutes)
	}
}

func TestKeyThemeShortcutKeepsTimer(t *testing.T) {
	m, svc, tick, prefs := newTestModel(t, Options{Theme: theme.Coffee})
	m = send(t, m, key(" "))
	tick.Fire(5)

	m = send(t, m, key("5"))
	if m.theme.ID != theme.Plant {
		t.Errorf("theme = %s, want plant", m.theme.ID)
	}
	if len(prefs.themes) != 1 || prefs.themes[0] != "plant" {
		t.Errorf("SaveTheme calls = %v", prefs.themes)
	}
	snap := svc.Snapshot()
	if !snap.Running || snap.Remaining != 1495 {
		t.Errorf("theme change disturbed timer: %+v", snap)
	}
}

func TestThemePicker(t *testing.T) {
	m, _, _, prefs := newTestModel(t, Options{Theme: theme.Coffee})

	m = send(t, m, key("t"))
	if !m.picking {
		t.Fatal("t should open the picker")
	}
	if !strings.Contains(m.View(), "Coffee Mug") {
		t.Error("picker view should list themes")
	}

	m = send(t, m, key("h"), key("o"), key("u"), key("r"))
	if sel, ok := m.picker.selected(); !ok || sel.ID != theme.Sand {
		t.Errorf("selected = %v, %v; want sand", sel.ID, ok)
	}

	m = send(t, m, key("enter"))
	if m.picking {
		t.Error("enter should close the picker")
	}
	if m.theme.ID != theme.Sand {
		t.Errorf("theme = %s, want sand", m.theme.ID)
	}
	if len(prefs.themes) != 1 {
		t.Errorf("SaveTheme calls = %v", prefs.themes)
	}
}

func TestThemePickerEscKeepsTheme(t *testing.T) {
	m, _, _, prefs := newTestModel(t, Options{Theme: theme.Battery})

	m = send(t, m, key("t"), key("down"), key("esc"))
	if m.picking {
		t.Error("esc should close the picker")
	}
	if m.theme.ID != theme.Battery {
		t.Errorf("theme = %s, want battery", m.theme.ID)
	}
	if len(prefs.themes) != 0 {
		t.Errorf("SaveTheme should not be called, got %v", prefs.themes)
	}
}

func TestKeyDarkMode(t *testing.T) {
	m, _, _, prefs := newTestModel(t, Options{})
	m = send(t, m, key("d"))
	if !m.dark {
		t.Error("d should enable dark mode")
	}
	if len(prefs.dark) != 1 || !prefs.dark[0] {
		t.Errorf("SaveDark calls = %v", prefs.dark)
	}
}

func TestSaveErrorIsShown(t *testing.T) {
	m, _, _, prefs := newTestModel(t, Options{})
	prefs.err = errors.New("disk full")
	m = send(t, m, key("d"))
	if !strings.Contains(m.View(), "disk full") {
		t.Error("View() should show the save error")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m, _, _, _ := newTestModel(t, Options{})
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%q should return a command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q should quit", k)
		}
	}
}

func TestPhaseMessageCountsCompletions(t *testing.T) {
	m, _, _, _ := newTestModel(t, Options{Completed: 2})
	m = send(t, m, phaseMsg{isBreak: true})
	if m.completed != 3 {
		t.Errorf("completed = %d, want 3", m.completed)
	}
	if !strings.Contains(m.View(), "Break Time!") {
		t.Error("View() should flash the break message")
	}
	m = send(t, m, phaseMsg{isBreak: false})
	if m.completed != 3 {
		t.Errorf("returning to focus should not count, got %d", m.completed)
	}
}

func TestResetInFocusDoesNotFlash(t *testing.T) {
	m, _, _, _ := newTestModel(t, Options{})
	m = send(t, m, phaseMsg{isBreak: false})
	if m.flashLeft != 0 {
		t.Errorf("flashLeft = %d, want 0", m.flashLeft)
	}

	m = send(t, m, phaseMsg{isBreak: true})
	m = send(t, m, phaseMsg{isBreak: false})
	if m.flash != "Back to focus" || m.flashLeft == 0 {
		t.Errorf("flash = %q (%d frames), want the return-to-focus message", m.flash, m.flashLeft)
	}
}

func TestFrameAdvancesClockAndPose(t *testing.T) {
	m, svc, tick, _ := newTestModel(t, Options{Theme: theme.Sand, FPS: 10})

	m = send(t, m, frameMsg(time.Now()))
	if m.clock != 100*time.Millisecond {
		t.Errorf("clock = %v, want 100ms", m.clock)
	}
	// A full top bulb shows the glass turned over without animating.
	if got := m.pose.current.Rotate; got != scheme.FlipDegrees {
		t.Errorf("idle Rotate = %v, want %v", got, scheme.FlipDegrees)
	}

	svc.Start()
	tick.Fire(60)
	for i := 0; i < 100; i++ {
		m = send(t, m, frameMsg(time.Now()))
	}
	if got := m.pose.current.Rotate; got != 0 {
		t.Errorf("running Rotate = %v, want 0", got)
	}

	tick.Fire(domain.DefaultFocusMinutes*60 - 60)
	if !svc.Snapshot().IsBreak() {
		t.Fatal("expected break phase")
	}
	for i := 0; i < 100; i++ {
		m = send(t, m, frameMsg(time.Now()))
	}
	if got := m.pose.current.Rotate; got != scheme.FlipDegrees {
		t.Errorf("break Rotate = %v, want %v", got, scheme.FlipDegrees)
	}
	if !m.progBreak {
		t.Error("progress bar should switch to the break palette")
	}
}

func TestView(t *testing.T) {
	m, _, _, _ := newTestModel(t, Options{Theme: theme.Battery})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	view := m.View()

	for _, want := range []string{"Focus Timer", "Choose your vibe, stay focused", "Battery Charge", "Focus Session", "paused", "focus 25m"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestRenderBigClock(t *testing.T) {
	narrow := renderBigClock("25:00", "#FFFFFF", 30)
	if !strings.Contains(narrow, "25:00") {
		t.Errorf("narrow clock = %q", narrow)
	}
	wide := renderBigClock("25:00", "#FFFFFF", 80)
	if got := len(strings.Split(wide, "\n")); got != 5 {
		t.Errorf("wide clock has %d lines, want 5", got)
	}
}

func TestPoseAnimatorSettles(t *testing.T) {
	a := newPoseAnimator(10).retarget(scheme.RestPose())
	if !a.settled() {
		t.Fatal("first pose should be adopted immediately")
	}

	target := scheme.RestPose()
	target.Rotate = 180
	target.Duration = time.Second
	a = a.retarget(target)
	a = a.step()
	if a.current.Rotate <= 0 || a.current.Rotate >= 180 {
		t.Errorf("after one step Rotate = %v, want between 0 and 180", a.current.Rotate)
	}
	for i := 0; i < 60; i++ {
		a = a.step()
	}
	if !a.settled() || a.current.Rotate != 180 {
		t.Errorf("Rotate = %v settled=%v, want 180 settled", a.current.Rotate, a.settled())
	}
}
