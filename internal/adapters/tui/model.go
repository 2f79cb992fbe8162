// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/vessel-cli/internal/canvas"
	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/ports"
	"github.com/xvierd/vessel-cli/internal/scheme"
	"github.com/xvierd/vessel-cli/internal/theme"
)

const (
	defaultFPS     = 10
	maxCanvasWidth = 48
	minCanvasWidth = 20
	flashFrames    = 30
	pausedColor    = "#6B7280"
)

// Preferences persists choices made in the TUI.
type Preferences interface {
	SaveDurations(ctx context.Context, focusMinutes, breakMinutes int) (domain.Durations, error)
	SaveTheme(ctx context.Context, raw string) (theme.Theme, error)
	SaveDark(ctx context.Context, dark bool) error
}

// Options configures a Model.
type Options struct {
	Theme     theme.ID
	Dark      bool
	FPS       int
	Completed int
}

// frameMsg is sent on every redraw tick.
type frameMsg time.Time

// phaseMsg reports a focus/break switch made by the timer service.
type phaseMsg struct {
	isBreak bool
}

// Model represents the TUI state.
type Model struct {
	ctx       context.Context
	timer     ports.SessionTimer
	prefs     Preferences
	theme     theme.Theme
	dark      bool
	fps       int
	clock     time.Duration
	pose      poseAnimator
	progress  progress.Model
	progBreak bool
	onBreak   bool
	width     int
	height    int
	completed int
	flash     string
	flashLeft int
	picking   bool
	picker    themePicker
	lastError error
}

// NewModel creates a new TUI model driving timer. prefs may be nil.
func NewModel(ctx context.Context, timer ports.SessionTimer, prefs Preferences, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	t := theme.Lookup(opts.Theme)
	m := Model{
		ctx:       ctx,
		timer:     timer,
		prefs:     prefs,
		theme:     t,
		dark:      opts.Dark,
		fps:       fps,
		pose:      newPoseAnimator(fps),
		completed: opts.Completed,
	}
	m.progBreak = timer.Snapshot().IsBreak()
	m.onBreak = m.progBreak
	m.progress = newProgress(t, m.progBreak)
	m.pose = m.pose.retarget(m.scene().Pose)
	return m
}

func newProgress(t theme.Theme, isBreak bool) progress.Model {
	start, end := t.Gradient(isBreak)
	return progress.New(progress.WithGradient(start, end), progress.WithoutPercentage())
}

func (m Model) interval() time.Duration {
	return time.Second / time.Duration(m.fps)
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.interval())
}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// scene renders the current snapshot with the active theme.
func (m Model) scene() scheme.Scene {
	snap := m.timer.Snapshot()
	return scheme.Render(m.theme.ID, scheme.Frame{
		Fill:  snap.FillLevel(),
		Break: snap.IsBreak(),
		Clock: m.clock,
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(maxCanvasWidth, max(minCanvasWidth, msg.Width-4))
		return m, nil

	case frameMsg:
		m.clock += m.interval()
		m.pose = m.pose.retarget(m.scene().Pose).step()
		if m.flashLeft > 0 {
			m.flashLeft--
		}
		if isBreak := m.timer.Snapshot().IsBreak(); isBreak != m.progBreak {
			m.progBreak = isBreak
			m.progress = m.restyleProgress()
		}
		return m, frameCmd(m.interval())

	case phaseMsg:
		wasBreak := m.onBreak
		m.onBreak = msg.isBreak
		switch {
		case msg.isBreak:
			m.completed++
			m.flash = "Focus complete. Break Time!"
		case wasBreak:
			m.flash = "Back to focus"
		default:
			// reset within focus
			return m, nil
		}
		m.flashLeft = flashFrames
		return m, nil

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case " ", "enter", "p":
		m.timer.Toggle()
	case "r":
		m.timer.Reset()
	case "t":
		m.picking = true
		m.picker = newThemePicker(m.theme.ID)
	case "+", "=":
		m = m.adjustDurations(1, 0)
	case "-", "_":
		m = m.adjustDurations(-1, 0)
	case "]":
		m = m.adjustDurations(0, 1)
	case "[":
		m = m.adjustDurations(0, -1)
	case "d":
		m.dark = !m.dark
		if m.prefs != nil {
			m.lastError = m.prefs.SaveDark(m.ctx, m.dark)
		}
	case "1", "2", "3", "4", "5", "6", "7":
		ids := theme.IDs()
		if i := int(msg.String()[0] - '1'); i < len(ids) {
			m = m.selectTheme(ids[i])
		}
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	picker, outcome, cmd := m.picker.update(msg)
	m.picker = picker
	switch outcome {
	case pickerChosen:
		t, _ := picker.selected()
		m.picking = false
		m = m.selectTheme(t.ID)
	case pickerAborted:
		m.picking = false
	}
	return m, cmd
}

// selectTheme swaps the renderer and palette. The countdown is untouched.
func (m Model) selectTheme(id theme.ID) Model {
	if m.prefs != nil {
		t, err := m.prefs.SaveTheme(m.ctx, string(id))
		m.lastError = err
		id = t.ID
	}
	m.theme = theme.Lookup(id)
	m.progress = m.restyleProgress()
	m.pose = newPoseAnimator(m.fps).retarget(m.scene().Pose)
	return m
}

func (m Model) restyleProgress() progress.Model {
	p := newProgress(m.theme, m.progBreak)
	p.Width = m.progress.Width
	return p
}

// adjustDurations steps the phase lengths by whole minutes. Stepping
// below the minimum holds at the minimum.
func (m Model) adjustDurations(dFocus, dBreak int) Model {
	d := m.timer.Snapshot().Durations
	focus := max(domain.MinMinutes, d.FocusMinutes+dFocus)
	brk := max(domain.MinMinutes, d.BreakMinutes+dBreak)
	next := domain.NewDurations(focus, brk)
	if next == d {
		return m
	}
	m.timer.OnDurationChange(next.FocusMinutes, next.BreakMinutes)
	if m.prefs != nil {
		_, m.lastError = m.prefs.SaveDurations(m.ctx, next.FocusMinutes, next.BreakMinutes)
	}
	return m
}

func (m Model) canvasSize() (int, int) {
	w := maxCanvasWidth
	if m.width > 0 {
		w = min(maxCanvasWidth, max(minCanvasWidth, m.width-4))
	}
	h := canvas.HeightFor(w)
	if m.height > 0 && m.height-18 < h {
		h = max(8, m.height-18)
		w = min(w, h*2)
	}
	return w, h
}

func (m Model) textColors() (fg, dim lipgloss.Color) {
	if m.dark {
		return lipgloss.Color("#F9FAFB"), lipgloss.Color("#9CA3AF")
	}
	return lipgloss.Color("#1F2937"), lipgloss.Color("#6B7280")
}

// View renders the TUI.
func (m Model) View() string {
	snap := m.timer.Snapshot()
	sc := m.scene()
	bg := m.theme.Background(snap.IsBreak(), m.dark).Base()
	fg, dim := m.textColors()
	accent := lipgloss.Color(m.theme.Palette.Accent)

	cw, ch := m.canvasSize()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle := lipgloss.NewStyle().Foreground(dim)
	accentStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)

	var sections []string
	sections = append(sections, titleStyle.Render("Focus Timer"))
	sections = append(sections, dimStyle.Render("Choose your vibe, stay focused"))
	sections = append(sections, m.themeTabs(accent, dim))
	sections = append(sections, "")

	if m.picking {
		sections = append(sections, m.picker.view(accent, dim))
		return m.place(bg, sections)
	}

	sections = append(sections, canvas.Draw(sc, m.pose.current, m.clock, cw, ch).Render(bg))

	label := sc.Label
	if sc.Caption != "" {
		label += " · " + sc.Caption
	}
	sections = append(sections, canvas.Caption(accentStyle.Render(label), cw))
	sections = append(sections, "")

	clockColor := accent
	if !snap.Running {
		clockColor = lipgloss.Color(pausedColor)
	}
	sections = append(sections, renderBigClock(snap.Clock(), clockColor, m.width))

	status := snap.Phase.Label()
	if !snap.Running {
		status += " · paused"
	}
	sections = append(sections, titleStyle.Render(status))
	sections = append(sections, m.progress.ViewAs(phaseProgress(snap)))

	if m.flashLeft > 0 {
		sections = append(sections, accentStyle.Render(m.flash))
	}
	if m.lastError != nil {
		sections = append(sections, lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Render("Error: "+m.lastError.Error()))
	}

	sections = append(sections, "")
	sections = append(sections, dimStyle.Render(fmt.Sprintf("focus %dm · break %dm · %d completed",
		snap.Durations.FocusMinutes, snap.Durations.BreakMinutes, m.completed)))
	sections = append(sections, dimStyle.Render("[space] start/pause  [r]eset  [t]heme  [+/-] focus  [[/]] break  [d]ark  [q]uit"))

	return m.place(bg, sections)
}

func (m Model) place(bg string, sections []string) string {
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	var opts []lipgloss.WhitespaceOption
	if bg != "" {
		opts = append(opts, lipgloss.WithWhitespaceBackground(lipgloss.Color(bg)))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content, opts...)
}

// themeTabs shows every theme icon with the active one highlighted.
func (m Model) themeTabs(accent, dim lipgloss.Color) string {
	active := lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true)
	idle := lipgloss.NewStyle().Foreground(dim)
	var tabs []string
	for i, t := range theme.All() {
		label := fmt.Sprintf("%d %s", i+1, t.Icon)
		if t.ID == m.theme.ID {
			tabs = append(tabs, active.Render(t.Title()))
			continue
		}
		tabs = append(tabs, idle.Render(label))
	}
	return strings.Join(tabs, "  ")
}

// phaseProgress is the elapsed share of the active phase.
func phaseProgress(s domain.Snapshot) float64 {
	if s.Total <= 0 {
		return 0
	}
	return 1 - float64(s.Remaining)/float64(s.Total)
}
