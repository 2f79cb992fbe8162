// Package canvas rasterizes scenes into terminal character cells.
package canvas

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/xvierd/vessel-cli/internal/scheme"
)

// MinOpacity is the faintest shape that still paints a cell.
const MinOpacity = 0.2

var pivot = scheme.Point{X: scheme.ViewBox / 2, Y: scheme.ViewBox / 2}

// Cell is one character position.
type Cell struct {
	Glyph rune
	Color string
}

// Canvas is a grid of cells covering the scene view box.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// New returns a blank canvas.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i].Glyph = ' '
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// HeightFor returns the row count that keeps the view box square for
// terminal cells about twice as tall as they are wide.
func HeightFor(width int) int {
	h := width / 2
	if h < 1 {
		h = 1
	}
	return h
}

// Draw paints sc, with its idle animations at clock, under pose.
func Draw(sc scheme.Scene, pose scheme.Pose, clock time.Duration, width, height int) *Canvas {
	c := New(width, height)
	for _, sh := range sc.Resolve(clock) {
		c.paint(sh, pose)
	}
	return c
}

// Width returns the column count.
func (c *Canvas) Width() int { return c.width }

// Height returns the row count.
func (c *Canvas) Height() int { return c.height }

// At returns the cell at col, row.
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.width || row >= c.height {
		return Cell{Glyph: ' '}
	}
	return c.cells[row*c.width+col]
}

// Painted counts the non-blank cells.
func (c *Canvas) Painted() int {
	n := 0
	for _, cell := range c.cells {
		if cell.Glyph != ' ' {
			n++
		}
	}
	return n
}

// String returns the canvas without colors, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.height; row++ {
		line := make([]rune, c.width)
		for col := range line {
			line[col] = c.cells[row*c.width+col].Glyph
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		if row < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Render returns the canvas colored with lipgloss. Runs of one color share
// a style; bg, when set, paints behind every cell.
func (c *Canvas) Render(bg string) string {
	base := lipgloss.NewStyle()
	if bg != "" {
		base = base.Background(lipgloss.Color(bg))
	}

	var b strings.Builder
	for row := 0; row < c.height; row++ {
		start := 0
		for col := 1; col <= c.width; col++ {
			if col < c.width && c.cells[row*c.width+col].Color == c.cells[row*c.width+start].Color {
				continue
			}
			run := make([]rune, col-start)
			for i := range run {
				run[i] = c.cells[row*c.width+start+i].Glyph
			}
			style := base
			if color := c.cells[row*c.width+start].Color; color != "" {
				style = style.Foreground(lipgloss.Color(color))
			}
			b.WriteString(style.Render(string(run)))
			start = col
		}
		if row < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Caption fits s into width cells and centers it. Styled input keeps
// its escape sequences.
func Caption(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	pad := (width - ansi.StringWidth(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func (c *Canvas) paint(sh scheme.Shape, pose scheme.Pose) {
	opacity := sh.Opacity * pose.Opacity
	if opacity < MinOpacity {
		return
	}
	if sh.Texture.Stroked() || sh.Kind == scheme.Polyline {
		c.stroke(sh, pose)
		return
	}

	glyph := fillGlyph(sh.Texture, opacity)
	sx, sy := c.scale()
	painted := false
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			p := scheme.Point{X: (float64(col) + 0.5) * sx, Y: (float64(row) + 0.5) * sy}
			if sh.Contains(toScene(p, pose)) {
				c.set(col, row, glyph, sh.Color)
				painted = true
			}
		}
	}

	// Shapes smaller than a cell still show up at their center.
	if !painted {
		center := sh.Center()
		if sh.Contains(center) {
			p := toScreen(center, pose)
			c.set(int(p.X/sx), int(p.Y/sy), glyph, sh.Color)
		}
	}
}

func (c *Canvas) stroke(sh scheme.Shape, pose scheme.Pose) {
	edge := sh.Edge()
	sx, sy := c.scale()
	step := math.Min(sx, sy) / 2
	for i := 1; i < len(edge); i++ {
		a, b := toScreen(edge[i-1], pose), toScreen(edge[i], pose)
		dx, dy := b.X-a.X, b.Y-a.Y
		glyph := strokeGlyph(sh.Texture, dx/sx, dy/sy)
		n := int(math.Ceil(math.Hypot(dx, dy)/step)) + 1
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			x, y := a.X+dx*t, a.Y+dy*t
			if x < 0 || y < 0 {
				continue
			}
			c.set(int(x/sx), int(y/sy), glyph, sh.Color)
		}
	}
}

func (c *Canvas) set(col, row int, glyph rune, color string) {
	if col < 0 || row < 0 || col >= c.width || row >= c.height {
		return
	}
	c.cells[row*c.width+col] = Cell{Glyph: glyph, Color: color}
}

func (c *Canvas) scale() (sx, sy float64) {
	return scheme.ViewBox / float64(c.width), scheme.ViewBox / float64(c.height)
}

// toScene maps a screen point back through the pose.
func toScene(p scheme.Point, pose scheme.Pose) scheme.Point {
	p.Y -= pose.OffsetY
	return scheme.RotatePoint(p, pivot, -pose.Rotate)
}

// toScreen maps a scene point forward through the pose.
func toScreen(p scheme.Point, pose scheme.Pose) scheme.Point {
	p = scheme.RotatePoint(p, pivot, pose.Rotate)
	p.Y += pose.OffsetY
	return p
}

var shades = []rune{'█', '▓', '▒', '░'}

func fillGlyph(tex scheme.Texture, opacity float64) rune {
	switch tex {
	case scheme.Dots:
		return '•'
	case scheme.Sparkle:
		return '*'
	}
	i := 0
	switch tex {
	case scheme.Dense:
		i = 1
	case scheme.Medium:
		i = 2
	case scheme.Light:
		i = 3
	}
	if opacity < 0.5 {
		i++
	}
	if opacity < 0.35 {
		i++
	}
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return shades[i]
}

func strokeGlyph(tex scheme.Texture, dx, dy float64) rune {
	if tex == scheme.Wave {
		return '~'
	}
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay <= ax/2:
		return '─'
	case ax <= ay/2:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}
