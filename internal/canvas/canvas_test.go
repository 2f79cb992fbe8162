package canvas

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/vessel-cli/internal/scheme"
	"github.com/xvierd/vessel-cli/internal/theme"
)

const coffeeLiquid = "#6B4423"

func countColor(c *Canvas, color string) int {
	n := 0
	for row := 0; row < c.Height(); row++ {
		for col := 0; col < c.Width(); col++ {
			if c.At(col, row).Color == color {
				n++
			}
		}
	}
	return n
}

func band(y, h float64) scheme.Scene {
	return scheme.Scene{
		Shapes: []scheme.Shape{{
			Name: "band", Kind: scheme.Rect, X: 0, Y: y, W: scheme.ViewBox, H: h,
			Color: "#FFFFFF", Texture: scheme.Solid, Opacity: 1,
		}},
	}
}

func TestDrawCoffeeTracksFill(t *testing.T) {
	empty := Draw(scheme.Render(theme.Coffee, scheme.Frame{Fill: 0}), scheme.RestPose(), 0, 40, 20)
	half := Draw(scheme.Render(theme.Coffee, scheme.Frame{Fill: 0.5}), scheme.RestPose(), 0, 40, 20)
	full := Draw(scheme.Render(theme.Coffee, scheme.Frame{Fill: 1}), scheme.RestPose(), 0, 40, 20)

	assert.Zero(t, countColor(empty, coffeeLiquid), "empty mug shows no coffee")
	assert.Greater(t, countColor(half, coffeeLiquid), 0)
	assert.Greater(t, countColor(full, coffeeLiquid), countColor(half, coffeeLiquid))
	assert.Greater(t, empty.Painted(), 0, "the mug outline is always drawn")
}

func TestDrawEveryScheme(t *testing.T) {
	for _, s := range scheme.All() {
		t.Run(string(s.ID()), func(t *testing.T) {
			sc := s.Render(scheme.Frame{Fill: 0.6})
			c := Draw(sc, sc.Pose, 0, 48, HeightFor(48))
			assert.Greater(t, c.Painted(), 0)
			assert.Len(t, strings.Split(c.String(), "\n"), 24)
		})
	}
}

func TestPoseOpacityHidesScene(t *testing.T) {
	pose := scheme.RestPose()
	pose.Opacity = 0
	c := Draw(band(0, 100), pose, 0, 20, 10)
	assert.Zero(t, c.Painted())
}

func TestPoseRotationFlipsScene(t *testing.T) {
	upright := Draw(band(0, 50), scheme.RestPose(), 0, 20, 10)
	assert.Equal(t, '█', upright.At(10, 0).Glyph)
	assert.Equal(t, ' ', upright.At(10, 9).Glyph)

	flipped := scheme.RestPose()
	flipped.Rotate = 180
	c := Draw(band(0, 50), flipped, 0, 20, 10)
	assert.Equal(t, ' ', c.At(10, 0).Glyph)
	assert.Equal(t, '█', c.At(10, 9).Glyph)
}

func TestPoseOffsetMovesScene(t *testing.T) {
	pose := scheme.RestPose()
	pose.OffsetY = 100
	c := Draw(band(0, 50), pose, 0, 20, 10)
	assert.Equal(t, ' ', c.At(10, 0).Glyph)
	assert.Equal(t, '█', c.At(10, 6).Glyph)
}

func TestFaintShapesDegrade(t *testing.T) {
	sc := band(0, 200)
	sc.Shapes[0].Opacity = 0.4
	c := Draw(sc, scheme.RestPose(), 0, 4, 2)
	assert.Equal(t, '▓', c.At(0, 0).Glyph)

	sc.Shapes[0].Opacity = 0.1
	c = Draw(sc, scheme.RestPose(), 0, 4, 2)
	assert.Zero(t, c.Painted())
}

func TestTinyShapesStillShow(t *testing.T) {
	sc := scheme.Scene{Shapes: []scheme.Shape{{
		Name: "dot", Kind: scheme.Ellipse, CX: 101, CY: 101, RX: 0.5, RY: 0.5,
		Color: "#F59E0B", Texture: scheme.Dots, Opacity: 1,
	}}}
	c := Draw(sc, scheme.RestPose(), 0, 10, 5)
	require.Equal(t, 1, c.Painted())
	assert.Equal(t, '•', c.At(5, 2).Glyph)
}

func TestStrokeGlyphs(t *testing.T) {
	assert.Equal(t, '─', strokeGlyph(scheme.Outline, 1, 0))
	assert.Equal(t, '│', strokeGlyph(scheme.Outline, 0, 1))
	assert.Equal(t, '╲', strokeGlyph(scheme.Outline, 1, 1))
	assert.Equal(t, '╱', strokeGlyph(scheme.Outline, 1, -1))
	assert.Equal(t, '~', strokeGlyph(scheme.Wave, 0, 1))
}

func TestRenderKeepsLayout(t *testing.T) {
	c := Draw(band(0, 100), scheme.RestPose(), 0, 12, 6)
	out := ansi.Strip(c.Render("#FFFBEB"))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "████")
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "    Focus Session", Caption("Focus Session", 21))
	got := Caption("Choose your vibe, stay focused", 10)
	assert.LessOrEqual(t, ansi.StringWidth(got), 10)
	assert.Contains(t, got, "…")
	assert.Empty(t, Caption("x", 0))
}
