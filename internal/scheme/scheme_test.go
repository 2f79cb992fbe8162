package scheme

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/vessel-cli/internal/theme"
)

// tracked returns the quantity the primary fill region follows. The plant
// grows while focus drains, so it is inverted outside breaks.
func tracked(id theme.ID, fill float64, isBreak bool) float64 {
	if id == theme.Plant && !isBreak {
		return 1 - fill
	}
	return fill
}

func TestRegistryCoversCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, 7)
	for i, id := range theme.IDs() {
		assert.Equal(t, id, all[i].ID())
		assert.Equal(t, id, For(id).ID())
	}
	assert.Equal(t, theme.Coffee, For("lava-lamp").ID())
	assert.Equal(t, theme.Coffee, Render("", Frame{Fill: 0.5}).Scheme)
}

func TestFillRegionEndpoints(t *testing.T) {
	for _, s := range All() {
		for _, isBreak := range []bool{false, true} {
			s, isBreak := s, isBreak
			t.Run(string(s.ID()), func(t *testing.T) {
				empty, full := 0.0, 1.0
				if tracked(s.ID(), 0, isBreak) == 1 {
					empty, full = 1.0, 0.0
				}

				r := s.Render(Frame{Fill: empty, Break: isBreak}).Primary()
				assert.True(t, r.Empty(), "region at empty should have zero extent, got %v", r.Height)
				assert.Equal(t, r.Baseline, r.Y)

				r = s.Render(Frame{Fill: full, Break: isBreak}).Primary()
				assert.Equal(t, r.Capacity, r.Height)
				assert.Equal(t, r.Baseline-r.Capacity, r.Y)
			})
		}
	}
}

func TestFillRegionIsLinear(t *testing.T) {
	for _, s := range All() {
		for _, fill := range []float64{0.1, 0.25, 0.5, 0.8} {
			r := s.Render(Frame{Fill: fill, Break: true}).Primary()
			want := tracked(s.ID(), fill, true) * r.Capacity
			assert.InDelta(t, want, r.Height, 1e-9, "%s at %v", s.ID(), fill)
			assert.InDelta(t, r.Baseline-want, r.Y, 1e-9, "%s at %v", s.ID(), fill)
		}
	}
}

func TestFillRegionIsIdempotentAcrossClock(t *testing.T) {
	for _, s := range All() {
		a := s.Render(Frame{Fill: 0.42, Clock: 0})
		b := s.Render(Frame{Fill: 0.42, Clock: 0})
		c := s.Render(Frame{Fill: 0.42, Clock: 7*time.Second + 300*time.Millisecond})
		assert.Equal(t, a, b, s.ID())
		assert.Equal(t, a.Fills, c.Fills, s.ID())
	}
}

func TestFillRegionIsMonotonic(t *testing.T) {
	for _, s := range All() {
		for _, isBreak := range []bool{false, true} {
			prev := math.Inf(-1)
			if tracked(s.ID(), 1, isBreak) == 0 {
				prev = math.Inf(1)
			}
			for i := 0; i <= 100; i++ {
				h := s.Render(Frame{Fill: float64(i) / 100, Break: isBreak}).Primary().Height
				if tracked(s.ID(), 1, isBreak) == 0 {
					assert.LessOrEqual(t, h, prev, "%s break=%v step %d", s.ID(), isBreak, i)
				} else {
					assert.GreaterOrEqual(t, h, prev, "%s break=%v step %d", s.ID(), isBreak, i)
				}
				prev = h
			}
		}
	}
}

func TestOutOfRangeFillIsClamped(t *testing.T) {
	for _, s := range All() {
		assert.Equal(t, s.Render(Frame{Fill: 0}).Fills, s.Render(Frame{Fill: -0.4}).Fills, s.ID())
		assert.Equal(t, s.Render(Frame{Fill: 1}).Fills, s.Render(Frame{Fill: 1.7}).Fills, s.ID())
		assert.Equal(t, s.Render(Frame{Fill: 0}).Fills, s.Render(Frame{Fill: math.NaN()}).Fills, s.ID())
		for _, r := range s.Render(Frame{Fill: 3}).Fills {
			assert.GreaterOrEqual(t, r.Height, 0.0)
			assert.LessOrEqual(t, r.Height, r.Capacity)
		}
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		id          theme.ID
		focus, rest string
	}{
		{theme.Coffee, "Focus Time", "Refueling..."},
		{theme.Battery, "Power Draining", "Recharging..."},
		{theme.Rocket, "Burning Fuel", "Refueling..."},
		{theme.Candle, "Burning Bright", "Relighting..."},
		{theme.Plant, "Growing Strong", "Swaying Gently"},
		{theme.Water, "Hydrating", "Refilling..."},
		{theme.Sand, "Time Flowing", "Break Flow"},
	}
	for _, tt := range tests {
		for _, fill := range []float64{0, 0.5, 1} {
			assert.Equal(t, tt.focus, Render(tt.id, Frame{Fill: fill}).Label)
			assert.Equal(t, tt.rest, Render(tt.id, Frame{Fill: fill, Break: true}).Label)
		}
	}
}

func TestCoffeeGates(t *testing.T) {
	tests := []struct {
		fill    float64
		isBreak bool
		want    []string
	}{
		{0, false, nil},
		{0.1, false, nil},
		{0.15, false, []string{"foam"}},
		{0.25, false, []string{"foam", "bubbles"}},
		{0.31, false, []string{"foam", "bubbles", "steam"}},
		{0.9, true, []string{"foam", "bubbles"}},
	}
	for _, tt := range tests {
		sc := Render(theme.Coffee, Frame{Fill: tt.fill, Break: tt.isBreak})
		assert.Equal(t, tt.want, nilIfEmpty(sc.EffectNames()), "fill %v break %v", tt.fill, tt.isBreak)
	}
}

func TestBatteryChargeColorAndCaption(t *testing.T) {
	tests := []struct {
		fill    float64
		color   string
		caption string
	}{
		{1, "#10B981", "100%"},
		{0.51, "#10B981", "51%"},
		{0.5, "#F59E0B", "50%"},
		{0.21, "#F59E0B", "21%"},
		{0.2, "#EF4444", "20%"},
		{0.004, "#EF4444", "0%"},
	}
	for _, tt := range tests {
		sc := Render(theme.Battery, Frame{Fill: tt.fill})
		assert.Equal(t, tt.caption, sc.Caption)
		var got string
		for _, sh := range sc.Shapes {
			if sh.Name == "charge" {
				got = sh.Color
			}
		}
		assert.Equal(t, tt.color, got, "fill %v", tt.fill)
	}
}

func TestBatteryEffects(t *testing.T) {
	// Focus drains: glow intensity is 1-fill.
	assert.True(t, Render(theme.Battery, Frame{Fill: 0.25}).HasEffect("glow"))
	assert.False(t, Render(theme.Battery, Frame{Fill: 0.35}).HasEffect("glow"))
	// Break charges: glow intensity is fill.
	assert.True(t, Render(theme.Battery, Frame{Fill: 0.75, Break: true}).HasEffect("glow"))
	assert.False(t, Render(theme.Battery, Frame{Fill: 0.7, Break: true}).HasEffect("glow"))

	assert.True(t, Render(theme.Battery, Frame{Fill: 0.1}).HasEffect("low-charge"))
	assert.False(t, Render(theme.Battery, Frame{Fill: 0.1, Break: true}).HasEffect("low-charge"))
	assert.False(t, Render(theme.Battery, Frame{Fill: 0.2}).HasEffect("low-charge"))

	assert.True(t, Render(theme.Battery, Frame{Fill: 0.5, Break: true}).HasEffect("bolt"))
	assert.False(t, Render(theme.Battery, Frame{Fill: 0.5}).HasEffect("bolt"))
}

func TestRocketFlameAndLaunch(t *testing.T) {
	sc := Render(theme.Rocket, Frame{Fill: 0})
	assert.False(t, sc.HasEffect("flame"))
	assert.False(t, sc.HasEffect("exhaust"))
	assert.Equal(t, -80.0, sc.Pose.OffsetY)
	assert.Equal(t, 0.0, sc.Pose.Opacity)

	sc = Render(theme.Rocket, Frame{Fill: 0, Break: true})
	assert.True(t, sc.Pose.Equal(RestPose()))

	sc = Render(theme.Rocket, Frame{Fill: 0.5})
	require.True(t, sc.HasEffect("flame"))
	flame, _ := sc.Effect("flame")
	assert.InDelta(t, 0.65, flame.Shapes[0].Opacity, 1e-9)
	exhaust, _ := sc.Effect("exhaust")
	assert.Len(t, exhaust.Shapes, 12)
	assert.True(t, sc.Pose.Equal(RestPose()))
}

func TestCandleGates(t *testing.T) {
	assert.Equal(t, []string{"drips"}, Render(theme.Candle, Frame{Fill: 0}).EffectNames())
	assert.Equal(t, []string{"drips", "flame"}, Render(theme.Candle, Frame{Fill: 0.5}).EffectNames())
	assert.Equal(t, []string{"flame"}, Render(theme.Candle, Frame{Fill: 0.8}).EffectNames())
}

func TestPlantStagesAppearAtBoundaries(t *testing.T) {
	tests := []struct {
		growth float64
		want   []string
	}{
		{0.1, nil},
		{0.1001, []string{"stem"}},
		{0.3, []string{"stem"}},
		{0.3001, []string{"stem", "leaves-lower"}},
		{0.5, []string{"stem", "leaves-lower"}},
		{0.5001, []string{"stem", "leaves-lower", "leaves-upper"}},
		{0.8, []string{"stem", "leaves-lower", "leaves-upper"}},
		{0.8001, []string{"stem", "leaves-lower", "leaves-upper", "flower"}},
	}
	for _, tt := range tests {
		// During a break growth equals fill.
		got := Render(theme.Plant, Frame{Fill: tt.growth, Break: true}).EffectNames()
		assert.Equal(t, tt.want, nilIfEmpty(got), "growth %v", tt.growth)
	}
}

func TestPlantStagesAreAdditive(t *testing.T) {
	seen := map[string]bool{}
	// A focus pass: fill drains from 1 to 0, growth rises.
	for i := 1000; i >= 0; i-- {
		sc := Render(theme.Plant, Frame{Fill: float64(i) / 1000})
		for name := range seen {
			assert.True(t, sc.HasEffect(name), "%s vanished at fill %v", name, float64(i)/1000)
		}
		for _, name := range sc.EffectNames() {
			seen[name] = true
		}
	}
	assert.Len(t, seen, 4)
}

func TestPlantSwaysOnlyOnBreak(t *testing.T) {
	// Both frames sit at growth 0.9.
	stem, ok := Render(theme.Plant, Frame{Fill: 0.1}).Effect("stem")
	require.True(t, ok)
	assert.Empty(t, stem.Shapes[0].Animations)

	stem, ok = Render(theme.Plant, Frame{Fill: 0.9, Break: true}).Effect("stem")
	require.True(t, ok)
	assert.NotEmpty(t, stem.Shapes[0].Animations)
}

func TestPlantFlowerSitsOnStemTip(t *testing.T) {
	sc := Render(theme.Plant, Frame{Fill: 1, Break: true})
	flower, ok := sc.Effect("flower")
	require.True(t, ok)
	center := flower.Shapes[len(flower.Shapes)-1]
	assert.Equal(t, "flower-center", center.Name)
	assert.Equal(t, sc.Primary().Y, center.CY)
	assert.Len(t, flower.Shapes, 6)
}

func TestWaterGates(t *testing.T) {
	assert.Equal(t, []string{"glint"}, Render(theme.Water, Frame{Fill: 0}).EffectNames())
	assert.Equal(t, []string{"glint", "ripple", "bubbles"}, Render(theme.Water, Frame{Fill: 0.5}).EffectNames())
	assert.Equal(t, []string{"glint", "ripple", "bubbles", "drip"}, Render(theme.Water, Frame{Fill: 0.5, Break: true}).EffectNames())
	assert.Equal(t, []string{"glint", "ripple", "bubbles"}, Render(theme.Water, Frame{Fill: 1, Break: true}).EffectNames())
}

func TestHourglassBulbsAreComplementary(t *testing.T) {
	for i := 0; i <= 20; i++ {
		sc := Render(theme.Sand, Frame{Fill: float64(i) / 20})
		top, ok := sc.Region("top")
		require.True(t, ok)
		bottom, ok := sc.Region("bottom")
		require.True(t, ok)
		assert.InDelta(t, bulbDepth, top.Height+bottom.Height, 1e-9)
		assert.Equal(t, top, sc.Primary())
	}
}

func TestHourglassFlipOnlyNearEnds(t *testing.T) {
	for _, fill := range []float64{0, 0.001, 0.0099, 0.9901, 0.999, 1} {
		assert.Equal(t, FlipDegrees, Render(theme.Sand, Frame{Fill: fill}).Pose.Rotate, "fill %v", fill)
		assert.True(t, Flipping(fill))
	}
	for i := 2; i <= 98; i++ {
		fill := float64(i) / 100
		sc := Render(theme.Sand, Frame{Fill: fill, Break: i%2 == 0})
		assert.Zero(t, sc.Pose.Rotate, "fill %v", fill)
	}
	assert.Equal(t, time.Second, Render(theme.Sand, Frame{Fill: 0}).Pose.Duration)
}

func TestHourglassGrains(t *testing.T) {
	assert.False(t, Render(theme.Sand, Frame{Fill: 0.05}).HasEffect("grains"))
	sc := Render(theme.Sand, Frame{Fill: 0.06})
	grains, ok := sc.Effect("grains")
	require.True(t, ok)
	assert.Len(t, grains.Shapes, grainCount)
}

func TestResolvePaintsBackEffectsFirst(t *testing.T) {
	sc := Render(theme.Rocket, Frame{Fill: 0.5})
	shapes := sc.Resolve(0)
	require.NotEmpty(t, shapes)
	assert.Equal(t, "flame-outer", shapes[0].Name)
	assert.Equal(t, "ember", shapes[len(shapes)-1].Name)
	for _, sh := range shapes {
		assert.Empty(t, sh.Animations)
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
