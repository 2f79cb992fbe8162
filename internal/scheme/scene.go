package scheme

import (
	"time"

	"github.com/xvierd/vessel-cli/internal/theme"
)

// ViewBox is the side length of the square coordinate space every scene
// is drawn in. Y grows downward.
const ViewBox = 200.0

// Frame is the input to a renderer.
type Frame struct {
	Fill  float64
	Break bool
	// Clock is free-running elapsed time that drives idle loops only.
	Clock time.Duration
}

// Layer decides whether an effect is drawn behind or in front of the
// vessel shapes.
type Layer uint8

const (
	Front Layer = iota
	Back
)

// Effect is a named, threshold-gated group of decorative shapes. An effect
// is present in a Scene only while its gate is open.
type Effect struct {
	Name   string  `json:"name" yaml:"name"`
	Layer  Layer   `json:"layer" yaml:"layer"`
	Shapes []Shape `json:"shapes" yaml:"shapes"`
}

// FillRegion is the structural fill geometry: a rectangle whose height is
// an affine function of the tracked quantity.
type FillRegion struct {
	Name     string  `json:"name" yaml:"name"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Baseline float64 `json:"baseline" yaml:"baseline"`
	Capacity float64 `json:"capacity" yaml:"capacity"`
}

// verticalFill builds a region rising from baseline by level*capacity.
func verticalFill(name string, x, width, baseline, capacity, level float64) FillRegion {
	h := level * capacity
	return FillRegion{
		Name:     name,
		X:        x,
		Y:        baseline - h,
		Width:    width,
		Height:   h,
		Baseline: baseline,
		Capacity: capacity,
	}
}

// Level returns the filled share of the region's capacity.
func (r FillRegion) Level() float64 {
	if r.Capacity <= 0 {
		return 0
	}
	return r.Height / r.Capacity
}

// Empty reports whether the region has zero extent.
func (r FillRegion) Empty() bool {
	return r.Height <= 0
}

// Shape returns the region as a drawable rectangle.
func (r FillRegion) Shape(color string, tex Texture) Shape {
	return rect(r.Name, r.X, r.Y, r.Width, r.Height, color, tex)
}

// Pose is a whole-scene transform that presenters ease toward over
// Duration whenever it changes.
type Pose struct {
	Rotate   float64       `json:"rotate" yaml:"rotate"`
	OffsetY  float64       `json:"offset_y" yaml:"offset_y"`
	Opacity  float64       `json:"opacity" yaml:"opacity"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Ease     Ease          `json:"ease" yaml:"ease"`
}

// RestPose is upright, in place and fully visible.
func RestPose() Pose {
	return Pose{Opacity: 1}
}

// Lerp interpolates from p toward to. t is clamped to [0,1] and passed
// through to's easing curve.
func (p Pose) Lerp(to Pose, t float64) Pose {
	t = to.Ease.Apply(clamp01(t))
	return Pose{
		Rotate:   lerp(p.Rotate, to.Rotate, t),
		OffsetY:  lerp(p.OffsetY, to.OffsetY, t),
		Opacity:  lerp(p.Opacity, to.Opacity, t),
		Duration: to.Duration,
		Ease:     to.Ease,
	}
}

// Equal compares the transform targets, ignoring timing.
func (p Pose) Equal(o Pose) bool {
	return p.Rotate == o.Rotate && p.OffsetY == o.OffsetY && p.Opacity == o.Opacity
}

// Scene is the full description of one rendered frame.
type Scene struct {
	Scheme  theme.ID     `json:"scheme" yaml:"scheme"`
	Label   string       `json:"label" yaml:"label"`
	Caption string       `json:"caption,omitempty" yaml:"caption,omitempty"`
	Fill    float64      `json:"fill" yaml:"fill"`
	Break   bool         `json:"break" yaml:"break"`
	Fills   []FillRegion `json:"fills" yaml:"fills"`
	Shapes  []Shape      `json:"shapes" yaml:"shapes"`
	Effects []Effect     `json:"effects,omitempty" yaml:"effects,omitempty"`
	Pose    Pose         `json:"pose" yaml:"pose"`
}

func newScene(id theme.ID, f Frame, focusLabel, breakLabel string) Scene {
	label := focusLabel
	if f.Break {
		label = breakLabel
	}
	return Scene{
		Scheme: id,
		Label:  label,
		Fill:   f.Fill,
		Break:  f.Break,
		Pose:   RestPose(),
	}
}

// Primary returns the region that tracks the scheme's main quantity.
func (s Scene) Primary() FillRegion {
	if len(s.Fills) == 0 {
		return FillRegion{}
	}
	return s.Fills[0]
}

// Region returns the fill region with the given name.
func (s Scene) Region(name string) (FillRegion, bool) {
	for _, r := range s.Fills {
		if r.Name == name {
			return r, true
		}
	}
	return FillRegion{}, false
}

// Effect returns the effect with the given name.
func (s Scene) Effect(name string) (Effect, bool) {
	for _, e := range s.Effects {
		if e.Name == name {
			return e, true
		}
	}
	return Effect{}, false
}

// HasEffect reports whether the named effect's gate is open.
func (s Scene) HasEffect(name string) bool {
	_, ok := s.Effect(name)
	return ok
}

// EffectNames lists the open effects in draw order.
func (s Scene) EffectNames() []string {
	names := make([]string, len(s.Effects))
	for i, e := range s.Effects {
		names[i] = e.Name
	}
	return names
}

func (s *Scene) add(layer Layer, name string, shapes ...Shape) {
	s.Effects = append(s.Effects, Effect{Name: name, Layer: layer, Shapes: shapes})
}

// Resolve returns every shape in paint order with idle animations
// evaluated at clock: back effects, vessel shapes, then front effects.
func (s Scene) Resolve(clock time.Duration) []Shape {
	var out []Shape
	for _, e := range s.Effects {
		if e.Layer == Back {
			out = appendAt(out, e.Shapes, clock)
		}
	}
	out = appendAt(out, s.Shapes, clock)
	for _, e := range s.Effects {
		if e.Layer == Front {
			out = appendAt(out, e.Shapes, clock)
		}
	}
	return out
}

func appendAt(dst, shapes []Shape, clock time.Duration) []Shape {
	for _, sh := range shapes {
		dst = append(dst, sh.At(clock))
	}
	return dst
}
