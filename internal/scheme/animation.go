package scheme

import (
	"fmt"
	"math"
	"time"
)

// Property is the shape attribute an animation drives.
type Property uint8

const (
	Opacity Property = iota
	OffsetX
	OffsetY
	Scale
	RadiusX
	RadiusY
	Rotate
)

var propertyNames = [...]string{"opacity", "offset_x", "offset_y", "scale", "radius_x", "radius_y", "rotate"}

func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return fmt.Sprintf("property(%d)", p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Property) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Ease is a timing curve applied between keyframes.
type Ease uint8

const (
	Linear Ease = iota
	EaseInOut
	EaseOut
)

var easeNames = [...]string{"linear", "ease_in_out", "ease_out"}

func (e Ease) String() string {
	if int(e) < len(easeNames) {
		return easeNames[e]
	}
	return fmt.Sprintf("ease(%d)", e)
}

// MarshalText implements encoding.TextMarshaler.
func (e Ease) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Apply maps linear progress t in [0,1] onto the curve.
func (e Ease) Apply(t float64) float64 {
	t = clamp01(t)
	switch e {
	case EaseInOut:
		return t * t * (3 - 2*t)
	case EaseOut:
		return 1 - (1-t)*(1-t)
	default:
		return t
	}
}

// Animation is a keyframe loop. Keyframes are spread evenly over Period.
type Animation struct {
	Property  Property      `json:"property" yaml:"property"`
	Keyframes []float64     `json:"keyframes" yaml:"keyframes"`
	Period    time.Duration `json:"period" yaml:"period"`
	Delay     time.Duration `json:"delay,omitempty" yaml:"delay,omitempty"`
	Ease      Ease          `json:"ease" yaml:"ease"`
	// Pivot is the rotation center; nil rotates about the shape's bounds.
	Pivot *Point `json:"pivot,omitempty" yaml:"pivot,omitempty"`
}

func loop(p Property, period time.Duration, ease Ease, keyframes ...float64) Animation {
	return Animation{Property: p, Keyframes: keyframes, Period: period, Ease: ease}
}

func (a Animation) after(d time.Duration) Animation {
	a.Delay = d
	return a
}

func (a Animation) around(x, y float64) Animation {
	a.Pivot = &Point{X: x, Y: y}
	return a
}

// Sample evaluates the loop at clock. Before Delay it holds the first
// keyframe.
func (a Animation) Sample(clock time.Duration) float64 {
	n := len(a.Keyframes)
	switch {
	case n == 0:
		return 0
	case n == 1 || a.Period <= 0:
		return a.Keyframes[0]
	}
	t := clock - a.Delay
	if t <= 0 {
		return a.Keyframes[0]
	}
	phase := float64(t%a.Period) / float64(a.Period)
	pos := phase * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return a.Keyframes[n-1]
	}
	return lerp(a.Keyframes[i], a.Keyframes[i+1], a.Ease.Apply(pos-float64(i)))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// jitter returns a stable pseudo-random value in [0,1) for particle i.
// Scenes must be reproducible, so particles never use a real RNG.
func jitter(i, salt int) float64 {
	x := uint64(i)*0x9E3779B97F4A7C15 + uint64(salt)*0xBF58476D1CE4E5B9
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return float64(x>>11) / float64(1<<53)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
