package scheme

import (
	"fmt"
	"math"
	"time"
)

// Point is a coordinate in view box units.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Kind is the geometric primitive of a shape.
type Kind uint8

const (
	Rect Kind = iota
	Ellipse
	Polygon
	Polyline
)

var kindNames = [...]string{"rect", "ellipse", "polygon", "polyline"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Texture hints how a character-cell presenter should paint a shape.
type Texture uint8

const (
	Solid Texture = iota
	Dense
	Medium
	Light
	Outline
	Dots
	Sparkle
	Wave
)

var textureNames = [...]string{"solid", "dense", "medium", "light", "outline", "dots", "sparkle", "wave"}

func (t Texture) String() string {
	if int(t) < len(textureNames) {
		return textureNames[t]
	}
	return fmt.Sprintf("texture(%d)", t)
}

// MarshalText implements encoding.TextMarshaler.
func (t Texture) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Stroked reports whether the texture paints only the shape's edge.
func (t Texture) Stroked() bool {
	return t == Outline || t == Wave
}

func (l Layer) String() string {
	if l == Back {
		return "back"
	}
	return "front"
}

// MarshalText implements encoding.TextMarshaler.
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Shape is one drawable primitive. Rect uses X, Y, W, H; Ellipse uses
// CX, CY, RX, RY; Polygon and Polyline use Points.
type Shape struct {
	Name       string      `json:"name" yaml:"name"`
	Kind       Kind        `json:"kind" yaml:"kind"`
	X          float64     `json:"x,omitempty" yaml:"x,omitempty"`
	Y          float64     `json:"y,omitempty" yaml:"y,omitempty"`
	W          float64     `json:"w,omitempty" yaml:"w,omitempty"`
	H          float64     `json:"h,omitempty" yaml:"h,omitempty"`
	CX         float64     `json:"cx,omitempty" yaml:"cx,omitempty"`
	CY         float64     `json:"cy,omitempty" yaml:"cy,omitempty"`
	RX         float64     `json:"rx,omitempty" yaml:"rx,omitempty"`
	RY         float64     `json:"ry,omitempty" yaml:"ry,omitempty"`
	Points     []Point     `json:"points,omitempty" yaml:"points,omitempty"`
	Clip       []Point     `json:"clip,omitempty" yaml:"clip,omitempty"`
	Color      string      `json:"color" yaml:"color"`
	Texture    Texture     `json:"texture" yaml:"texture"`
	Opacity    float64     `json:"opacity" yaml:"opacity"`
	Animations []Animation `json:"animations,omitempty" yaml:"animations,omitempty"`
}

func rect(name string, x, y, w, h float64, color string, tex Texture) Shape {
	return Shape{Name: name, Kind: Rect, X: x, Y: y, W: w, H: h, Color: color, Texture: tex, Opacity: 1}
}

func ellipse(name string, cx, cy, rx, ry float64, color string, tex Texture) Shape {
	return Shape{Name: name, Kind: Ellipse, CX: cx, CY: cy, RX: rx, RY: ry, Color: color, Texture: tex, Opacity: 1}
}

func circle(name string, cx, cy, r float64, color string, tex Texture) Shape {
	return ellipse(name, cx, cy, r, r, color, tex)
}

func polygon(name, color string, tex Texture, pts ...Point) Shape {
	return Shape{Name: name, Kind: Polygon, Points: pts, Color: color, Texture: tex, Opacity: 1}
}

func polyline(name, color string, tex Texture, pts ...Point) Shape {
	return Shape{Name: name, Kind: Polyline, Points: pts, Color: color, Texture: tex, Opacity: 1}
}

func (s Shape) withOpacity(o float64) Shape {
	s.Opacity = o
	return s
}

func (s Shape) clipped(pts []Point) Shape {
	s.Clip = pts
	return s
}

func (s Shape) animate(anims ...Animation) Shape {
	s.Animations = append(append([]Animation(nil), s.Animations...), anims...)
	return s
}

// At returns the shape with its animations evaluated at clock.
func (s Shape) At(clock time.Duration) Shape {
	out := s
	out.Animations = nil
	for _, a := range s.Animations {
		v := a.Sample(clock)
		switch a.Property {
		case Opacity:
			out.Opacity = v
		case OffsetX:
			out = out.Translate(v, 0)
		case OffsetY:
			out = out.Translate(0, v)
		case Scale:
			out = out.ScaleBy(v)
		case RadiusX:
			out.RX = v
		case RadiusY:
			out.RY = v
		case Rotate:
			pivot := out.Center()
			if a.Pivot != nil {
				pivot = *a.Pivot
			}
			out = out.RotateBy(v, pivot)
		}
	}
	return out
}

// Translate moves the shape. The clip path stays where it is.
func (s Shape) Translate(dx, dy float64) Shape {
	s.X += dx
	s.Y += dy
	s.CX += dx
	s.CY += dy
	s.Points = mapPoints(s.Points, func(p Point) Point {
		return Point{X: p.X + dx, Y: p.Y + dy}
	})
	return s
}

// ScaleBy scales the shape about its center.
func (s Shape) ScaleBy(k float64) Shape {
	c := s.Center()
	switch s.Kind {
	case Rect:
		s.W *= k
		s.H *= k
		s.X = c.X - s.W/2
		s.Y = c.Y - s.H/2
	case Ellipse:
		s.RX *= k
		s.RY *= k
	default:
		s.Points = mapPoints(s.Points, func(p Point) Point {
			return Point{X: c.X + (p.X-c.X)*k, Y: c.Y + (p.Y-c.Y)*k}
		})
	}
	return s
}

// RotateBy rotates the shape by deg degrees about pivot. Rects become
// polygons; ellipses keep their axes and only move their center.
func (s Shape) RotateBy(deg float64, pivot Point) Shape {
	if deg == 0 {
		return s
	}
	rot := func(p Point) Point { return rotatePoint(p, pivot, deg) }
	switch s.Kind {
	case Rect:
		s.Kind = Polygon
		s.Points = []Point{
			rot(Point{s.X, s.Y}),
			rot(Point{s.X + s.W, s.Y}),
			rot(Point{s.X + s.W, s.Y + s.H}),
			rot(Point{s.X, s.Y + s.H}),
		}
		s.X, s.Y, s.W, s.H = 0, 0, 0, 0
	case Ellipse:
		c := rot(Point{s.CX, s.CY})
		s.CX, s.CY = c.X, c.Y
	default:
		s.Points = mapPoints(s.Points, rot)
	}
	return s
}

// Center returns the middle of the shape's bounds.
func (s Shape) Center() Point {
	min, max := s.Bounds()
	return Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}
}

// Bounds returns the axis-aligned bounding box.
func (s Shape) Bounds() (min, max Point) {
	switch s.Kind {
	case Rect:
		return Point{s.X, s.Y}, Point{s.X + s.W, s.Y + s.H}
	case Ellipse:
		return Point{s.CX - s.RX, s.CY - s.RY}, Point{s.CX + s.RX, s.CY + s.RY}
	}
	if len(s.Points) == 0 {
		return Point{}, Point{}
	}
	min, max = s.Points[0], s.Points[0]
	for _, p := range s.Points[1:] {
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	return min, max
}

// Contains reports whether p lies inside the shape's area and clip path.
// Polylines have no area.
func (s Shape) Contains(p Point) bool {
	if len(s.Clip) > 2 && !insidePolygon(s.Clip, p) {
		return false
	}
	switch s.Kind {
	case Rect:
		return s.W > 0 && s.H > 0 && p.X >= s.X && p.X <= s.X+s.W && p.Y >= s.Y && p.Y <= s.Y+s.H
	case Ellipse:
		if s.RX <= 0 || s.RY <= 0 {
			return false
		}
		dx, dy := (p.X-s.CX)/s.RX, (p.Y-s.CY)/s.RY
		return dx*dx+dy*dy <= 1
	case Polygon:
		return insidePolygon(s.Points, p)
	}
	return false
}

// Edge returns the outline as a closed or open list of vertices suitable
// for stroking.
func (s Shape) Edge() []Point {
	switch s.Kind {
	case Rect:
		return []Point{{s.X, s.Y}, {s.X + s.W, s.Y}, {s.X + s.W, s.Y + s.H}, {s.X, s.Y + s.H}, {s.X, s.Y}}
	case Ellipse:
		const steps = 48
		pts := make([]Point, steps+1)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / steps
			pts[i] = Point{s.CX + s.RX*math.Cos(a), s.CY + s.RY*math.Sin(a)}
		}
		return pts
	case Polygon:
		if len(s.Points) == 0 {
			return nil
		}
		return append(append([]Point(nil), s.Points...), s.Points[0])
	}
	return s.Points
}

func insidePolygon(poly []Point, p Point) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func rotatePoint(p, pivot Point, deg float64) Point {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	return Point{X: pivot.X + dx*cos - dy*sin, Y: pivot.Y + dx*sin + dy*cos}
}

// RotatePoint rotates p by deg degrees about pivot.
func RotatePoint(p, pivot Point, deg float64) Point {
	return rotatePoint(p, pivot, deg)
}

func mapPoints(pts []Point, f func(Point) Point) []Point {
	if pts == nil {
		return nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = f(p)
	}
	return out
}

// quad samples a quadratic Bezier curve from p0 to p2.
func quad(p0, ctrl, p2 Point, steps int) []Point {
	pts := make([]Point, steps+1)
	for i := range pts {
		t := float64(i) / float64(steps)
		u := 1 - t
		pts[i] = Point{
			X: u*u*p0.X + 2*u*t*ctrl.X + t*t*p2.X,
			Y: u*u*p0.Y + 2*u*t*ctrl.Y + t*t*p2.Y,
		}
	}
	return pts
}
