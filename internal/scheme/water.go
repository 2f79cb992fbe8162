package scheme

import (
	"time"

	"github.com/xvierd/vessel-cli/internal/theme"
)

const (
	waterCapacity = 118.0
	waterBaseline = 168.0
)

var glassBody = []Point{{65, 50}, {135, 50}, {130, 170}, {70, 170}}

type waterGlass struct{}

func (waterGlass) ID() theme.ID { return theme.Water }

func (waterGlass) Render(f Frame) Scene {
	f = normalize(f)
	sc := newScene(theme.Water, f, "Hydrating", "Refilling...")

	water := verticalFill("water", 65, 70, waterBaseline, waterCapacity, f.Fill)
	level := water.Y
	sc.Fills = []FillRegion{water}

	sc.Shapes = []Shape{
		ellipse("shadow", 100, 175, 35, 6, "#3B82F6", Light).withOpacity(0.2),
		polygon("glass", "#6366F1", Outline, glassBody...).withOpacity(0.6),
		water.Shape("#3B82F6", Dense).clipped(glassBody),
		ellipse("rim", 100, 50, 35, 6, "#6366F1", Outline).withOpacity(0.6),
	}

	sc.add(Front, "glint", polyline("glint", "#E0E7FF", Outline, Point{68, 80}, Point{66, 85}, Point{68, 90}).
		withOpacity(0.7).
		animate(loop(Opacity, 2*time.Second, Linear, 0.5, 0.9, 0.5)))

	if f.Fill > 0 {
		sc.add(Front, "ripple", ellipse("surface", 100, level, 32, 6, "#60A5FA", Medium).
			withOpacity(0.5).
			clipped(glassBody).
			animate(
				loop(RadiusY, 2*time.Second, EaseInOut, 6, 7, 6),
				loop(Opacity, 2*time.Second, EaseInOut, 0.5, 0.7, 0.5),
			))
		sc.add(Front, "bubbles",
			ellipse("bubble", 85, level+8, 4, 6, "#E0F2FE", Dots).withOpacity(0.6).clipped(glassBody).
				animate(loop(OffsetY, 3*time.Second, EaseInOut, 0, -5, 0)),
			ellipse("bubble", 110, level+13, 3, 5, "#E0F2FE", Dots).withOpacity(0.5).clipped(glassBody).
				animate(loop(OffsetY, 3500*time.Millisecond, EaseInOut, 0, -5, 0).after(500*time.Millisecond)),
		)
	}

	if f.Break && f.Fill < 1 {
		sc.add(Front, "drip", polygon("drop", "#60A5FA", Solid,
			Point{95, 35}, Point{100, 30}, Point{105, 35}, Point{105, 45}, Point{100, 48}, Point{95, 45},
		).withOpacity(0).animate(
			loop(OffsetY, 2*time.Second, Linear, -20, 0),
			loop(Opacity, 2*time.Second, Linear, 0, 1, 1, 0),
		))
	}

	return sc
}
