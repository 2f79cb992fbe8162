package scheme

import (
	"time"

	"github.com/xvierd/vessel-cli/internal/theme"
)

const (
	// FlipEpsilon is how close to empty or full the hourglass must be
	// before it turns over.
	FlipEpsilon = 0.01
	FlipDegrees = 180.0
	flipTime    = time.Second

	bulbDepth      = 40.0
	topBulbFloor   = 80.0
	lowerBulbFloor = 160.0
	grainsMin      = 0.05
	grainCount     = 8
)

var (
	topBulb   = []Point{{70, 40}, {130, 40}, {100, 85}}
	lowerBulb = []Point{{70, 160}, {130, 160}, {100, 115}}
)

type hourglass struct{}

func (hourglass) ID() theme.ID { return theme.Sand }

// Flipping reports whether the hourglass turns over at this fill level.
func Flipping(fill float64) bool {
	return fill < FlipEpsilon || fill > 1-FlipEpsilon
}

func (hourglass) Render(f Frame) Scene {
	f = normalize(f)
	sc := newScene(theme.Sand, f, "Time Flowing", "Break Flow")

	top := verticalFill("top", 70, 60, topBulbFloor, bulbDepth, f.Fill)
	bottom := verticalFill("bottom", 70, 60, lowerBulbFloor, bulbDepth, 1-f.Fill)
	sc.Fills = []FillRegion{top, bottom}

	sc.Shapes = []Shape{
		ellipse("shadow", 100, 172, 35, 5, "#6366F1", Light).withOpacity(0.3),
		rect("cap", 60, 30, 80, 10, "#8B5CF6", Solid),
		rect("base", 60, 160, 80, 10, "#8B5CF6", Solid),
		polygon("bulb-top", "#8B5CF6", Outline, topBulb...).withOpacity(0.6),
		polygon("bulb-bottom", "#8B5CF6", Outline, lowerBulb...).withOpacity(0.6),
		top.Shape("#F59E0B", Dense).clipped(topBulb),
		bottom.Shape("#F59E0B", Dense).clipped(lowerBulb),
	}
	if !top.Empty() {
		sc.Shapes = append(sc.Shapes, ellipse("surface-top", 100, top.Y, 28, 3, "#D97706", Medium).
			withOpacity(0.6).clipped(topBulb))
	}
	if !bottom.Empty() {
		sc.Shapes = append(sc.Shapes, ellipse("surface-bottom", 100, bottom.Y, 28, 3, "#D97706", Medium).
			withOpacity(0.6).clipped(lowerBulb))
	}

	if f.Fill > grainsMin {
		grains := make([]Shape, grainCount)
		for i := range grains {
			delay := seconds(float64(i) * 0.15)
			grains[i] = circle("grain", 98+(jitter(i, 5)-0.5)*3, 85, 0.8+jitter(i, 6)*0.5, "#F59E0B", Dots).animate(
				loop(OffsetY, 1500*time.Millisecond, Linear, 0, 30).after(delay),
				loop(Opacity, 1500*time.Millisecond, Linear, 1, 0).after(delay),
			)
		}
		sc.add(Front, "grains", grains...)
	}

	sc.add(Front, "neck", rect("neck", 95, 85, 10, 30, "#DDD6FE", Light).
		withOpacity(0.3).
		animate(loop(Opacity, 1500*time.Millisecond, Linear, 0.2, 0.4, 0.2)))
	sc.add(Front, "glint",
		polyline("glint-top", "#E0E7FF", Outline, Point{75, 40}, Point{72, 42}, Point{75, 44}).
			withOpacity(0.5).animate(loop(Opacity, 2*time.Second, Linear, 0.3, 0.7, 0.3)),
		polyline("glint-bottom", "#E0E7FF", Outline, Point{125, 155}, Point{128, 157}, Point{125, 159}).
			withOpacity(0.5).animate(loop(Opacity, 2*time.Second, Linear, 0.3, 0.7, 0.3).after(500*time.Millisecond)),
	)

	sc.Pose.Duration = flipTime
	sc.Pose.Ease = EaseInOut
	if Flipping(f.Fill) {
		sc.Pose.Rotate = FlipDegrees
	}

	return sc
}
