package scheme

import (
	"time"

	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/theme"
)

const (
	rocketCapacity  = 70.0
	rocketBaseline  = 125.0
	rocketParticles = 12
	rocketLaunch    = 2 * time.Second
)

var exhaustColors = [...]string{"#FEF3C7", "#FBBF24", "#F59E0B"}

type rocketFuel struct{}

func (rocketFuel) ID() theme.ID { return theme.Rocket }

func (rocketFuel) Render(f Frame) Scene {
	f = normalize(f)
	sc := newScene(theme.Rocket, f, "Burning Fuel", "Refueling...")

	fuel := verticalFill("fuel", 75, 50, rocketBaseline, rocketCapacity, f.Fill)
	sc.Fills = []FillRegion{fuel}

	sc.Shapes = []Shape{
		polygon("nose", "#3B82F6", Solid, Point{85, 50}, Point{85, 30}, Point{100, 15}, Point{115, 30}, Point{115, 50}),
		ellipse("collar", 100, 50, 15, 3, "#1E40AF", Solid),
		rect("tank", 70, 50, 60, 80, "#6B7280", Outline),
		fuel.Shape("#F59E0B", Solid),
		polygon("fin-left", "#DC2626", Solid, Point{70, 130}, Point{60, 150}, Point{70, 150}),
		polygon("fin-right", "#DC2626", Solid, Point{130, 130}, Point{140, 150}, Point{130, 150}),
		polygon("strut-left", "#EF4444", Solid, Point{85, 130}, Point{80, 155}, Point{90, 155}),
		polygon("strut-right", "#EF4444", Solid, Point{115, 130}, Point{110, 155}, Point{120, 155}),
		circle("window", 100, 70, 8, "#3B82F6", Light).withOpacity(0.3),
		rect("panel", 85, 90, 30, 15, "#1E40AF", Light).withOpacity(0.2),
	}

	if intensity := domain.FlameIntensity(f.Fill); intensity > 0 {
		sc.add(Back, "flame",
			ellipse("flame-outer", 100, 155, 25, 35, "#F59E0B", Medium).withOpacity(intensity).animate(
				loop(RadiusY, 2*time.Second, EaseInOut, 35, 40, 32, 38, 35),
				loop(RadiusX, 2*time.Second, EaseInOut, 25, 28, 23, 27, 25),
				loop(OffsetY, 2*time.Second, EaseInOut, 0, -2, 2, -1, 0),
			),
			ellipse("flame-middle", 100, 150, 18, 25, "#FBBF24", Dense).withOpacity(0.9*intensity).animate(
				loop(RadiusY, 1500*time.Millisecond, EaseInOut, 25, 28, 23, 27, 25),
				loop(RadiusX, 1500*time.Millisecond, EaseInOut, 18, 20, 16, 19, 18),
				loop(Opacity, 1500*time.Millisecond, EaseInOut, 0.9*intensity, intensity, 0.8*intensity, 0.95*intensity, 0.9*intensity),
			),
			ellipse("flame-core", 100, 145, 12, 18, "#FEF3C7", Solid).withOpacity(0.95*intensity).animate(
				loop(RadiusY, time.Second, Linear, 18, 20, 16, 19, 18),
				loop(Opacity, time.Second, Linear, 0.95*intensity, intensity, 0.9*intensity, 0.98*intensity, 0.95*intensity),
			),
		)

		particles := make([]Shape, rocketParticles)
		for i := range particles {
			period := seconds(1 + jitter(i, 3)*0.8)
			delay := seconds(float64(i) * 0.15)
			particles[i] = circle("ember", 96+jitter(i, 1)*8, 185, 2, exhaustColors[i%3], Sparkle).
				withOpacity(0).
				animate(
					loop(OffsetY, period, EaseOut, -2, -25-jitter(i, 2)*10).after(delay),
					loop(OffsetX, period, EaseOut, 0, (jitter(i, 4)-0.5)*10).after(delay),
					loop(Opacity, period, EaseOut, 0, 0.8*intensity, 0).after(delay),
					loop(Scale, period, EaseOut, 0.5, 1.2, 0.2).after(delay),
				)
		}
		sc.add(Front, "exhaust", particles...)
	}

	sc.Pose.Duration = rocketLaunch
	sc.Pose.Ease = EaseInOut
	if f.Fill == 0 && !f.Break {
		sc.Pose.OffsetY = -80
		sc.Pose.Opacity = 0
	}

	return sc
}
