package scheme

import (
	"time"

	"github.com/xvierd/vessel-cli/internal/theme"
)

const (
	coffeeCapacity  = 120.0
	coffeeBaseline  = 170.0
	coffeeFoamMin   = 0.1
	coffeeBubbleMin = 0.2
	coffeeSteamMin  = 0.3
)

var mugBody = []Point{{50, 35}, {120, 35}, {125, 160}, {115, 170}, {55, 170}, {50, 160}}

type coffeeMug struct{}

func (coffeeMug) ID() theme.ID { return theme.Coffee }

func (coffeeMug) Render(f Frame) Scene {
	f = normalize(f)
	sc := newScene(theme.Coffee, f, "Focus Time", "Refueling...")

	coffee := verticalFill("coffee", 45, 85, coffeeBaseline, coffeeCapacity, f.Fill)
	level := coffee.Y
	sc.Fills = []FillRegion{coffee}

	sc.Shapes = []Shape{
		ellipse("shadow", 100, 175, 42, 6, "#000000", Light).withOpacity(0.15),
		polygon("mug", "#9CA3AF", Outline, mugBody...),
		polyline("handle", "#9CA3AF", Outline,
			Point{125, 60}, Point{140, 57}, Point{145, 75}, Point{142, 92}, Point{135, 100}, Point{125, 98}),
		coffee.Shape("#6B4423", Solid).clipped(mugBody),
		ellipse("rim", 87.5, 37, 32, 4, "#FFFFFF", Light).withOpacity(0.4),
	}
	if !coffee.Empty() {
		sc.Shapes = append(sc.Shapes,
			ellipse("surface", 87.5, level, 40, 6, "#8B4513", Dense).withOpacity(0.9).clipped(mugBody))
	}

	if f.Fill > coffeeFoamMin {
		sc.add(Front, "foam", ellipse("foam", 87.5, level, 38, 4, "#D4A574", Medium).
			withOpacity(0.6).
			clipped(mugBody).
			animate(
				loop(RadiusY, 2*time.Second, EaseInOut, 4, 5, 4),
				loop(Opacity, 2*time.Second, EaseInOut, 0.6, 0.7, 0.6),
			))
	}

	if f.Fill > coffeeBubbleMin {
		bubbles := make([]Shape, 4)
		for i := range bubbles {
			odd := float64(i % 2)
			bubbles[i] = circle("bubble", 75+float64(i)*8, level+5+odd*3, 1.5+odd*0.5, "#D4A574", Dots).
				withOpacity(0.4).
				clipped(mugBody).
				animate(
					loop(OffsetY, seconds(3+float64(i)*0.5), EaseInOut, 0, 5, 0).after(seconds(float64(i)*0.3)),
					loop(Opacity, seconds(3+float64(i)*0.5), EaseInOut, 0.4, 0.6, 0.4).after(seconds(float64(i)*0.3)),
				)
		}
		sc.add(Front, "bubbles", bubbles...)
	}

	if f.Fill > coffeeSteamMin && !f.Break {
		steamLevel := level - 10
		wisps := make([]Shape, 3)
		for i := range wisps {
			x := 82 + float64(i)*11
			wisps[i] = polyline("steam", "#E5E7EB", Wave,
				Point{x, steamLevel},
				Point{x - 2, steamLevel - 15},
				Point{x, steamLevel - 30},
				Point{x + 2, steamLevel - 45},
				Point{x, steamLevel - 60},
			).withOpacity(0).animate(
				loop(Opacity, 2500*time.Millisecond, EaseInOut, 0, 0.5, 0).after(seconds(float64(i)*0.4)),
				loop(OffsetY, 2500*time.Millisecond, EaseInOut, -5, -10, -5).after(seconds(float64(i)*0.4)),
			)
		}
		sc.add(Front, "steam", wisps...)
	}

	return sc
}
