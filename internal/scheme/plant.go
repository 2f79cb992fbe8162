package scheme

import (
	"math"
	"time"

	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/theme"
)

// Growth stages, in growth progress.
const (
	StemStage        = 0.1
	LowerLeavesStage = 0.3
	UpperLeavesStage = 0.5
	FlowerStage      = 0.8
)

const (
	plantSoil   = 160.0
	plantHeight = 90.0
)

type plantGrowth struct{}

func (plantGrowth) ID() theme.ID { return theme.Plant }

func (plantGrowth) Render(f Frame) Scene {
	f = normalize(f)
	sc := newScene(theme.Plant, f, "Growing Strong", "Swaying Gently")

	g := domain.GrowthProgress(f.Fill, f.Break)
	stem := verticalFill("stem", 98, 4, plantSoil, plantHeight, g)
	tip := stem.Y
	sc.Fills = []FillRegion{stem}

	sc.Shapes = []Shape{
		ellipse("shadow", 100, 175, 30, 5, "#92400E", Light).withOpacity(0.3),
		polygon("pot", "#B45309", Dense, Point{65, 160}, Point{75, 175}, Point{125, 175}, Point{135, 160}),
		rect("rim", 70, 160, 60, 5, "#B45309", Solid),
		ellipse("soil", 100, 160, 30, 8, "#92400E", Solid),
	}

	// Everything above the soil sways together during a break.
	sway := func(s Shape) Shape {
		if !f.Break {
			return s
		}
		return s.animate(loop(OffsetY, 2*time.Second, EaseInOut, 0, -2, 0))
	}
	leafSwing := func(s Shape, deg float64, period, delay time.Duration, pivot Point) Shape {
		if !f.Break {
			return s
		}
		return s.animate(loop(Rotate, period, EaseInOut, 0, deg, 0).after(delay).around(pivot.X, pivot.Y))
	}

	if g > StemStage {
		sc.add(Front, "stem", sway(polyline("stem", "#15803D", Outline,
			quad(Point{100, plantSoil}, Point{95, plantSoil - g*80}, Point{100, tip}, 8)...)))
	}

	if g > LowerLeavesStage {
		y := plantSoil - g*50
		left := Point{95 + g*5, y}
		right := Point{105 - g*5, y}
		sc.add(Front, "leaves-lower",
			sway(leafSwing(leaf("leaf-left", left, Point{75 + g*5, y - 5}, Point{70 + g*5, y + 5}),
				5, 3*time.Second, 0, left)),
			sway(leafSwing(leaf("leaf-right", right, Point{125 - g*5, y - 5}, Point{130 - g*5, y + 5}),
				-5, 3*time.Second, 500*time.Millisecond, right)),
		)
	}

	if g > UpperLeavesStage {
		y := plantSoil - g*70
		left := Point{97 + g*3, y}
		right := Point{103 - g*3, y}
		sc.add(Front, "leaves-upper",
			sway(leafSwing(leaf("leaf-left", left, Point{82 + g*3, y - 2}, Point{77 + g*3, y + 8}),
				4, 2500*time.Millisecond, 300*time.Millisecond, left)),
			sway(leafSwing(leaf("leaf-right", right, Point{118 - g*3, y - 2}, Point{123 - g*3, y + 8}),
				-4, 2500*time.Millisecond, 800*time.Millisecond, right)),
		)
	}

	if g > FlowerStage {
		center := Point{100, tip}
		shapes := make([]Shape, 0, 6)
		for i := 0; i < 5; i++ {
			a := float64(i) * 72 * math.Pi / 180
			petal := ellipse("petal", center.X+12*math.Cos(a), center.Y+12*math.Sin(a), 6, 8, "#FDE68A", Medium).
				withOpacity(0.8).
				animate(loop(Opacity, 2*time.Second, Linear, 0.8, 1, 0.8).after(seconds(float64(i) * 0.2)))
			if f.Break {
				petal = petal.animate(loop(Rotate, 20*time.Second, Linear, 0, 360).around(center.X, center.Y))
			}
			shapes = append(shapes, sway(petal))
		}
		shapes = append(shapes, sway(circle("flower-center", center.X, center.Y, 8, "#FBBF24", Solid)))
		sc.add(Front, "flower", shapes...)
	}

	return sc
}

// leaf closes a quadratic curve from base through tip back to base.
func leaf(name string, base, ctrl, end Point) Shape {
	return polygon(name, "#34D399", Solid, quad(base, ctrl, end, 6)...)
}
