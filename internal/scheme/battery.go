package scheme

import (
	"fmt"
	"math"
	"time"

	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/theme"
)

const (
	batteryCapacity   = 110.0
	batteryBaseline   = 175.0
	batteryHighCharge = 0.5
	batteryLowCharge  = 0.2
	batteryGlowMin    = 0.7
)

type battery struct{}

func (battery) ID() theme.ID { return theme.Battery }

// chargeColor picks the cell color for a charge level.
func chargeColor(fill float64) string {
	switch {
	case fill > batteryHighCharge:
		return "#10B981"
	case fill > batteryLowCharge:
		return "#F59E0B"
	default:
		return "#EF4444"
	}
}

func (battery) Render(f Frame) Scene {
	f = normalize(f)
	sc := newScene(theme.Battery, f, "Power Draining", "Recharging...")
	sc.Caption = fmt.Sprintf("%d%%", int(math.Round(f.Fill*100)))

	cell := verticalFill("charge", 55, 90, batteryBaseline, batteryCapacity, f.Fill)
	sc.Fills = []FillRegion{cell}
	color := chargeColor(f.Fill)

	sc.Shapes = []Shape{
		rect("case", 50, 60, 100, 120, "#374151", Outline),
		rect("terminal", 80, 45, 40, 15, "#374151", Solid),
		cell.Shape(color, Solid),
	}

	if domain.GlowIntensity(f.Fill, f.Break) > batteryGlowMin && !cell.Empty() {
		sc.add(Back, "glow", rect("glow", cell.X-3, cell.Y-3, cell.Width+6, cell.Height+6, color, Light).
			animate(loop(Opacity, 2*time.Second, EaseInOut, 0.3, 0.6, 0.3)))
	}

	if f.Fill < batteryLowCharge && !f.Break {
		sc.add(Front, "low-charge", rect("warning", 50, 60, 100, 120, "#EF4444", Outline).
			animate(loop(Opacity, time.Second, Linear, 1, 0.1, 1)))
	}

	if f.Break {
		sc.add(Front, "bolt", polygon("bolt", "#FBBF24", Solid,
			Point{100, 35}, Point{95, 45}, Point{102, 45}, Point{98, 55}, Point{105, 40}, Point{98, 40},
		).withOpacity(0).animate(loop(Opacity, 2*time.Second, Linear, 0, 1, 0)))
	}

	return sc
}
