package scheme

import (
	"time"

	"github.com/xvierd/vessel-cli/internal/theme"
)

// A candle never burns below its stub; only the wax above it is tracked.
const (
	candleBase     = 170.0
	candleStub     = 80.0
	candleWax      = 60.0
	candleDripsMax = 0.8
)

type candle struct{}

func (candle) ID() theme.ID { return theme.Candle }

func (candle) Render(f Frame) Scene {
	f = normalize(f)
	sc := newScene(theme.Candle, f, "Burning Bright", "Relighting...")

	stubTop := candleBase - candleStub
	wax := verticalFill("wax", 75, 50, stubTop, candleWax, f.Fill)
	wickY := wax.Y
	sc.Fills = []FillRegion{wax}

	sc.Shapes = []Shape{
		ellipse("shadow", 100, 175, 25, 5, "#D97706", Light).withOpacity(0.3),
		rect("stub", 75, stubTop, 50, candleStub, "#FDE68A", Dense),
		wax.Shape("#FDE68A", Dense),
		ellipse("pool", 100, wickY, 27, 6, "#FBBF24", Medium).withOpacity(0.6),
		rect("wick", 98, wickY-8, 4, 10, "#3E2723", Solid),
	}

	if f.Fill < candleDripsMax {
		sc.add(Front, "drips",
			polygon("drip-left", "#FCD34D", Medium,
				Point{75, wickY + 2}, Point{72, wickY + 4}, Point{72, wickY + 16}, Point{75, wickY + 18},
			).withOpacity(0.6).animate(loop(Opacity, 2*time.Second, Linear, 0.6, 0.8, 0.6)),
			polygon("drip-right", "#FCD34D", Medium,
				Point{125, wickY + 2}, Point{128, wickY + 4}, Point{128, wickY + 12}, Point{125, wickY + 14},
			).withOpacity(0.5).animate(loop(Opacity, 2500*time.Millisecond, Linear, 0.5, 0.7, 0.5).after(300*time.Millisecond)),
		)
	}

	if f.Fill > 0 {
		sc.add(Front, "flame",
			ellipse("flame-outer", 100, wickY-8, 12, 18, "#F59E0B", Medium).animate(
				loop(RadiusY, 2*time.Second, EaseInOut, 18, 20, 17, 19, 18),
				loop(RadiusX, 2*time.Second, EaseInOut, 12, 13, 11, 12.5, 12),
				loop(OffsetY, 2*time.Second, EaseInOut, 0, -1, 1, -0.5, 0),
			),
			ellipse("flame-inner", 100, wickY-12, 8, 12, "#FEF3C7", Dense).withOpacity(0.8).animate(
				loop(RadiusY, 1500*time.Millisecond, EaseInOut, 12, 13, 11, 12.5, 12),
				loop(Opacity, 1500*time.Millisecond, EaseInOut, 0.8, 0.9, 0.7, 0.85, 0.8),
			),
			circle("flame-core", 100, wickY-15, 3, "#FEF3C7", Solid).animate(
				loop(RadiusX, time.Second, Linear, 3, 4, 2.5, 3.5, 3),
				loop(RadiusY, time.Second, Linear, 3, 4, 2.5, 3.5, 3),
				loop(Opacity, time.Second, Linear, 1, 0.8, 1, 0.9, 1),
			),
		)
	}

	return sc
}
