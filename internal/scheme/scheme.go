// Package scheme turns a fill level into a scene for each of the seven
// visual metaphors. Renderers are pure: the same frame always yields the
// same scene.
package scheme

import (
	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/theme"
)

// Scheme renders one visual metaphor.
type Scheme interface {
	ID() theme.ID
	Render(f Frame) Scene
}

var registry = map[theme.ID]Scheme{
	theme.Coffee:  coffeeMug{},
	theme.Battery: battery{},
	theme.Rocket:  rocketFuel{},
	theme.Candle:  candle{},
	theme.Plant:   plantGrowth{},
	theme.Water:   waterGlass{},
	theme.Sand:    hourglass{},
}

// For returns the renderer for id, falling back to the first theme.
func For(id theme.ID) Scheme {
	if s, ok := registry[id]; ok {
		return s
	}
	return registry[theme.Default().ID]
}

// All returns every renderer in catalog order.
func All() []Scheme {
	ids := theme.IDs()
	out := make([]Scheme, 0, len(ids))
	for _, id := range ids {
		out = append(out, registry[id])
	}
	return out
}

// Render clamps the frame's fill level and renders it with the scheme for
// id.
func Render(id theme.ID, f Frame) Scene {
	return For(id).Render(f)
}

// normalize clamps out-of-range fill levels coming from upstream.
func normalize(f Frame) Frame {
	f.Fill = domain.ClampFill(f.Fill)
	return f
}
