// Package theme holds the fixed catalog of visual schemes and their colors.
package theme

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// ID identifies one of the seven visual schemes.
type ID string

const (
	Coffee  ID = "coffee"
	Battery ID = "battery"
	Rocket  ID = "rocket"
	Candle  ID = "candle"
	Plant   ID = "plant"
	Water   ID = "water"
	Sand    ID = "sand"
)

// Palette holds the terminal colors used around a scene.
type Palette struct {
	FocusStart string
	FocusEnd   string
	BreakStart string
	BreakEnd   string
	Accent     string
}

// Theme is one immutable catalog entry.
type Theme struct {
	ID              ID
	Name            string
	Icon            string
	FocusColors     Gradient
	BreakColors     Gradient
	FocusColorsDark Gradient
	BreakColorsDark Gradient
	Palette         Palette
}

var catalog = []Theme{
	{
		ID:              Coffee,
		Name:            "Coffee Mug",
		Icon:            "☕",
		FocusColors:     "from-amber-50 via-orange-50 to-yellow-50",
		BreakColors:     "from-blue-50 via-cyan-50 to-teal-50",
		FocusColorsDark: "from-amber-950 via-orange-950 to-yellow-950",
		BreakColorsDark: "from-blue-950 via-cyan-950 to-teal-950",
		Palette:         Palette{FocusStart: "#92400E", FocusEnd: "#D97706", BreakStart: "#0891B2", BreakEnd: "#14B8A6", Accent: "#B45309"},
	},
	{
		ID:              Battery,
		Name:            "Battery Charge",
		Icon:            "🔋",
		FocusColors:     "from-gray-50 via-slate-50 to-zinc-50",
		BreakColors:     "from-emerald-50 via-green-50 to-teal-50",
		FocusColorsDark: "from-gray-950 via-slate-950 to-zinc-950",
		BreakColorsDark: "from-emerald-950 via-green-950 to-teal-950",
		Palette:         Palette{FocusStart: "#EF4444", FocusEnd: "#10B981", BreakStart: "#059669", BreakEnd: "#34D399", Accent: "#10B981"},
	},
	{
		ID:              Rocket,
		Name:            "Rocket Fuel",
		Icon:            "🚀",
		FocusColors:     "from-slate-50 via-gray-50 to-stone-50",
		BreakColors:     "from-blue-50 via-indigo-50 to-violet-50",
		FocusColorsDark: "from-slate-950 via-gray-950 to-stone-950",
		BreakColorsDark: "from-blue-950 via-indigo-950 to-violet-950",
		Palette:         Palette{FocusStart: "#F97316", FocusEnd: "#FBBF24", BreakStart: "#6366F1", BreakEnd: "#8B5CF6", Accent: "#F97316"},
	},
	{
		ID:              Candle,
		Name:            "Candle",
		Icon:            "🕯️",
		FocusColors:     "from-amber-50 via-yellow-50 to-orange-50",
		BreakColors:     "from-purple-50 via-pink-50 to-rose-50",
		FocusColorsDark: "from-amber-950 via-yellow-950 to-orange-950",
		BreakColorsDark: "from-purple-950 via-pink-950 to-rose-950",
		Palette:         Palette{FocusStart: "#F59E0B", FocusEnd: "#FDE68A", BreakStart: "#A855F7", BreakEnd: "#F43F5E", Accent: "#F59E0B"},
	},
	{
		ID:              Plant,
		Name:            "Plant Growth",
		Icon:            "🌱",
		FocusColors:     "from-lime-50 via-green-50 to-emerald-50",
		BreakColors:     "from-teal-50 via-cyan-50 to-sky-50",
		FocusColorsDark: "from-lime-950 via-green-950 to-emerald-950",
		BreakColorsDark: "from-teal-950 via-cyan-950 to-sky-950",
		Palette:         Palette{FocusStart: "#65A30D", FocusEnd: "#22C55E", BreakStart: "#14B8A6", BreakEnd: "#0EA5E9", Accent: "#16A34A"},
	},
	{
		ID:              Water,
		Name:            "Water Glass",
		Icon:            "💧",
		FocusColors:     "from-cyan-50 via-sky-50 to-blue-50",
		BreakColors:     "from-blue-50 via-indigo-50 to-cyan-50",
		FocusColorsDark: "from-cyan-950 via-sky-950 to-blue-950",
		BreakColorsDark: "from-blue-950 via-indigo-950 to-cyan-950",
		Palette:         Palette{FocusStart: "#06B6D4", FocusEnd: "#3B82F6", BreakStart: "#3B82F6", BreakEnd: "#6366F1", Accent: "#0EA5E9"},
	},
	{
		ID:              Sand,
		Name:            "Hourglass",
		Icon:            "⏳",
		FocusColors:     "from-violet-50 via-purple-50 to-fuchsia-50",
		BreakColors:     "from-pink-50 via-rose-50 to-orange-50",
		FocusColorsDark: "from-violet-950 via-purple-950 to-fuchsia-950",
		BreakColorsDark: "from-pink-950 via-rose-950 to-orange-950",
		Palette:         Palette{FocusStart: "#8B5CF6", FocusEnd: "#D946EF", BreakStart: "#EC4899", BreakEnd: "#FB923C", Accent: "#D4A373"},
	},
}

// All returns the catalog in display order.
func All() []Theme {
	out := make([]Theme, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns the catalog identifiers in display order.
func IDs() []ID {
	ids := make([]ID, len(catalog))
	for i, t := range catalog {
		ids[i] = t.ID
	}
	return ids
}

// Default returns the first catalog entry.
func Default() Theme {
	return catalog[0]
}

// Lookup returns the theme for id, falling back to the first entry for
// unknown identifiers.
func Lookup(id ID) Theme {
	if t, ok := find(id); ok {
		return t
	}
	return Default()
}

// Parse resolves user input to a theme. ok is false when the input did
// not name a theme and the fallback was used.
func Parse(raw string) (Theme, bool) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	if t, ok := find(id); ok {
		return t, true
	}
	return Default(), false
}

// Valid reports whether id names a catalog entry.
func Valid(id ID) bool {
	_, ok := find(id)
	return ok
}

func find(id ID) (Theme, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Background returns the ambient gradient token for a theme and phase.
func Background(id ID, isBreak, dark bool) Gradient {
	return Lookup(id).Background(isBreak, dark)
}

// Background returns the ambient gradient token for the given phase.
func (t Theme) Background(isBreak, dark bool) Gradient {
	switch {
	case isBreak && dark:
		return t.BreakColorsDark
	case isBreak:
		return t.BreakColors
	case dark:
		return t.FocusColorsDark
	default:
		return t.FocusColors
	}
}

// Gradient returns the progress bar endpoints for the given phase.
func (t Theme) Gradient(isBreak bool) (start, end string) {
	if isBreak {
		return t.Palette.BreakStart, t.Palette.BreakEnd
	}
	return t.Palette.FocusStart, t.Palette.FocusEnd
}

// Title returns the icon and name, e.g. "☕ Coffee Mug".
func (t Theme) Title() string {
	return t.Icon + " " + t.Name
}

type themeSource []Theme

func (s themeSource) String(i int) string {
	return string(s[i].ID) + " " + s[i].Name
}

func (s themeSource) Len() int {
	return len(s)
}

// Search fuzzy-matches query against theme identifiers and names, best
// match first. An empty query returns the whole catalog.
func Search(query string) []Theme {
	query = strings.TrimSpace(query)
	if query == "" {
		return All()
	}
	matches := fuzzy.FindFrom(query, themeSource(catalog))
	out := make([]Theme, 0, len(matches))
	for _, m := range matches {
		out = append(out, catalog[m.Index])
	}
	return out
}
