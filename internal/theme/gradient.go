package theme

import "strings"

// Gradient is a background token of the form "from-amber-50 via-orange-50
// to-yellow-50".
type Gradient string

// Stops returns the color names in order, e.g. ["amber-50", "orange-50"].
func (g Gradient) Stops() []string {
	var stops []string
	for _, field := range strings.Fields(string(g)) {
		for _, prefix := range []string{"from-", "via-", "to-"} {
			if name, ok := strings.CutPrefix(field, prefix); ok {
				stops = append(stops, name)
				break
			}
		}
	}
	return stops
}

// Hex returns the hex value of every stop that has one.
func (g Gradient) Hex() []string {
	var out []string
	for _, stop := range g.Stops() {
		if hex, ok := swatches[stop]; ok {
			out = append(out, hex)
		}
	}
	return out
}

// Base returns the first stop's hex value, or "" when unknown.
func (g Gradient) Base() string {
	hex := g.Hex()
	if len(hex) == 0 {
		return ""
	}
	return hex[0]
}

var swatches = map[string]string{
	"amber-50":    "#FFFBEB",
	"blue-50":     "#EFF6FF",
	"cyan-50":     "#ECFEFF",
	"emerald-50":  "#ECFDF5",
	"fuchsia-50":  "#FDF4FF",
	"gray-50":     "#F9FAFB",
	"green-50":    "#F0FDF4",
	"indigo-50":   "#EEF2FF",
	"lime-50":     "#F7FEE7",
	"orange-50":   "#FFF7ED",
	"pink-50":     "#FDF2F8",
	"purple-50":   "#FAF5FF",
	"rose-50":     "#FFF1F2",
	"sky-50":      "#F0F9FF",
	"slate-50":    "#F8FAFC",
	"stone-50":    "#FAFAF9",
	"teal-50":     "#F0FDFA",
	"violet-50":   "#F5F3FF",
	"yellow-50":   "#FEFCE8",
	"zinc-50":     "#FAFAFA",
	"amber-950":   "#451A03",
	"blue-950":    "#172554",
	"cyan-950":    "#083344",
	"emerald-950": "#022C22",
	"fuchsia-950": "#4A044E",
	"gray-950":    "#030712",
	"green-950":   "#052E16",
	"indigo-950":  "#1E1B4B",
	"lime-950":    "#1A2E05",
	"orange-950":  "#431407",
	"pink-950":    "#500724",
	"purple-950":  "#3B0764",
	"rose-950":    "#4C0519",
	"sky-950":     "#082F49",
	"slate-950":   "#020617",
	"stone-950":   "#0C0A09",
	"teal-950":    "#042F2E",
	"violet-950":  "#2E1065",
	"yellow-950":  "#422006",
	"zinc-950":    "#09090B",
}
