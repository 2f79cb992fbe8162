package domain

import "math"

// ComputeFillLevel maps the time left in a phase to a level in [0,1].
// Focus drains from 1 to 0, break refills from 0 to 1.
func ComputeFillLevel(remaining, total int, isBreak bool) float64 {
	if total <= 0 {
		if isBreak {
			return 1
		}
		return 0
	}
	ratio := ClampFill(float64(remaining) / float64(total))
	if isBreak {
		return 1 - ratio
	}
	return ratio
}

// ClampFill forces f into [0,1]. NaN maps to 0.
func ClampFill(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// GrowthProgress is the inverse transform used by growing metaphors:
// progress rises while focus drains and keeps rising through the break.
func GrowthProgress(fill float64, isBreak bool) float64 {
	fill = ClampFill(fill)
	if isBreak {
		return fill
	}
	return 1 - fill
}

// GlowIntensity is how strongly a charging vessel glows.
func GlowIntensity(fill float64, isBreak bool) float64 {
	return GrowthProgress(fill, isBreak)
}

// FlameIntensity scales an exhaust or wick flame with the fill level.
// An empty vessel has no flame at all.
func FlameIntensity(fill float64) float64 {
	fill = ClampFill(fill)
	if fill <= 0 {
		return 0
	}
	return 0.3 + fill*0.7
}
