package vmath

import (
	"math"
)

const TwoPi = 2 * math.Pi

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle normalizes an angle to [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// ShortestAngleDelta returns the signed delta from a to b in (-π, π]
func ShortestAngleDelta(a, b float64) float64 {
	d := math.Mod(b-a, TwoPi)
	if d > math.Pi {
		d -= TwoPi
	}
	if d <= -math.Pi {
		d += TwoPi
	}
	return d
}
