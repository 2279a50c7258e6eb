package common

import "math"

const (
	// BaseWidth and BaseHeight are the logical canvas size.
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseOutCubic maps t in [0,1] onto a curve that starts fast and settles.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
