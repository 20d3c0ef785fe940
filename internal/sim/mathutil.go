package sim

import "math"

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NormalizePad maps a horizontal offset from a steering pad's centre to -1..1.
// The pad clamps; the aggregator summing it with keys does not.
func NormalizePad(dx, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return clampF(dx/radius, -1, 1)
}
