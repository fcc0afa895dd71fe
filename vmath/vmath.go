package vmath

import "math"

// Epsilon is the tolerance below which a time or distance is treated as zero
const Epsilon = 1e-9

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt limits x to [lo, hi]
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sign returns -1, 0 or 1
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// SignInt returns -1, 0 or 1
func SignInt(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Fold maps an unbounded coordinate onto [lo, hi] as if it bounced between
// both edges; the motion is periodic with period 2*(hi-lo)
func Fold(u, lo, hi float64) float64 {
	w := hi - lo
	if w <= 0 {
		return lo
	}
	period := 2 * w
	p := math.Mod(u-lo, period)
	if p < 0 {
		p += period
	}
	if p > w {
		p = period - p
	}
	return lo + p
}

// Approx reports whether a and b differ by at most tol
func Approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
