package vortex

import "math"

// FadeInOut maps a particle's age t over lifetime m to an opacity envelope:
// 0 at birth, 1 at mid-life, back to 0 at death.
func FadeInOut(t, m float64) float64 {
	if m <= 0 {
		return 0
	}
	hm := 0.5 * m
	return math.Abs(math.Mod(t+hm, m)-hm) / hm
}

// Lerp blends a toward b by t.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}
