// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	} else if x < lo {
		return lo
	}

	return x
}

func ClampFloat32(x, lo, hi float32) float32 {
	if x > hi {
		return hi
	} else if x < lo {
		return lo
	}

	return x
}

// AmplitudeToDecibels converts a linear magnitude to dBFS. Zero maps to
// negative infinity.
func AmplitudeToDecibels(a float64) float64 {
	return 20 * math.Log10(math.Abs(a))
}
