package midi

import "math"

// UnsignedValue converts a position in the nominal range [0, 1] to a
// 7-bit value. Positions outside the range clamp to the nearest bound.
func UnsignedValue(pos float64) Value {
	return clamp7(math.Round(pos * 128))
}

// CenteredValue converts a position in the nominal range [-1, 1] to a
// 7-bit value with the rest position at 64. Positions outside the range
// clamp to the nearest bound.
func CenteredValue(pos float64) Value {
	return clamp7(math.Round(64 + pos*64))
}

func clamp7(v float64) Value {
	if !(v > 0) { // NaN lands here
		return 0
	}
	if v > 127 {
		return 127
	}
	return Value(v)
}
