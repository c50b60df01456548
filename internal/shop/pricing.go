package shop

import "math"

// Price applies a multiplier to a template price, truncating toward zero.
// Buy and sell share this rounding.
func Price(base int, multiplier float64) int {
	return int(math.Floor(float64(base) * multiplier))
}
