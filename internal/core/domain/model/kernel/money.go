package kernel

import "math"

// RoundHalfUp2 rounds an amount to two decimal places using half-up rounding.
// All money leaving the earnings calculation goes through this helper so that
// cashout totals are deterministic for a given parcel set.
//
// Example:
//
//	kernel.RoundHalfUp2(80.005) // 80.01
//	kernel.RoundHalfUp2(79.994) // 79.99
func RoundHalfUp2(amount float64) float64 {
	return math.Floor(amount*100+0.5) / 100
}
