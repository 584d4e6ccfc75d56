package pricing

import "math"

// RoundCents rounds half-up to two decimal places. The small bias absorbs binary
// representation error such as 2.675*100 = 267.49999...
func RoundCents(v float64) float64 {
	if v < 0 {
		return -RoundCents(-v)
	}
	return math.Floor(v*100+0.5+1e-9) / 100
}

func ComputePrice(durationHours, pricePerHour float64) float64 {
	return RoundCents(durationHours * pricePerHour)
}
