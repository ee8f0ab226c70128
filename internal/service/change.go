package service

import "math"

// PercentChange computes the relative change from previous to current as a
// percentage rounded to two decimals. A zero baseline yields 0 when current
// is also zero and 100 otherwise, so dashboards never divide by zero.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return Round2((current - previous) / previous * 100)
}

// Round2 rounds to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Percent computes part/total*100 rounded to two decimals, 0 when total is 0
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round2(part / total * 100)
}

// ComputedOccupancy derives an occupancy percentage from a reservation count
// and a capacity. A zero or negative capacity is treated as 1 so the result
// stays finite.
func ComputedOccupancy(reservations, capacity int64) float64 {
	if capacity <= 0 {
		capacity = 1
	}
	return Round2(float64(reservations) * 100 / float64(capacity))
}
