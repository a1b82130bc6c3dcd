package application

import "math"

// Rates are stored as NUMERIC(12, 2).
const (
	MinProposedRate = 0.01
	MaxProposedRate = 1e10
)

// RoundRate rounds a rate to cents, the precision it is persisted at.
func RoundRate(rate float64) float64 {
	return math.Round(rate*100) / 100
}

// RateInRange reports whether rate survives storage: finite, at least one
// cent after rounding and below MaxProposedRate.
func RateInRange(rate float64) bool {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return false
	}
	r := RoundRate(rate)
	return r >= MinProposedRate && r < MaxProposedRate
}
