package calculator

import "math"

// DiscountFactor returns (1+periodicRate)^years for real-valued year
// offsets. Continuous exponentiation stands in for a true compounding
// convention so fractional periods discount smoothly. Negative years is
// undefined; cash flows are always in the future of the evaluation date.
func DiscountFactor(periodicRate, years float64) float64 {
	if years == 0 {
		return 1
	}
	return math.Pow(1+periodicRate, years)
}
