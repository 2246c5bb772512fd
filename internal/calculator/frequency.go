package calculator

import "time"

const defaultPaymentsPerYear = 2

// ResolvePaymentFrequency infers payments per year from a coupon schedule
// by anchoring on the earliest coupon date and counting how many coupons
// land within one year of it. The model has no explicit frequency field,
// so this is a heuristic - it misclassifies schedules that don't cover a
// full year of dates. Anything undecidable falls back to semi-annual.
func ResolvePaymentFrequency(couponDates []time.Time) int {
	if len(couponDates) < 2 {
		return defaultPaymentsPerYear
	}

	// Callers aren't required to sort the schedule.
	anchor := couponDates[0]
	for _, d := range couponDates[1:] {
		if d.Before(anchor) {
			anchor = d
		}
	}

	oneYearOut := anchor.AddDate(1, 0, 0)
	count := 0
	for _, d := range couponDates {
		if !d.Before(anchor) && d.Before(oneYearOut) {
			count++
		}
	}

	if count == 0 {
		return defaultPaymentsPerYear
	}
	return count
}
