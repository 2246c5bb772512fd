package calculator

import (
	"time"

	"bondrisk/internal/domain"
)

// MacaulayDuration is the present-value-weighted average time, in years,
// until the bond's remaining cash flows. Every cash flow is discounted at
// the bond's approximate yield rather than a spot curve, so the implied
// price Σ(PV) lands near - not exactly on - the observed market price.
func MacaulayDuration(bond domain.Bond, asOf time.Time) (float64, error) {
	if bond.MarketPrice == nil {
		return 0, MissingMarketPriceError{ISIN: bond.ISIN}
	}
	if len(bond.CouponDates) == 0 {
		return 0, InvalidScheduleError{ISIN: bond.ISIN}
	}

	yield, err := EstimateYield(bond, asOf)
	if err != nil {
		return 0, err
	}

	faceValue := bond.FaceValue.InexactFloat64()
	freq := ResolvePaymentFrequency(bond.CouponDates)
	couponPayment := faceValue * bond.CouponRate.InexactFloat64() / float64(freq)

	var weightedPV, totalPV float64

	// Coupons on or before the evaluation date are already paid and drop
	// out entirely.
	for _, couponDate := range bond.CouponDates {
		if !couponDate.After(asOf) {
			continue
		}
		t := yearsBetween(asOf, couponDate)
		pv := couponPayment / DiscountFactor(yield, t)
		weightedPV += t * pv
		totalPV += pv
	}

	tMaturity := yearsBetween(asOf, bond.MaturityDate)
	principalPV := faceValue / DiscountFactor(yield, tMaturity)
	weightedPV += tMaturity * principalPV
	totalPV += principalPV

	if totalPV == 0 {
		return 0, DegenerateCashFlowError{ISIN: bond.ISIN}
	}

	return weightedPV / totalPV, nil
}

// ModifiedDuration adjusts Macaulay duration for yield level and payment
// frequency: macaulay / (1 + y/freq). It re-derives the yield and the
// frequency itself so it stays correct when called in isolation. Whenever
// the yield is positive the divisor exceeds 1 and the modified figure is
// strictly below the Macaulay one.
func ModifiedDuration(bond domain.Bond, asOf time.Time) (float64, error) {
	macaulay, err := MacaulayDuration(bond, asOf)
	if err != nil {
		return 0, err
	}

	yield, err := EstimateYield(bond, asOf)
	if err != nil {
		return 0, err
	}
	freq := ResolvePaymentFrequency(bond.CouponDates)

	return macaulay / (1 + yield/float64(freq)), nil
}
