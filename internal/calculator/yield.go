package calculator

import (
	"time"

	"bondrisk/internal/domain"
)

const daysPerYear = 365.0

// EstimateYield computes an approximate yield to maturity with the
// closed-form formula
//
//	ytm = [annual coupon + (face - price) / years] / [(face + price) / 2]
//
// rather than an iterative solver. Only the annual coupon amount enters
// the formula, so the result is independent of the coupon schedule. Day
// count is actual/365.
//
// The yield exceeds the coupon rate for a discount bond, sits below it at
// a premium, and approximately equals it at par.
func EstimateYield(bond domain.Bond, asOf time.Time) (float64, error) {
	if bond.MarketPrice == nil {
		return 0, MissingMarketPriceError{ISIN: bond.ISIN}
	}
	if !bond.MaturityDate.After(asOf) {
		return 0, BondMaturedError{ISIN: bond.ISIN, MaturityDate: bond.MaturityDate, AsOf: asOf}
	}

	faceValue := bond.FaceValue.InexactFloat64()
	marketPrice := bond.MarketPrice.InexactFloat64()

	yearsToMaturity := yearsBetween(asOf, bond.MaturityDate)
	annualCoupon := faceValue * bond.CouponRate.InexactFloat64()
	capitalGainPerYear := (faceValue - marketPrice) / yearsToMaturity

	return (annualCoupon + capitalGainPerYear) / ((faceValue + marketPrice) / 2), nil
}

func yearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / daysPerYear
}
