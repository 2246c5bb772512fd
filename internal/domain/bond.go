package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bond is a plain-vanilla fixed-coupon bond. It is a value object: the
// calculation engine only ever reads it, and identity (database ids etc)
// lives on the storage records, not here.
type Bond struct {
	// ISIN is only used for diagnostics, never for math.
	ISIN         string
	MaturityDate time.Time
	// CouponDates lists one payment obligation per entry, in payment
	// order. Duplicates are separate payments; nothing de-dupes them.
	CouponDates []time.Time
	// CouponRate is annualized, e.g. 0.05 for 5%.
	CouponRate decimal.Decimal
	FaceValue  decimal.Decimal
	// MarketPrice is nil when unobserved. Yield and duration cannot be
	// computed without it. A holding of N units is represented by a
	// market price already scaled to the holding size.
	MarketPrice *decimal.Decimal
}

// Portfolio is a named collection of bond positions, each counted once.
type Portfolio struct {
	Name  string
	Bonds []Bond
}
