package calculator

import (
	"fmt"
	"time"
)

// Every precondition failure gets its own type so callers can match with
// errors.As instead of parsing messages. These are deterministic input
// failures; nothing here is retryable.

type MissingMarketPriceError struct {
	ISIN string
}

func (e MissingMarketPriceError) Error() string {
	return fmt.Sprintf("bond %s has no market price", e.ISIN)
}

type BondMaturedError struct {
	ISIN         string
	MaturityDate time.Time
	AsOf         time.Time
}

func (e BondMaturedError) Error() string {
	return fmt.Sprintf(
		"bond %s matured on %s, which is not after evaluation date %s",
		e.ISIN,
		e.MaturityDate.Format("2006-01-02"),
		e.AsOf.Format("2006-01-02"),
	)
}

type InvalidScheduleError struct {
	ISIN string
}

func (e InvalidScheduleError) Error() string {
	return fmt.Sprintf("bond %s has no coupon dates", e.ISIN)
}

type EmptyPortfolioError struct {
	Name   string
	Reason string
}

func (e EmptyPortfolioError) Error() string {
	return fmt.Sprintf("portfolio %s: %s", e.Name, e.Reason)
}

type DegenerateCashFlowError struct {
	ISIN string
}

func (e DegenerateCashFlowError) Error() string {
	return fmt.Sprintf("bond %s has no cash flows with nonzero present value", e.ISIN)
}
