package calculator

import (
	"fmt"
	"time"

	"bondrisk/internal/domain"

	"github.com/montanaflynn/stats"
)

// PortfolioWeightedDuration combines each bond's modified duration,
// weighted by its share of total portfolio market value. The result is a
// convex combination, so it always lands between the smallest and largest
// individual duration, and equals the single bond's duration for a
// one-bond portfolio.
func PortfolioWeightedDuration(portfolio domain.Portfolio, asOf time.Time) (float64, error) {
	durations, weights, err := bondDurations(portfolio, asOf)
	if err != nil {
		return 0, err
	}

	weighted := 0.0
	for i, d := range durations {
		weighted += weights[i] * d
	}

	return weighted, nil
}

// DurationSummary describes the spread of modified durations across a
// portfolio alongside the market-value-weighted aggregate.
type DurationSummary struct {
	WeightedDuration float64
	MinDuration      float64
	MaxDuration      float64
	MeanDuration     float64
}

// PortfolioDurationSummary computes the weighted portfolio duration plus
// the unweighted min/max/mean of the individual modified durations.
func PortfolioDurationSummary(portfolio domain.Portfolio, asOf time.Time) (*DurationSummary, error) {
	durations, weights, err := bondDurations(portfolio, asOf)
	if err != nil {
		return nil, err
	}

	weighted := 0.0
	for i, d := range durations {
		weighted += weights[i] * d
	}

	minDuration, err := stats.Min(durations)
	if err != nil {
		return nil, err
	}
	maxDuration, err := stats.Max(durations)
	if err != nil {
		return nil, err
	}
	meanDuration, err := stats.Mean(durations)
	if err != nil {
		return nil, err
	}

	return &DurationSummary{
		WeightedDuration: weighted,
		MinDuration:      minDuration,
		MaxDuration:      maxDuration,
		MeanDuration:     meanDuration,
	}, nil
}

// bondDurations computes each bond's modified duration and market-value
// weight. A failure on any single bond fails the whole portfolio; the
// caller decides whether to isolate bonds and retry without them.
func bondDurations(portfolio domain.Portfolio, asOf time.Time) ([]float64, []float64, error) {
	if len(portfolio.Bonds) == 0 {
		return nil, nil, EmptyPortfolioError{Name: portfolio.Name, Reason: "portfolio has no bonds"}
	}

	totalValue := 0.0
	for _, bond := range portfolio.Bonds {
		if bond.MarketPrice == nil {
			return nil, nil, MissingMarketPriceError{ISIN: bond.ISIN}
		}
		totalValue += bond.MarketPrice.InexactFloat64()
	}
	if totalValue == 0 {
		return nil, nil, EmptyPortfolioError{Name: portfolio.Name, Reason: "total market value is zero"}
	}

	durations := make([]float64, 0, len(portfolio.Bonds))
	weights := make([]float64, 0, len(portfolio.Bonds))
	for _, bond := range portfolio.Bonds {
		duration, err := ModifiedDuration(bond, asOf)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to compute duration for bond %s: %w", bond.ISIN, err)
		}
		durations = append(durations, duration)
		weights = append(weights, bond.MarketPrice.InexactFloat64()/totalValue)
	}

	return durations, weights, nil
}
