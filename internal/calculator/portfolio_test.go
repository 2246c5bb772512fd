package calculator

import (
	"testing"
	"time"

	"bondrisk/internal/domain"
	"bondrisk/internal/util"

	"github.com/stretchr/testify/require"
)

func TestPortfolioWeightedDuration(t *testing.T) {
	t.Run("single bond portfolio equals that bond's modified duration", func(t *testing.T) {
		bond := semiAnnualBond(0.05, float64Ptr(950))
		portfolio := domain.Portfolio{Name: "single", Bonds: []domain.Bond{bond}}

		weighted, err := PortfolioWeightedDuration(portfolio, asOf)
		require.NoError(t, err)

		modified, err := ModifiedDuration(bond, asOf)
		require.NoError(t, err)

		require.InDelta(t, modified, weighted, 1e-12)
	})

	t.Run("result stays between the min and max duration", func(t *testing.T) {
		shortBond := semiAnnualBond(0.05, float64Ptr(950))
		shortBond.MaturityDate = util.NewDate(2027, 1, 1)
		shortBond.CouponDates = []time.Time{}
		for i := 1; i <= 4; i++ {
			shortBond.CouponDates = append(shortBond.CouponDates, asOf.AddDate(0, 6*i, 0))
		}
		longBond := semiAnnualBond(0.04, float64Ptr(1020))

		portfolio := domain.Portfolio{Name: "mixed", Bonds: []domain.Bond{shortBond, longBond}}

		weighted, err := PortfolioWeightedDuration(portfolio, asOf)
		require.NoError(t, err)

		shortDuration, err := ModifiedDuration(shortBond, asOf)
		require.NoError(t, err)
		longDuration, err := ModifiedDuration(longBond, asOf)
		require.NoError(t, err)

		require.GreaterOrEqual(t, weighted, min(shortDuration, longDuration))
		require.LessOrEqual(t, weighted, max(shortDuration, longDuration))
	})

	t.Run("empty portfolio", func(t *testing.T) {
		portfolio := domain.Portfolio{Name: "empty"}

		_, err := PortfolioWeightedDuration(portfolio, asOf)

		var emptyPortfolio EmptyPortfolioError
		require.ErrorAs(t, err, &emptyPortfolio)
	})

	t.Run("zero total market value", func(t *testing.T) {
		bond := semiAnnualBond(0.05, float64Ptr(0))
		portfolio := domain.Portfolio{Name: "worthless", Bonds: []domain.Bond{bond}}

		_, err := PortfolioWeightedDuration(portfolio, asOf)

		var emptyPortfolio EmptyPortfolioError
		require.ErrorAs(t, err, &emptyPortfolio)
	})

	t.Run("any bond without a market price fails the portfolio", func(t *testing.T) {
		priced := semiAnnualBond(0.05, float64Ptr(950))
		unpriced := semiAnnualBond(0.05, nil)
		unpriced.ISIN = "US0000000002"

		portfolio := domain.Portfolio{Name: "partial", Bonds: []domain.Bond{priced, unpriced}}

		_, err := PortfolioWeightedDuration(portfolio, asOf)

		var missingPrice MissingMarketPriceError
		require.ErrorAs(t, err, &missingPrice)
		require.Equal(t, "US0000000002", missingPrice.ISIN)
	})

	t.Run("a matured bond fails the portfolio with its own error kind", func(t *testing.T) {
		good := semiAnnualBond(0.05, float64Ptr(950))
		matured := semiAnnualBond(0.05, float64Ptr(990))
		matured.ISIN = "US0000000003"
		matured.MaturityDate = util.NewDate(2024, 6, 1)

		portfolio := domain.Portfolio{Name: "stale", Bonds: []domain.Bond{good, matured}}

		_, err := PortfolioWeightedDuration(portfolio, asOf)

		var maturedErr BondMaturedError
		require.ErrorAs(t, err, &maturedErr)
		require.Equal(t, "US0000000003", maturedErr.ISIN)
	})
}

func TestPortfolioDurationSummary(t *testing.T) {
	t.Run("summary brackets the weighted figure", func(t *testing.T) {
		shortBond := semiAnnualBond(0.06, float64Ptr(980))
		shortBond.MaturityDate = util.NewDate(2026, 1, 1)
		shortBond.CouponDates = []time.Time{
			asOf.AddDate(0, 6, 0),
			asOf.AddDate(0, 12, 0),
		}
		longBond := semiAnnualBond(0.04, float64Ptr(1010))

		portfolio := domain.Portfolio{Name: "barbell", Bonds: []domain.Bond{shortBond, longBond}}

		summary, err := PortfolioDurationSummary(portfolio, asOf)
		require.NoError(t, err)

		weighted, err := PortfolioWeightedDuration(portfolio, asOf)
		require.NoError(t, err)

		require.InDelta(t, weighted, summary.WeightedDuration, 1e-12)
		require.Less(t, summary.MinDuration, summary.MaxDuration)
		require.GreaterOrEqual(t, summary.WeightedDuration, summary.MinDuration)
		require.LessOrEqual(t, summary.WeightedDuration, summary.MaxDuration)
		require.InDelta(t, (summary.MinDuration+summary.MaxDuration)/2, summary.MeanDuration, 1e-12)
	})

	t.Run("single bond summary degenerates to one duration", func(t *testing.T) {
		bond := semiAnnualBond(0.05, float64Ptr(1000))
		portfolio := domain.Portfolio{Name: "single", Bonds: []domain.Bond{bond}}

		summary, err := PortfolioDurationSummary(portfolio, asOf)
		require.NoError(t, err)

		require.InDelta(t, summary.MinDuration, summary.MaxDuration, 1e-12)
		require.InDelta(t, summary.MinDuration, summary.WeightedDuration, 1e-12)
	})

	t.Run("empty portfolio", func(t *testing.T) {
		_, err := PortfolioDurationSummary(domain.Portfolio{Name: "none"}, asOf)

		var emptyPortfolio EmptyPortfolioError
		require.ErrorAs(t, err, &emptyPortfolio)
	})
}
