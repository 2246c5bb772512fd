package service

import (
	"context"
	"testing"
	"time"

	"bondrisk/internal/db/models/postgres/public/model"
	"bondrisk/internal/domain"
	mock_repository "bondrisk/internal/repository/mocks"
	"bondrisk/internal/util"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var asOf = util.NewDate(2025, 1, 1)

func decimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func bondModel(isin string, marketPrice *decimal.Decimal) model.Bond {
	return model.Bond{
		BondID:       uuid.New(),
		Isin:         isin,
		MaturityDate: util.NewDate(2030, 1, 1),
		CouponRate:   decimal.NewFromFloat(0.05),
		FaceValue:    decimal.NewFromInt(1000),
		MarketPrice:  marketPrice,
	}
}

func semiAnnualDates(years int) []time.Time {
	dates := []time.Time{}
	for i := 1; i <= years*2; i++ {
		dates = append(dates, asOf.AddDate(0, 6*i, 0))
	}
	return dates
}

func TestRiskService_BondYield(t *testing.T) {
	t.Run("discount bond yields above coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bondRepository := mock_repository.NewMockBondRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		svc := NewRiskService(nil, bondRepository, portfolioRepository)

		m := bondModel("US0000000001", decimalPtr(950))
		bondRepository.EXPECT().Get(m.BondID).Return(&m, nil)
		bondRepository.EXPECT().GetCouponDates(m.BondID).Return(semiAnnualDates(5), nil)

		yield, err := svc.BondYield(context.Background(), m.BondID, asOf)
		require.NoError(t, err)

		require.Greater(t, yield, 0.05)
	})

	t.Run("unknown bond maps to ErrNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bondRepository := mock_repository.NewMockBondRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		svc := NewRiskService(nil, bondRepository, portfolioRepository)

		id := uuid.New()
		bondRepository.EXPECT().Get(id).Return(nil, qrm.ErrNoRows)

		_, err := svc.BondYield(context.Background(), id, asOf)

		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRiskService_BondDuration(t *testing.T) {
	t.Run("modified below macaulay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bondRepository := mock_repository.NewMockBondRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		svc := NewRiskService(nil, bondRepository, portfolioRepository)

		m := bondModel("US0000000001", decimalPtr(950))
		bondRepository.EXPECT().Get(m.BondID).Return(&m, nil)
		bondRepository.EXPECT().GetCouponDates(m.BondID).Return(semiAnnualDates(5), nil)

		result, err := svc.BondDuration(context.Background(), m.BondID, asOf)
		require.NoError(t, err)

		require.Greater(t, result.MacaulayDuration, 0.0)
		require.Less(t, result.ModifiedDuration, result.MacaulayDuration)
	})
}

func TestRiskService_PortfolioDuration(t *testing.T) {
	t.Run("weighted duration within member bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bondRepository := mock_repository.NewMockBondRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		svc := NewRiskService(nil, bondRepository, portfolioRepository)

		portfolioID := uuid.New()
		portfolioRepository.EXPECT().Get(portfolioID).Return(&model.Portfolio{
			PortfolioID: portfolioID,
			Name:        "treasuries",
		}, nil)

		bondA := bondModel("US0000000001", decimalPtr(950))
		bondB := bondModel("US0000000002", decimalPtr(1020))
		portfolioRepository.EXPECT().GetBonds(portfolioID).Return([]model.Bond{bondA, bondB}, nil)
		bondRepository.EXPECT().GetCouponDates(bondA.BondID).Return(semiAnnualDates(5), nil)
		bondRepository.EXPECT().GetCouponDates(bondB.BondID).Return(semiAnnualDates(5), nil)

		result, err := svc.PortfolioDuration(context.Background(), portfolioID, asOf)
		require.NoError(t, err)

		require.Equal(t, "treasuries", result.Name)
		require.GreaterOrEqual(t, result.WeightedDuration, result.MinDuration)
		require.LessOrEqual(t, result.WeightedDuration, result.MaxDuration)
	})

	t.Run("unknown portfolio maps to ErrNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bondRepository := mock_repository.NewMockBondRepository(ctrl)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		svc := NewRiskService(nil, bondRepository, portfolioRepository)

		id := uuid.New()
		portfolioRepository.EXPECT().Get(id).Return(nil, qrm.ErrNoRows)

		_, err := svc.PortfolioDuration(context.Background(), id, asOf)

		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRiskService_LoadBonds_validation(t *testing.T) {
	newService := func(t *testing.T) RiskService {
		ctrl := gomock.NewController(t)
		return NewRiskService(
			nil,
			mock_repository.NewMockBondRepository(ctrl),
			mock_repository.NewMockPortfolioRepository(ctrl),
		)
	}

	validBond := func() domain.Bond {
		return domain.Bond{
			ISIN:         "US0000000001",
			MaturityDate: util.NewDate(2030, 1, 1),
			CouponDates:  semiAnnualDates(5),
			CouponRate:   decimal.NewFromFloat(0.05),
			FaceValue:    decimal.NewFromInt(1000),
			MarketPrice:  decimalPtr(950),
		}
	}

	t.Run("empty batch", func(t *testing.T) {
		_, err := newService(t).LoadBonds(context.Background(), nil)
		require.ErrorIs(t, err, ErrInvalidBond)
	})

	t.Run("missing isin", func(t *testing.T) {
		bond := validBond()
		bond.ISIN = ""
		_, err := newService(t).LoadBonds(context.Background(), []domain.Bond{bond})
		require.ErrorIs(t, err, ErrInvalidBond)
	})

	t.Run("non-positive coupon rate", func(t *testing.T) {
		bond := validBond()
		bond.CouponRate = decimal.Zero
		_, err := newService(t).LoadBonds(context.Background(), []domain.Bond{bond})
		require.ErrorIs(t, err, ErrInvalidBond)
	})

	t.Run("non-positive face value", func(t *testing.T) {
		bond := validBond()
		bond.FaceValue = decimal.NewFromInt(-1000)
		_, err := newService(t).LoadBonds(context.Background(), []domain.Bond{bond})
		require.ErrorIs(t, err, ErrInvalidBond)
	})

	t.Run("non-positive market price", func(t *testing.T) {
		bond := validBond()
		bond.MarketPrice = decimalPtr(0)
		_, err := newService(t).LoadBonds(context.Background(), []domain.Bond{bond})
		require.ErrorIs(t, err, ErrInvalidBond)
	})

	t.Run("market price may be absent", func(t *testing.T) {
		bond := validBond()
		bond.MarketPrice = nil
		require.NoError(t, validateBond(bond))
	})
}
