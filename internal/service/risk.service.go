package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bondrisk/internal/calculator"
	"bondrisk/internal/db/models/postgres/public/model"
	"bondrisk/internal/domain"
	"bondrisk/internal/logger"
	"bondrisk/internal/repository"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// ErrNotFound marks lookups for bonds or portfolios that don't exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidBond marks bond records that fail input validation before the
// calculation engine is ever invoked.
var ErrInvalidBond = errors.New("invalid bond record")

type RiskService interface {
	LoadBonds(ctx context.Context, bonds []domain.Bond) ([]model.Bond, error)
	CreatePortfolio(ctx context.Context, name string, bondIDs []uuid.UUID) (*model.Portfolio, error)
	BondYield(ctx context.Context, bondID uuid.UUID, asOf time.Time) (float64, error)
	BondDuration(ctx context.Context, bondID uuid.UUID, asOf time.Time) (*BondDurationResult, error)
	PortfolioDuration(ctx context.Context, portfolioID uuid.UUID, asOf time.Time) (*PortfolioDurationResult, error)
}

type riskServiceHandler struct {
	Db                  *sql.DB
	BondRepository      repository.BondRepository
	PortfolioRepository repository.PortfolioRepository
}

func NewRiskService(
	db *sql.DB,
	bondRepository repository.BondRepository,
	portfolioRepository repository.PortfolioRepository,
) RiskService {
	return riskServiceHandler{
		Db:                  db,
		BondRepository:      bondRepository,
		PortfolioRepository: portfolioRepository,
	}
}

type BondDurationResult struct {
	MacaulayDuration float64
	ModifiedDuration float64
}

type PortfolioDurationResult struct {
	PortfolioID      uuid.UUID
	Name             string
	WeightedDuration float64
	MinDuration      float64
	MaxDuration      float64
	MeanDuration     float64
}

// LoadBonds validates and persists a batch of bond records in one
// transaction. Validation here covers record shape (required fields,
// positivity); the calculator re-checks only its own per-operation
// preconditions.
func (h riskServiceHandler) LoadBonds(ctx context.Context, bonds []domain.Bond) ([]model.Bond, error) {
	if len(bonds) == 0 {
		return nil, fmt.Errorf("%w: no bonds given", ErrInvalidBond)
	}
	for _, bond := range bonds {
		if err := validateBond(bond); err != nil {
			return nil, err
		}
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	saved := make([]model.Bond, 0, len(bonds))
	for _, bond := range bonds {
		out, err := h.BondRepository.Add(tx, model.Bond{
			Isin:         bond.ISIN,
			MaturityDate: bond.MaturityDate,
			CouponRate:   bond.CouponRate,
			FaceValue:    bond.FaceValue,
			MarketPrice:  bond.MarketPrice,
		}, bond.CouponDates)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *out)
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infof("loaded %d bonds", len(saved))

	return saved, nil
}

func (h riskServiceHandler) CreatePortfolio(ctx context.Context, name string, bondIDs []uuid.UUID) (*model.Portfolio, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: portfolio name is required", ErrInvalidBond)
	}

	// fail fast on unknown members instead of bubbling an fk violation
	for _, bondID := range bondIDs {
		_, err := h.BondRepository.Get(bondID)
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, fmt.Errorf("bond %s: %w", bondID, ErrNotFound)
		} else if err != nil {
			return nil, err
		}
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out, err := h.PortfolioRepository.Add(tx, model.Portfolio{Name: name}, bondIDs)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infof("created portfolio %s with %d bonds", out.PortfolioID, len(bondIDs))

	return out, nil
}

func (h riskServiceHandler) BondYield(ctx context.Context, bondID uuid.UUID, asOf time.Time) (float64, error) {
	bond, err := h.getBond(bondID)
	if err != nil {
		return 0, err
	}

	return calculator.EstimateYield(*bond, asOf)
}

func (h riskServiceHandler) BondDuration(ctx context.Context, bondID uuid.UUID, asOf time.Time) (*BondDurationResult, error) {
	bond, err := h.getBond(bondID)
	if err != nil {
		return nil, err
	}

	macaulay, err := calculator.MacaulayDuration(*bond, asOf)
	if err != nil {
		return nil, err
	}
	modified, err := calculator.ModifiedDuration(*bond, asOf)
	if err != nil {
		return nil, err
	}

	return &BondDurationResult{
		MacaulayDuration: macaulay,
		ModifiedDuration: modified,
	}, nil
}

func (h riskServiceHandler) PortfolioDuration(ctx context.Context, portfolioID uuid.UUID, asOf time.Time) (*PortfolioDurationResult, error) {
	portfolioModel, err := h.PortfolioRepository.Get(portfolioID)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("portfolio %s: %w", portfolioID, ErrNotFound)
	} else if err != nil {
		return nil, err
	}

	bondModels, err := h.PortfolioRepository.GetBonds(portfolioID)
	if err != nil {
		return nil, err
	}

	bonds := make([]domain.Bond, 0, len(bondModels))
	for _, m := range bondModels {
		couponDates, err := h.BondRepository.GetCouponDates(m.BondID)
		if err != nil {
			return nil, err
		}
		bonds = append(bonds, toDomainBond(m, couponDates))
	}

	summary, err := calculator.PortfolioDurationSummary(domain.Portfolio{
		Name:  portfolioModel.Name,
		Bonds: bonds,
	}, asOf)
	if err != nil {
		return nil, err
	}

	return &PortfolioDurationResult{
		PortfolioID:      portfolioModel.PortfolioID,
		Name:             portfolioModel.Name,
		WeightedDuration: summary.WeightedDuration,
		MinDuration:      summary.MinDuration,
		MaxDuration:      summary.MaxDuration,
		MeanDuration:     summary.MeanDuration,
	}, nil
}

func (h riskServiceHandler) getBond(bondID uuid.UUID) (*domain.Bond, error) {
	m, err := h.BondRepository.Get(bondID)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("bond %s: %w", bondID, ErrNotFound)
	} else if err != nil {
		return nil, err
	}

	couponDates, err := h.BondRepository.GetCouponDates(bondID)
	if err != nil {
		return nil, err
	}

	bond := toDomainBond(*m, couponDates)
	return &bond, nil
}

func toDomainBond(m model.Bond, couponDates []time.Time) domain.Bond {
	return domain.Bond{
		ISIN:         m.Isin,
		MaturityDate: m.MaturityDate,
		CouponDates:  couponDates,
		CouponRate:   m.CouponRate,
		FaceValue:    m.FaceValue,
		MarketPrice:  m.MarketPrice,
	}
}

func validateBond(bond domain.Bond) error {
	if bond.ISIN == "" {
		return fmt.Errorf("%w: isin is required", ErrInvalidBond)
	}
	if bond.MaturityDate.IsZero() {
		return fmt.Errorf("%w: bond %s is missing a maturity date", ErrInvalidBond, bond.ISIN)
	}
	if !bond.CouponRate.IsPositive() {
		return fmt.Errorf("%w: bond %s coupon rate must be positive", ErrInvalidBond, bond.ISIN)
	}
	if !bond.FaceValue.IsPositive() {
		return fmt.Errorf("%w: bond %s face value must be positive", ErrInvalidBond, bond.ISIN)
	}
	if bond.MarketPrice != nil && !bond.MarketPrice.IsPositive() {
		return fmt.Errorf("%w: bond %s market price must be positive when set", ErrInvalidBond, bond.ISIN)
	}
	return nil
}
