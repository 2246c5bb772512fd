package repository

import (
	"database/sql"
	"fmt"
	"time"

	"bondrisk/internal/db/models/postgres/public/model"
	"bondrisk/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

//go:generate mockgen -source=portfolio.repository.go -destination=mocks/portfolio.repository.go

type PortfolioRepository interface {
	Add(tx *sql.Tx, portfolio model.Portfolio, bondIDs []uuid.UUID) (*model.Portfolio, error)
	Get(portfolioID uuid.UUID) (*model.Portfolio, error)
	GetBonds(portfolioID uuid.UUID) ([]model.Bond, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{db}
}

func (h portfolioRepositoryHandler) Add(tx *sql.Tx, portfolio model.Portfolio, bondIDs []uuid.UUID) (*model.Portfolio, error) {
	portfolio.CreatedAt = time.Now().UTC()

	query := table.Portfolio.
		INSERT(table.Portfolio.MutableColumns).
		MODEL(portfolio).
		RETURNING(table.Portfolio.AllColumns)

	out := model.Portfolio{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio %s: %w", portfolio.Name, err)
	}

	if len(bondIDs) > 0 {
		rows := make([]model.PortfolioBond, 0, len(bondIDs))
		for _, bondID := range bondIDs {
			rows = append(rows, model.PortfolioBond{
				PortfolioID: out.PortfolioID,
				BondID:      bondID,
			})
		}

		memberQuery := table.PortfolioBond.
			INSERT(table.PortfolioBond.AllColumns).
			MODELS(rows)
		_, err = memberQuery.Exec(tx)
		if err != nil {
			return nil, fmt.Errorf("failed to insert portfolio members for %s: %w", portfolio.Name, err)
		}
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) Get(portfolioID uuid.UUID) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID)))

	out := model.Portfolio{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio %s: %w", portfolioID, err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) GetBonds(portfolioID uuid.UUID) ([]model.Bond, error) {
	query := postgres.
		SELECT(table.Bond.AllColumns).
		FROM(
			table.Bond.INNER_JOIN(
				table.PortfolioBond,
				table.PortfolioBond.BondID.EQ(table.Bond.BondID),
			),
		).
		WHERE(table.PortfolioBond.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(table.Bond.CreatedAt.ASC())

	out := []model.Bond{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get bonds for portfolio %s: %w", portfolioID, err)
	}

	return out, nil
}
