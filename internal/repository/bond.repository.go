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

//go:generate mockgen -source=bond.repository.go -destination=mocks/bond.repository.go

type BondRepository interface {
	Add(tx *sql.Tx, bond model.Bond, couponDates []time.Time) (*model.Bond, error)
	Get(bondID uuid.UUID) (*model.Bond, error)
	GetCouponDates(bondID uuid.UUID) ([]time.Time, error)
	List() ([]model.Bond, error)
}

type bondRepositoryHandler struct {
	Db *sql.DB
}

func NewBondRepository(db *sql.DB) BondRepository {
	return bondRepositoryHandler{db}
}

func (h bondRepositoryHandler) Add(tx *sql.Tx, bond model.Bond, couponDates []time.Time) (*model.Bond, error) {
	bond.CreatedAt = time.Now().UTC()

	query := table.Bond.
		INSERT(table.Bond.MutableColumns).
		MODEL(bond).
		RETURNING(table.Bond.AllColumns)

	out := model.Bond{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bond %s: %w", bond.Isin, err)
	}

	if len(couponDates) > 0 {
		// payment_index preserves the caller's payment order on read-back
		rows := make([]model.CouponDate, 0, len(couponDates))
		for i, d := range couponDates {
			rows = append(rows, model.CouponDate{
				BondID:       out.BondID,
				PaymentIndex: int32(i),
				CouponDate:   d,
			})
		}

		couponQuery := table.CouponDate.
			INSERT(table.CouponDate.AllColumns).
			MODELS(rows)
		_, err = couponQuery.Exec(tx)
		if err != nil {
			return nil, fmt.Errorf("failed to insert coupon dates for bond %s: %w", bond.Isin, err)
		}
	}

	return &out, nil
}

func (h bondRepositoryHandler) Get(bondID uuid.UUID) (*model.Bond, error) {
	query := table.Bond.
		SELECT(table.Bond.AllColumns).
		WHERE(table.Bond.BondID.EQ(postgres.UUID(bondID)))

	out := model.Bond{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get bond %s: %w", bondID, err)
	}

	return &out, nil
}

func (h bondRepositoryHandler) GetCouponDates(bondID uuid.UUID) ([]time.Time, error) {
	query := table.CouponDate.
		SELECT(table.CouponDate.AllColumns).
		WHERE(table.CouponDate.BondID.EQ(postgres.UUID(bondID))).
		ORDER_BY(table.CouponDate.PaymentIndex.ASC())

	rows := []model.CouponDate{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get coupon dates for bond %s: %w", bondID, err)
	}

	out := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.CouponDate)
	}

	return out, nil
}

func (h bondRepositoryHandler) List() ([]model.Bond, error) {
	query := table.Bond.
		SELECT(table.Bond.AllColumns).
		ORDER_BY(table.Bond.CreatedAt.DESC())

	out := []model.Bond{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonds: %w", err)
	}

	return out, nil
}
