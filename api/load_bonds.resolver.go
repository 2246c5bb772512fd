package api

import (
	"time"

	"bondrisk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type bondRecord struct {
	Isin         string   `json:"isin"`
	MaturityDate string   `json:"maturityDate"`
	CouponDates  []string `json:"couponDates"`
	CouponRate   float64  `json:"couponRate"`
	FaceValue    float64  `json:"faceValue"`
	MarketPrice  *float64 `json:"marketPrice"`
}

type loadBondsResponse struct {
	Bonds []savedBondRecord `json:"bonds"`
}

type savedBondRecord struct {
	BondID string `json:"bondID"`
	Isin   string `json:"isin"`
}

func (m ApiHandler) loadBonds(c *gin.Context) {
	var records []bondRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	bonds := make([]domain.Bond, 0, len(records))
	for _, record := range records {
		bond, err := record.toDomain()
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		bonds = append(bonds, bond)
	}

	saved, err := m.RiskService.LoadBonds(c, bonds)
	if err != nil {
		returnComputeError(err, c)
		return
	}

	response := loadBondsResponse{Bonds: []savedBondRecord{}}
	for _, bond := range saved {
		response.Bonds = append(response.Bonds, savedBondRecord{
			BondID: bond.BondID.String(),
			Isin:   bond.Isin,
		})
	}

	c.JSON(200, response)
}

func (r bondRecord) toDomain() (domain.Bond, error) {
	maturityDate, err := time.Parse("2006-01-02", r.MaturityDate)
	if err != nil {
		return domain.Bond{}, err
	}

	couponDates := make([]time.Time, 0, len(r.CouponDates))
	for _, s := range r.CouponDates {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return domain.Bond{}, err
		}
		couponDates = append(couponDates, d)
	}

	bond := domain.Bond{
		ISIN:         r.Isin,
		MaturityDate: maturityDate,
		CouponDates:  couponDates,
		CouponRate:   decimal.NewFromFloat(r.CouponRate),
		FaceValue:    decimal.NewFromFloat(r.FaceValue),
	}
	if r.MarketPrice != nil {
		marketPrice := decimal.NewFromFloat(*r.MarketPrice)
		bond.MarketPrice = &marketPrice
	}

	return bond, nil
}
