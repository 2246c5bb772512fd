package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type bondYieldResponse struct {
	BondID string  `json:"bondID"`
	Yield  float64 `json:"yield"`
}

func (m ApiHandler) bondYield(c *gin.Context) {
	bondID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	asOf, err := asOfDate(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	yield, err := m.RiskService.BondYield(c, bondID, asOf)
	if err != nil {
		returnComputeError(err, c)
		return
	}

	c.JSON(200, bondYieldResponse{
		BondID: bondID.String(),
		Yield:  yield,
	})
}
