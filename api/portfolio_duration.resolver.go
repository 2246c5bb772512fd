package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type portfolioDurationResponse struct {
	PortfolioID      string  `json:"portfolioID"`
	Name             string  `json:"name"`
	WeightedDuration float64 `json:"weightedDuration"`
	MinDuration      float64 `json:"minDuration"`
	MaxDuration      float64 `json:"maxDuration"`
	MeanDuration     float64 `json:"meanDuration"`
}

func (m ApiHandler) portfolioDuration(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	asOf, err := asOfDate(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.RiskService.PortfolioDuration(c, portfolioID, asOf)
	if err != nil {
		returnComputeError(err, c)
		return
	}

	c.JSON(200, portfolioDurationResponse{
		PortfolioID:      result.PortfolioID.String(),
		Name:             result.Name,
		WeightedDuration: result.WeightedDuration,
		MinDuration:      result.MinDuration,
		MaxDuration:      result.MaxDuration,
		MeanDuration:     result.MeanDuration,
	})
}
