package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createPortfolioRequest struct {
	Name    string   `json:"name"`
	BondIDs []string `json:"bondIDs"`
}

type createPortfolioResponse struct {
	PortfolioID string `json:"portfolioID"`
	Name        string `json:"name"`
}

func (m ApiHandler) createPortfolio(c *gin.Context) {
	var requestBody createPortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	bondIDs := make([]uuid.UUID, 0, len(requestBody.BondIDs))
	for _, s := range requestBody.BondIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		bondIDs = append(bondIDs, id)
	}

	portfolio, err := m.RiskService.CreatePortfolio(c, requestBody.Name, bondIDs)
	if err != nil {
		returnComputeError(err, c)
		return
	}

	c.JSON(200, createPortfolioResponse{
		PortfolioID: portfolio.PortfolioID.String(),
		Name:        portfolio.Name,
	})
}
