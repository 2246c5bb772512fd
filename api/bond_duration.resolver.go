package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type bondDurationResponse struct {
	BondID           string  `json:"bondID"`
	MacaulayDuration float64 `json:"macaulayDuration"`
	ModifiedDuration float64 `json:"modifiedDuration"`
}

func (m ApiHandler) bondDuration(c *gin.Context) {
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

	result, err := m.RiskService.BondDuration(c, bondID, asOf)
	if err != nil {
		returnComputeError(err, c)
		return
	}

	c.JSON(200, bondDurationResponse{
		BondID:           bondID.String(),
		MacaulayDuration: result.MacaulayDuration,
		ModifiedDuration: result.ModifiedDuration,
	})
}
