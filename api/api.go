package api

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bondrisk/internal/calculator"
	"bondrisk/internal/logger"
	"bondrisk/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db          *sql.DB
	RiskService service.RiskService
}

func (m ApiHandler) StartApi(port int) error {
	router := m.Router()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	lg := logger.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(logger.ContextKey, lg)
		ctx.Next()
	})

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to bondrisk"})
	})
	router.POST("/bonds/load", m.loadBonds)
	router.POST("/portfolios", m.createPortfolio)
	router.GET("/bonds/:id/ytm", m.bondYield)
	router.GET("/bonds/:id/duration", m.bondDuration)
	router.GET("/portfolios/:id/duration", m.portfolioDuration)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnComputeError maps engine precondition failures to 400, unknown
// records to 404, and anything else to 500. The engine itself has no
// notion of status codes.
func returnComputeError(err error, c *gin.Context) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		returnErrorJsonCode(err, c, 404)
	case errors.Is(err, service.ErrInvalidBond) || isPreconditionError(err):
		returnErrorJsonCode(err, c, 400)
	default:
		returnErrorJson(err, c)
	}
}

func isPreconditionError(err error) bool {
	var (
		missingPrice   calculator.MissingMarketPriceError
		matured        calculator.BondMaturedError
		badSchedule    calculator.InvalidScheduleError
		emptyPortfolio calculator.EmptyPortfolioError
		degenerate     calculator.DegenerateCashFlowError
	)
	return errors.As(err, &missingPrice) ||
		errors.As(err, &matured) ||
		errors.As(err, &badSchedule) ||
		errors.As(err, &emptyPortfolio) ||
		errors.As(err, &degenerate)
}

// asOfDate resolves the evaluation date for a request: the optional asOf
// query param, or the current date. This is the only place "now" is read;
// the engine always receives it as a parameter.
func asOfDate(c *gin.Context) (time.Time, error) {
	param := c.Query("asOf")
	if param == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", param)
}
