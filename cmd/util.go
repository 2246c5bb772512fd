package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"bondrisk/api"
	"bondrisk/internal"
	"bondrisk/internal/repository"
	"bondrisk/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	bondRepository := repository.NewBondRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)

	riskService := service.NewRiskService(dbConn, bondRepository, portfolioRepository)

	return &api.ApiHandler{
		Db:          dbConn,
		RiskService: riskService,
	}, nil
}
