package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"traderace/api"
	"traderace/internal"
	"traderace/internal/app"
	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/decision"
	"traderace/internal/repository"
	"traderace/internal/service"

	_ "github.com/lib/pq"
)

// decisionPacerInterval spaces decision source calls process-wide.
const decisionPacerInterval = 1 * time.Second

// decisionRequestTimeout bounds one model call.
const decisionRequestTimeout = 60 * time.Second

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

	agentRepository := repository.NewAgentRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	positionRepository := repository.NewPositionRepository(dbConn)
	tradeRepository := repository.NewTradeRepository(dbConn)
	equitySnapshotRepository := repository.NewEquitySnapshotRepository(dbConn)
	marketAssetRepository := repository.NewMarketAssetRepository(dbConn)
	marketCandleRepository := repository.NewMarketCandleRepository(dbConn)
	decisionLogRepository := repository.NewDecisionLogRepository(dbConn)
	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)

	riskValidator := service.NewRiskValidator(secrets.Risk)
	portfolioService := service.NewPortfolioService(
		dbConn,
		portfolioRepository,
		positionRepository,
		tradeRepository,
		secrets.Risk,
	)
	priceService := service.NewPriceService(
		marketAssetRepository,
		marketCandleRepository,
		alpacaRepository,
	)
	contextService := service.NewContextService(
		agentRepository,
		marketAssetRepository,
		marketCandleRepository,
		portfolioService,
		priceService,
	)
	equityService := service.NewEquityService(
		agentRepository,
		equitySnapshotRepository,
		tradeRepository,
		portfolioService,
		priceService,
		secrets.Risk,
	)
	ingestionService := service.NewIngestionService(
		alpacaRepository,
		marketAssetRepository,
		marketCandleRepository,
	)

	pacer := decision.NewPacer(decisionPacerInterval)
	registry := decision.NewRegistry()
	registry.Register(string(model.ModelProvider_Echo), decision.NewEchoSource())
	if secrets.ChatGPTApiKey != "" {
		chatGptSource, err := decision.NewChatGptSource(secrets.ChatGPTApiKey, pacer, decisionRequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create chatgpt decision source: %w", err)
		}
		registry.Register(string(model.ModelProvider_Chatgpt), chatGptSource)
	}

	agentRunner := app.NewAgentRunner(
		contextService,
		registry,
		riskValidator,
		portfolioService,
		equityService,
		decisionLogRepository,
		tradeRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		AgentRunner:           agentRunner,
		AgentRepository:       agentRepository,
		DecisionLogRepository: decisionLogRepository,
		PortfolioService:      portfolioService,
		EquityService:         equityService,
		IngestionService:      ingestionService,
	}

	return apiHandler, nil
}
