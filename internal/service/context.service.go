package service

import (
	"context"

	"traderace/internal/domain"
	"traderace/internal/logger"
	"traderace/internal/repository"

	"github.com/google/uuid"
)

// recentCandleCount bounds how much market history a decision source
// sees per asset.
const recentCandleCount = 24

// ContextService assembles the market and portfolio view handed to a
// decision source.
type ContextService interface {
	// BuildContext fails hard on unknown or inactive agents; stale or
	// missing market data for individual assets only narrows the view.
	BuildContext(ctx context.Context, agentID uuid.UUID) (*domain.AgentContext, error)
}

type contextServiceHandler struct {
	AgentRepository        repository.AgentRepository
	MarketAssetRepository  repository.MarketAssetRepository
	MarketCandleRepository repository.MarketCandleRepository
	PortfolioService       PortfolioService
	PriceService           PriceService
}

func NewContextService(
	agentRepository repository.AgentRepository,
	marketAssetRepository repository.MarketAssetRepository,
	marketCandleRepository repository.MarketCandleRepository,
	portfolioService PortfolioService,
	priceService PriceService,
) ContextService {
	return contextServiceHandler{
		AgentRepository:        agentRepository,
		MarketAssetRepository:  marketAssetRepository,
		MarketCandleRepository: marketCandleRepository,
		PortfolioService:       portfolioService,
		PriceService:           priceService,
	}
}

func (h contextServiceHandler) BuildContext(ctx context.Context, agentID uuid.UUID) (*domain.AgentContext, error) {
	agent, err := h.AgentRepository.Get(agentID)
	if err != nil {
		return nil, err
	}

	portfolio, err := h.PortfolioService.GetPortfolio(ctx, agentID)
	if err != nil {
		return nil, err
	}

	prices, err := h.PriceService.GetLatestPrices(ctx)
	if err != nil {
		return nil, err
	}

	assets, err := h.MarketAssetRepository.ListEnabled()
	if err != nil {
		return nil, err
	}

	candles := []domain.Candle{}
	for _, asset := range assets {
		recent, err := h.MarketCandleRepository.ListLatest(asset.Symbol, recentCandleCount)
		if err != nil {
			logger.FromContext(ctx).Warnf("no candle history for %s: %v", asset.Symbol, err)
			continue
		}
		candles = append(candles, recent...)
	}

	return &domain.AgentContext{
		AgentID:       agent.AgentID,
		ModelProvider: string(agent.ModelProvider),
		Instructions:  agent.Instructions,
		Portfolio:     portfolio,
		Prices:        prices,
		RecentCandles: candles,
	}, nil
}
