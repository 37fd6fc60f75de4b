package service

import (
	"context"
	"testing"

	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/domain"
	mock_repository "traderace/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_BuildContext(t *testing.T) {
	ctx := context.Background()
	agentID := uuid.New()

	t.Run("unknown agent is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		agentRepository := mock_repository.NewMockAgentRepository(ctrl)

		handler := contextServiceHandler{
			AgentRepository: agentRepository,
		}

		agentRepository.EXPECT().Get(agentID).Return(nil, domain.ErrAgentNotFound)

		_, err := handler.BuildContext(ctx, agentID)
		require.ErrorIs(t, err, domain.ErrAgentNotFound)
	})

	t.Run("assembles portfolio, prices and candles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		agentRepository := mock_repository.NewMockAgentRepository(ctrl)
		marketAssetRepository := mock_repository.NewMockMarketAssetRepository(ctrl)
		marketCandleRepository := mock_repository.NewMockMarketCandleRepository(ctrl)

		portfolio := &domain.Portfolio{
			PortfolioID: uuid.New(),
			AgentID:     agentID,
			Cash:        decimal.NewFromInt(100_000),
			Positions:   map[string]*domain.Position{},
		}
		handler := contextServiceHandler{
			AgentRepository:        agentRepository,
			MarketAssetRepository:  marketAssetRepository,
			MarketCandleRepository: marketCandleRepository,
			PortfolioService:       &fakePortfolioService{portfolio: portfolio},
			PriceService:           fakePriceService{prices: map[string]decimal.Decimal{"BTC": decimal.NewFromInt(42_000)}},
		}

		agentRepository.EXPECT().Get(agentID).Return(&model.Agent{
			AgentID:       agentID,
			Name:          "test agent",
			ModelProvider: model.ModelProvider_Echo,
			Instructions:  "hold everything",
			IsActive:      true,
		}, nil)
		marketAssetRepository.EXPECT().ListEnabled().Return([]model.MarketAsset{
			{MarketAssetID: uuid.New(), Symbol: "BTC", IsEnabled: true},
		}, nil)
		marketCandleRepository.EXPECT().ListLatest("BTC", recentCandleCount).Return([]domain.Candle{
			{Symbol: "BTC", Close: decimal.NewFromInt(42_000)},
		}, nil)

		agentContext, err := handler.BuildContext(ctx, agentID)
		require.NoError(t, err)

		require.Equal(t, agentID, agentContext.AgentID)
		require.Equal(t, "echo", agentContext.ModelProvider)
		require.Equal(t, "hold everything", agentContext.Instructions)
		require.Same(t, portfolio, agentContext.Portfolio)
		require.Len(t, agentContext.RecentCandles, 1)
		require.True(t, agentContext.Prices["BTC"].Equal(decimal.NewFromInt(42_000)))
	})
}

type fakePriceService struct {
	prices map[string]decimal.Decimal
}

func (f fakePriceService) GetLatestPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	return f.prices, nil
}
