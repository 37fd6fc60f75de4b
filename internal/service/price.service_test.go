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

func Test_GetLatestPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("serves from the candle store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketCandleRepository := mock_repository.NewMockMarketCandleRepository(ctrl)

		handler := priceServiceHandler{
			MarketAssetRepository:  mock_repository.NewMockMarketAssetRepository(ctrl),
			MarketCandleRepository: marketCandleRepository,
			AlpacaRepository:       mock_repository.NewMockAlpacaRepository(ctrl),
		}

		marketCandleRepository.EXPECT().LatestCloses().Return(map[string]decimal.Decimal{
			"BTC": decimal.NewFromInt(42_000),
		}, nil)

		prices, err := handler.GetLatestPrices(ctx)
		require.NoError(t, err)
		require.True(t, prices["BTC"].Equal(decimal.NewFromInt(42_000)))
	})

	t.Run("falls back to the live feed when the store is empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketCandleRepository := mock_repository.NewMockMarketCandleRepository(ctrl)
		marketAssetRepository := mock_repository.NewMockMarketAssetRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		handler := priceServiceHandler{
			MarketAssetRepository:  marketAssetRepository,
			MarketCandleRepository: marketCandleRepository,
			AlpacaRepository:       alpacaRepository,
		}

		marketCandleRepository.EXPECT().LatestCloses().Return(map[string]decimal.Decimal{}, nil)
		marketAssetRepository.EXPECT().ListEnabled().Return([]model.MarketAsset{
			{MarketAssetID: uuid.New(), Symbol: "BTC", IsEnabled: true},
		}, nil)
		alpacaRepository.EXPECT().GetLatestPrices(ctx, []string{"BTC"}).Return(map[string]domain.AssetPrice{
			"BTC": {Symbol: "BTC", Price: decimal.NewFromInt(42_500)},
		}, nil)

		prices, err := handler.GetLatestPrices(ctx)
		require.NoError(t, err)
		require.True(t, prices["BTC"].Equal(decimal.NewFromInt(42_500)))
	})
}
