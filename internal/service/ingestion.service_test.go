package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/domain"
	mock_repository "traderace/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_IngestLatestCandles(t *testing.T) {
	ctx := context.Background()

	btcAsset := model.MarketAsset{MarketAssetID: uuid.New(), Symbol: "BTC", IsEnabled: true}
	ethAsset := model.MarketAsset{MarketAssetID: uuid.New(), Symbol: "ETH", IsEnabled: true}

	candle := domain.Candle{
		Symbol:       "BTC",
		TimestampUTC: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Open:         decimal.NewFromInt(41_500),
		High:         decimal.NewFromInt(42_100),
		Low:          decimal.NewFromInt(41_400),
		Close:        decimal.NewFromInt(42_000),
		Volume:       decimal.NewFromInt(120),
	}

	t.Run("one failing symbol is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		marketAssetRepository := mock_repository.NewMockMarketAssetRepository(ctrl)
		marketCandleRepository := mock_repository.NewMockMarketCandleRepository(ctrl)

		handler := ingestionServiceHandler{
			AlpacaRepository:       alpacaRepository,
			MarketAssetRepository:  marketAssetRepository,
			MarketCandleRepository: marketCandleRepository,
		}

		marketAssetRepository.EXPECT().ListEnabled().Return([]model.MarketAsset{btcAsset, ethAsset}, nil)
		alpacaRepository.EXPECT().GetLatestCandles(ctx, "BTC", 24).Return([]domain.Candle{candle}, nil)
		alpacaRepository.EXPECT().GetLatestCandles(ctx, "ETH", 24).Return(nil, fmt.Errorf("feed timeout"))
		marketCandleRepository.EXPECT().Add(gomock.Nil(), gomock.Len(1)).Return(nil)

		count, err := handler.IngestLatestCandles(ctx, 24)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("all symbols failing is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		marketAssetRepository := mock_repository.NewMockMarketAssetRepository(ctrl)

		handler := ingestionServiceHandler{
			AlpacaRepository:       alpacaRepository,
			MarketAssetRepository:  marketAssetRepository,
			MarketCandleRepository: mock_repository.NewMockMarketCandleRepository(ctrl),
		}

		marketAssetRepository.EXPECT().ListEnabled().Return([]model.MarketAsset{btcAsset}, nil)
		alpacaRepository.EXPECT().GetLatestCandles(ctx, "BTC", 24).Return(nil, fmt.Errorf("feed timeout"))

		_, err := handler.IngestLatestCandles(ctx, 24)
		require.ErrorContains(t, err, "failed for all 1 assets")
	})

	t.Run("no enabled assets is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketAssetRepository := mock_repository.NewMockMarketAssetRepository(ctrl)

		handler := ingestionServiceHandler{
			AlpacaRepository:       mock_repository.NewMockAlpacaRepository(ctrl),
			MarketAssetRepository:  marketAssetRepository,
			MarketCandleRepository: mock_repository.NewMockMarketCandleRepository(ctrl),
		}

		marketAssetRepository.EXPECT().ListEnabled().Return([]model.MarketAsset{}, nil)

		_, err := handler.IngestLatestCandles(ctx, 24)
		require.ErrorContains(t, err, "no enabled assets")
	})
}
