package service

import (
	"context"
	"fmt"

	"traderace/internal/logger"
	"traderace/internal/repository"

	"github.com/shopspring/decimal"
)

// PriceService is the single read path for current prices. It serves
// from the local candle store and falls back to the live feed when the
// store has no rows yet.
type PriceService interface {
	GetLatestPrices(ctx context.Context) (map[string]decimal.Decimal, error)
}

type priceServiceHandler struct {
	MarketAssetRepository  repository.MarketAssetRepository
	MarketCandleRepository repository.MarketCandleRepository
	AlpacaRepository       repository.AlpacaRepository
}

func NewPriceService(
	marketAssetRepository repository.MarketAssetRepository,
	marketCandleRepository repository.MarketCandleRepository,
	alpacaRepository repository.AlpacaRepository,
) PriceService {
	return priceServiceHandler{
		MarketAssetRepository:  marketAssetRepository,
		MarketCandleRepository: marketCandleRepository,
		AlpacaRepository:       alpacaRepository,
	}
}

func (h priceServiceHandler) GetLatestPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	prices, err := h.MarketCandleRepository.LatestCloses()
	if err != nil {
		return nil, err
	}
	if len(prices) > 0 {
		return prices, nil
	}

	// cold store, e.g. first cycle before any ingestion has run
	logger.FromContext(ctx).Warn("candle store is empty; fetching live prices")

	assets, err := h.MarketAssetRepository.ListEnabled()
	if err != nil {
		return nil, err
	}
	symbols := make([]string, 0, len(assets))
	for _, asset := range assets {
		symbols = append(symbols, asset.Symbol)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no enabled assets configured")
	}

	live, err := h.AlpacaRepository.GetLatestPrices(ctx, symbols)
	if err != nil {
		return nil, err
	}

	out := map[string]decimal.Decimal{}
	for symbol, assetPrice := range live {
		out[symbol] = assetPrice.Price
	}
	return out, nil
}
