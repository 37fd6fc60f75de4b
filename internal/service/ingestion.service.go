package service

import (
	"context"
	"fmt"
	"time"

	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/logger"
	"traderace/internal/repository"
)

// IngestionService pulls recent market data into the candle store so
// decision cycles and equity snapshots read from local state instead
// of the upstream feed.
type IngestionService interface {
	// IngestLatestCandles fetches recent hourly bars for every enabled
	// asset. A failure on one symbol is logged and skipped; the call
	// errors only when every symbol fails.
	IngestLatestCandles(ctx context.Context, barsPerSymbol int) (int, error)
}

type ingestionServiceHandler struct {
	AlpacaRepository       repository.AlpacaRepository
	MarketAssetRepository  repository.MarketAssetRepository
	MarketCandleRepository repository.MarketCandleRepository
}

func NewIngestionService(
	alpacaRepository repository.AlpacaRepository,
	marketAssetRepository repository.MarketAssetRepository,
	marketCandleRepository repository.MarketCandleRepository,
) IngestionService {
	return ingestionServiceHandler{
		AlpacaRepository:       alpacaRepository,
		MarketAssetRepository:  marketAssetRepository,
		MarketCandleRepository: marketCandleRepository,
	}
}

func (h ingestionServiceHandler) IngestLatestCandles(ctx context.Context, barsPerSymbol int) (int, error) {
	log := logger.FromContext(ctx)

	assets, err := h.MarketAssetRepository.ListEnabled()
	if err != nil {
		return 0, err
	}
	if len(assets) == 0 {
		return 0, fmt.Errorf("no enabled assets to ingest")
	}

	ingested := 0
	failed := 0
	for _, asset := range assets {
		if err := ctx.Err(); err != nil {
			return ingested, err
		}

		candles, err := h.AlpacaRepository.GetLatestCandles(ctx, asset.Symbol, barsPerSymbol)
		if err != nil {
			log.Warnf("failed to fetch candles for %s: %v", asset.Symbol, err)
			failed++
			continue
		}

		rows := make([]model.MarketCandle, 0, len(candles))
		for _, candle := range candles {
			rows = append(rows, model.MarketCandle{
				MarketAssetID: asset.MarketAssetID,
				TimestampUtc:  candle.TimestampUTC.UTC().Truncate(time.Second),
				Open:          candle.Open,
				High:          candle.High,
				Low:           candle.Low,
				Close:         candle.Close,
				Volume:        candle.Volume,
			})
		}

		if err := h.MarketCandleRepository.Add(nil, rows); err != nil {
			log.Warnf("failed to store candles for %s: %v", asset.Symbol, err)
			failed++
			continue
		}
		ingested += len(rows)
	}

	if failed == len(assets) {
		return 0, fmt.Errorf("candle ingestion failed for all %d assets", len(assets))
	}

	log.Infof("ingested %d candles across %d assets", ingested, len(assets)-failed)
	return ingested, nil
}
