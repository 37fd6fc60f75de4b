package repository

import (
	"database/sql"
	"fmt"
	"sync"

	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/db/models/postgres/public/table"
	"traderace/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

type MarketCandleRepository interface {
	Add(tx *sql.Tx, candles []model.MarketCandle) error
	// LatestCloses returns the most recent close per enabled symbol.
	LatestCloses() (map[string]decimal.Decimal, error)
	// ListLatest returns up to n candles for the symbol,
	// most-recent-first.
	ListLatest(symbol string, n int) ([]domain.Candle, error)
	InvalidateCache()
}

func NewMarketCandleRepository(db *sql.DB) MarketCandleRepository {
	return &marketCandleRepositoryHandler{
		Db:        db,
		cacheLock: &sync.RWMutex{},
	}
}

type marketCandleRepositoryHandler struct {
	Db *sql.DB

	// latest-close cache; repopulated whenever ingestion writes new
	// candles
	cacheLock   *sync.RWMutex
	closesCache map[string]decimal.Decimal
}

func (h *marketCandleRepositoryHandler) InvalidateCache() {
	h.cacheLock.Lock()
	h.closesCache = nil
	h.cacheLock.Unlock()
}

func (h *marketCandleRepositoryHandler) Add(tx *sql.Tx, candles []model.MarketCandle) error {
	if len(candles) == 0 {
		return nil
	}

	query := table.MarketCandle.
		INSERT(table.MarketCandle.MutableColumns).
		MODELS(candles).
		ON_CONFLICT(table.MarketCandle.MarketAssetID, table.MarketCandle.TimestampUtc).
		DO_UPDATE(postgres.SET(
			table.MarketCandle.Close.SET(table.MarketCandle.EXCLUDED.Close),
			table.MarketCandle.High.SET(table.MarketCandle.EXCLUDED.High),
			table.MarketCandle.Low.SET(table.MarketCandle.EXCLUDED.Low),
			table.MarketCandle.Volume.SET(table.MarketCandle.EXCLUDED.Volume),
		))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add market candles: %w", err)
	}

	h.InvalidateCache()
	return nil
}

func (h *marketCandleRepositoryHandler) LatestCloses() (map[string]decimal.Decimal, error) {
	h.cacheLock.RLock()
	if h.closesCache != nil {
		out := make(map[string]decimal.Decimal, len(h.closesCache))
		for symbol, price := range h.closesCache {
			out[symbol] = price
		}
		h.cacheLock.RUnlock()
		return out, nil
	}
	h.cacheLock.RUnlock()

	candle := table.MarketCandle
	asset := table.MarketAsset

	query := postgres.
		SELECT(
			asset.Symbol,
			candle.Close,
			candle.TimestampUtc,
		).
		DISTINCT(candle.MarketAssetID).
		FROM(candle.INNER_JOIN(asset, candle.MarketAssetID.EQ(asset.MarketAssetID))).
		WHERE(asset.IsEnabled.IS_TRUE()).
		ORDER_BY(candle.MarketAssetID.ASC(), candle.TimestampUtc.DESC())

	rows := []struct {
		model.MarketAsset
		model.MarketCandle
	}{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest closes: %w", err)
	}

	out := map[string]decimal.Decimal{}
	for _, row := range rows {
		out[row.MarketAsset.Symbol] = row.MarketCandle.Close
	}

	h.cacheLock.Lock()
	h.closesCache = out
	h.cacheLock.Unlock()

	copied := make(map[string]decimal.Decimal, len(out))
	for symbol, price := range out {
		copied[symbol] = price
	}
	return copied, nil
}

func (h *marketCandleRepositoryHandler) ListLatest(symbol string, n int) ([]domain.Candle, error) {
	candle := table.MarketCandle
	asset := table.MarketAsset

	query := postgres.
		SELECT(candle.AllColumns, asset.Symbol).
		FROM(candle.INNER_JOIN(asset, candle.MarketAssetID.EQ(asset.MarketAssetID))).
		WHERE(asset.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(candle.TimestampUtc.DESC()).
		LIMIT(int64(n))

	rows := []struct {
		model.MarketCandle
		model.MarketAsset
	}{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list candles for %s: %w", symbol, err)
	}

	out := []domain.Candle{}
	for _, row := range rows {
		out = append(out, domain.Candle{
			Symbol:       row.MarketAsset.Symbol,
			TimestampUTC: row.MarketCandle.TimestampUtc,
			Open:         row.MarketCandle.Open,
			High:         row.MarketCandle.High,
			Low:          row.MarketCandle.Low,
			Close:        row.MarketCandle.Close,
			Volume:       row.MarketCandle.Volume,
		})
	}

	return out, nil
}
