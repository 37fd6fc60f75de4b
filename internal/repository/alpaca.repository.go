package repository

import (
	"context"
	"fmt"
	"time"

	"traderace/internal/domain"
	"traderace/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// AlpacaRepository is the external market data feed. Symbols are plain
// asset symbols ("BTC"); the crypto pair suffix is an Alpaca detail
// that never leaks out of this file.
type AlpacaRepository interface {
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]domain.AssetPrice, error)
	// GetLatestCandles returns up to count hourly bars,
	// most-recent-first. Per-symbol failures are the caller's problem;
	// a single-symbol call either succeeds or errors.
	GetLatestCandles(ctx context.Context, symbol string, count int) ([]domain.Candle, error)
}

func NewAlpacaRepository(apiKey, apiSecret, endpoint string) AlpacaRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return alpacaRepositoryHandler{
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	MdClient *marketdata.Client
}

func cryptoPair(symbol string) string {
	return symbol + "/USD"
}

func (h alpacaRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]domain.AssetPrice, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		return map[string]domain.AssetPrice{}, nil
	}

	pairs := make(map[string]string, len(symbols))
	request := []string{}
	for _, symbol := range symbols {
		pair := cryptoPair(symbol)
		pairs[pair] = symbol
		request = append(request, pair)
	}

	results, err := h.MdClient.GetLatestCryptoBars(request, marketdata.GetLatestCryptoBarRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to get latest crypto bars: %w", err)
	}

	out := map[string]domain.AssetPrice{}
	for pair, bar := range results {
		symbol, ok := pairs[pair]
		if !ok {
			log.Warnf("ignoring unrequested pair %s in crypto bar response", pair)
			continue
		}
		price := decimal.NewFromFloat(bar.Close)
		if price.IsZero() {
			return nil, fmt.Errorf("failed to get price for %s: got 0 price", symbol)
		}
		out[symbol] = domain.AssetPrice{
			Symbol: symbol,
			Price:  price,
			Date:   bar.Timestamp.UTC(),
		}
	}

	return out, nil
}

func (h alpacaRepositoryHandler) GetLatestCandles(ctx context.Context, symbol string, count int) ([]domain.Candle, error) {
	start := time.Now().UTC().Add(-time.Duration(count+1) * time.Hour)

	bars, err := h.MdClient.GetCryptoBars(cryptoPair(symbol), marketdata.GetCryptoBarsRequest{
		TimeFrame:  marketdata.OneHour,
		Start:      start,
		TotalLimit: count,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get crypto bars for %s: %w", symbol, err)
	}

	out := []domain.Candle{}
	for _, bar := range bars {
		out = append(out, domain.Candle{
			Symbol:       symbol,
			TimestampUTC: bar.Timestamp.UTC(),
			Open:         decimal.NewFromFloat(bar.Open),
			High:         decimal.NewFromFloat(bar.High),
			Low:          decimal.NewFromFloat(bar.Low),
			Close:        decimal.NewFromFloat(bar.Close),
			Volume:       decimal.NewFromFloat(bar.Volume),
		})
	}

	// alpaca returns oldest-first; callers expect most-recent-first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}
