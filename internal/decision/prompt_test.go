package decision

import (
	"strings"
	"testing"
	"time"

	"traderace/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func candleSeries(symbol string, closes ...float64) []domain.Candle {
	// most-recent-first, matching the repository read order
	out := []domain.Candle{}
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := len(closes) - 1; i >= 0; i-- {
		out = append(out, domain.Candle{
			Symbol:       symbol,
			TimestampUTC: base.Add(time.Duration(i) * time.Hour),
			Close:        decimal.NewFromFloat(closes[i]),
		})
	}
	return out
}

func Test_buildUserPrompt(t *testing.T) {
	agentCtx := domain.AgentContext{
		AgentID: uuid.New(),
		Portfolio: &domain.Portfolio{
			Cash: decimal.NewFromInt(95_000),
			Positions: map[string]*domain.Position{
				"BTC": {Symbol: "BTC", Quantity: decimal.NewFromFloat(0.5), AverageEntryPrice: decimal.NewFromInt(40_000)},
			},
		},
		Prices: map[string]decimal.Decimal{
			"BTC": decimal.NewFromInt(42_000),
		},
		RecentCandles: candleSeries("BTC", 41_000, 41_500, 42_000),
	}

	prompt := buildUserPrompt(agentCtx)

	require.Contains(t, prompt, "Cash: $95000.00")
	require.Contains(t, prompt, "- BTC: 0.5 @ avg $40000.00 (current: $42000.00)")
	require.Contains(t, prompt, "### BTC")
	require.Contains(t, prompt, "Price: $42000.00")
}

func Test_describeMarket(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		require.Contains(t, describeMarket(nil), "no market data available")
	})

	t.Run("indicators appear with enough history", func(t *testing.T) {
		closes := make([]float64, 24)
		for i := range closes {
			closes[i] = 40_000 + float64(i)*100 // steady climb
		}

		out := describeMarket(candleSeries("BTC", closes...))

		require.Contains(t, out, "SMA(7)")
		require.Contains(t, out, "SMA(21)")
		require.Contains(t, out, "BULLISH")
		require.Contains(t, out, "RSI(14): 100.0")
		require.Contains(t, out, "1-candle return")
	})

	t.Run("short history omits indicators", func(t *testing.T) {
		out := describeMarket(candleSeries("ETH", 2_400, 2_450, 2_500))

		require.Contains(t, out, "### ETH")
		require.NotContains(t, out, "SMA(7)")
	})

	t.Run("symbols are rendered in sorted order", func(t *testing.T) {
		candles := append(
			candleSeries("ETH", 2_400, 2_500),
			candleSeries("BTC", 41_000, 42_000)...,
		)

		out := describeMarket(candles)
		require.Less(t, strings.Index(out, "### BTC"), strings.Index(out, "### ETH"))
	})
}
