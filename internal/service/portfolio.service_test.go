package service

import (
	"testing"
	"time"

	"traderace/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ApplyOrdersToPortfolio(t *testing.T) {
	prices := map[string]decimal.Decimal{
		"BTC": decimal.NewFromInt(42_000),
		"ETH": decimal.NewFromInt(2_500),
	}

	t.Run("buy debits cash and opens a position", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(100_000))

		result, trades, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "BTC", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromFloat(0.5)},
		}, prices)
		require.NoError(t, err)

		require.True(t, result.Cash.Equal(decimal.NewFromInt(79_000)))
		require.True(t, result.Positions["BTC"].Quantity.Equal(decimal.NewFromFloat(0.5)))
		require.True(t, result.Positions["BTC"].AverageEntryPrice.Equal(decimal.NewFromInt(42_000)))

		require.Equal(t, "", cmp.Diff(
			[]domain.Trade{
				{
					AssetSymbol: "BTC",
					Side:        domain.TradeSide_Buy,
					Quantity:    decimal.NewFromFloat(0.5),
					Price:       decimal.NewFromInt(42_000),
				},
			},
			trades,
			cmpopts.IgnoreFields(domain.Trade{}, "TradeID", "PortfolioID", "ExecutedAt"),
			cmp.Comparer(func(d1, d2 decimal.Decimal) bool {
				return d1.Equal(d2)
			}),
		))
	})

	t.Run("second buy moves the weighted average entry price", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(100_000))
		portfolio.Positions["ETH"] = &domain.Position{
			Symbol:            "ETH",
			Quantity:          decimal.NewFromInt(2),
			AverageEntryPrice: decimal.NewFromInt(2_000),
		}

		result, _, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "ETH", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromInt(2)},
		}, prices)
		require.NoError(t, err)

		// (2*2000 + 2*2500) / 4 = 2250
		avg := result.Positions["ETH"].AverageEntryPrice
		require.True(t, avg.Equal(decimal.NewFromInt(2_250)), "got %s", avg)
		require.True(t, result.Positions["ETH"].Quantity.Equal(decimal.NewFromInt(4)))

		// the average never leaves [min buy price, max buy price]
		require.True(t, avg.GreaterThanOrEqual(decimal.NewFromInt(2_000)))
		require.True(t, avg.LessThanOrEqual(decimal.NewFromInt(2_500)))
	})

	t.Run("sell credits cash and keeps the entry price", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(10_000))
		portfolio.Positions["BTC"] = &domain.Position{
			Symbol:            "BTC",
			Quantity:          decimal.NewFromInt(2),
			AverageEntryPrice: decimal.NewFromInt(40_000),
		}

		result, trades, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "BTC", Side: domain.TradeSide_Sell, Quantity: decimal.NewFromInt(1)},
		}, prices)
		require.NoError(t, err)

		require.True(t, result.Cash.Equal(decimal.NewFromInt(52_000)))
		require.True(t, result.Positions["BTC"].Quantity.Equal(decimal.NewFromInt(1)))
		require.True(t, result.Positions["BTC"].AverageEntryPrice.Equal(decimal.NewFromInt(40_000)))
		require.Len(t, trades, 1)
	})

	t.Run("selling the whole position removes it", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.Zero)
		portfolio.Positions["ETH"] = &domain.Position{
			Symbol:            "ETH",
			Quantity:          decimal.NewFromInt(1),
			AverageEntryPrice: decimal.NewFromInt(2_000),
		}

		result, _, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "ETH", Side: domain.TradeSide_Sell, Quantity: decimal.NewFromInt(1)},
		}, prices)
		require.NoError(t, err)

		require.NotContains(t, result.Positions, "ETH")
		require.True(t, result.Cash.Equal(decimal.NewFromInt(2_500)))
	})

	t.Run("buy beyond cash fails with ErrInsufficientFunds", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(100))

		_, _, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "BTC", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromInt(1)},
		}, prices)
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("sell beyond holdings fails with ErrInsufficientPosition", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(10_000))

		_, _, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "BTC", Side: domain.TradeSide_Sell, Quantity: decimal.NewFromInt(1)},
		}, prices)
		require.ErrorIs(t, err, domain.ErrInsufficientPosition)
	})

	t.Run("a failing order leaves the input untouched", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(50_000))

		_, _, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "BTC", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromFloat(0.5)}, // fine
			{AssetSymbol: "BTC", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromInt(5)},    // too big
		}, prices)
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)

		require.True(t, portfolio.Cash.Equal(decimal.NewFromInt(50_000)))
		require.Empty(t, portfolio.Positions)
	})

	t.Run("limit price wins over market price", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(10_000))
		limit := decimal.NewFromInt(2_400)

		result, trades, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "ETH", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromInt(1), LimitPrice: &limit},
		}, prices)
		require.NoError(t, err)

		require.True(t, result.Cash.Equal(decimal.NewFromInt(7_600)))
		require.True(t, trades[0].Price.Equal(limit))
	})

	t.Run("missing market price without a limit fails", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(10_000))

		_, _, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "SOL", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromInt(1)},
		}, prices)
		require.ErrorContains(t, err, "no price available for SOL")
	})

	t.Run("hold orders produce no trades", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(10_000))

		result, trades, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "BTC", Side: domain.TradeSide_Hold},
		}, prices)
		require.NoError(t, err)
		require.Empty(t, trades)
		require.True(t, result.Cash.Equal(decimal.NewFromInt(10_000)))
	})

	t.Run("round trip at one price is cash neutral", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(100_000))

		result, _, err := ApplyOrdersToPortfolio(portfolio, []domain.TradeOrder{
			{AssetSymbol: "BTC", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromFloat(0.75)},
			{AssetSymbol: "BTC", Side: domain.TradeSide_Sell, Quantity: decimal.NewFromFloat(0.75)},
		}, prices)
		require.NoError(t, err)

		require.True(t, result.Cash.Equal(decimal.NewFromInt(100_000)), "got %s", result.Cash)
		require.NotContains(t, result.Positions, "BTC")
	})

	t.Run("result carries a fresh as-of timestamp", func(t *testing.T) {
		portfolio := domain.NewPortfolio(uuid.New(), decimal.NewFromInt(10_000))
		portfolio.AsOf = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

		result, _, err := ApplyOrdersToPortfolio(portfolio, nil, prices)
		require.NoError(t, err)
		require.True(t, result.AsOf.After(portfolio.AsOf))
	})
}
