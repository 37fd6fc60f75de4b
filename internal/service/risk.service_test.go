package service

import (
	"context"
	"testing"
	"time"

	"traderace/internal"
	"traderace/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testPrices() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"BTC": decimal.NewFromInt(42_000),
		"ETH": decimal.NewFromInt(2_500),
	}
}

func testPortfolio(cash decimal.Decimal, positions map[string]*domain.Position) domain.Portfolio {
	if positions == nil {
		positions = map[string]*domain.Position{}
	}
	return domain.Portfolio{
		PortfolioID: uuid.New(),
		AgentID:     uuid.New(),
		Cash:        cash,
		Positions:   positions,
		AsOf:        time.Now().UTC(),
	}
}

func decisionWith(orders ...domain.TradeOrder) domain.AgentDecision {
	return domain.AgentDecision{
		AgentID:   uuid.New(),
		CreatedAt: time.Now().UTC(),
		Orders:    orders,
	}
}

func Test_Validate(t *testing.T) {
	ctx := context.Background()
	handler := riskValidatorHandler{Config: internal.DefaultRiskConfig()}

	t.Run("buy with insufficient cash is rejected", func(t *testing.T) {
		portfolio := testPortfolio(decimal.NewFromInt(100), nil)

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "BTC",
			Side:        domain.TradeSide_Buy,
			Quantity:    decimal.NewFromFloat(2.5),
		}), portfolio, testPrices())

		require.Empty(t, out.ValidatedDecision.Orders)
		require.Len(t, out.RejectedOrders, 1)
		require.Contains(t, out.RejectedOrders[0].Reason, "insufficient cash")
		require.True(t, out.HasWarnings)
	})

	t.Run("buy shrinks to fit cash after reserve", func(t *testing.T) {
		// 50k cash, 100 reserve, but the notional cap bites first:
		// 2.5 BTC * 42000 = 105000 -> capped at 5000
		portfolio := testPortfolio(decimal.NewFromInt(50_000), nil)

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "BTC",
			Side:        domain.TradeSide_Buy,
			Quantity:    decimal.NewFromFloat(2.5),
		}), portfolio, testPrices())

		require.Len(t, out.ValidatedDecision.Orders, 1)
		require.Empty(t, out.RejectedOrders)
		require.True(t, out.HasWarnings)

		adjusted := out.ValidatedDecision.Orders[0]
		notional := adjusted.Quantity.Mul(decimal.NewFromInt(42_000))
		require.True(t, notional.LessThanOrEqual(decimal.NewFromInt(5_000)),
			"notional %s exceeds single trade cap", notional)
	})

	t.Run("buy shrinks to usable cash when below the cap", func(t *testing.T) {
		config := internal.DefaultRiskConfig()
		config.MaxSingleTradeValue = decimal.NewFromInt(100_000)
		handler := riskValidatorHandler{Config: config}

		portfolio := testPortfolio(decimal.NewFromInt(50_000), nil)

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "BTC",
			Side:        domain.TradeSide_Buy,
			Quantity:    decimal.NewFromFloat(2.5),
		}), portfolio, testPrices())

		require.Len(t, out.ValidatedDecision.Orders, 1)
		require.True(t, out.HasWarnings)

		notional := out.ValidatedDecision.Orders[0].Quantity.Mul(decimal.NewFromInt(42_000))
		require.True(t, notional.LessThanOrEqual(decimal.NewFromInt(49_900)),
			"notional %s must leave the 100 reserve untouched", notional)

		// division rounding must never let the spend creep past the reserve
		remaining := decimal.NewFromInt(50_000).Sub(notional)
		require.True(t, remaining.GreaterThanOrEqual(decimal.NewFromInt(100)),
			"remaining cash %s dips below the reserve", remaining)
	})

	t.Run("sell of more than held shrinks to held quantity", func(t *testing.T) {
		portfolio := testPortfolio(decimal.NewFromInt(1_000), map[string]*domain.Position{
			"BTC": {Symbol: "BTC", Quantity: decimal.NewFromInt(1), AverageEntryPrice: decimal.NewFromInt(40_000)},
		})

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "BTC",
			Side:        domain.TradeSide_Sell,
			Quantity:    decimal.NewFromInt(2),
		}), portfolio, testPrices())

		require.Len(t, out.ValidatedDecision.Orders, 1)
		require.True(t, out.ValidatedDecision.Orders[0].Quantity.Equal(decimal.NewFromInt(1)))
		require.True(t, out.HasWarnings)
	})

	t.Run("sell with no position is rejected", func(t *testing.T) {
		portfolio := testPortfolio(decimal.NewFromInt(10_000), nil)

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "ETH",
			Side:        domain.TradeSide_Sell,
			Quantity:    decimal.NewFromInt(1),
		}), portfolio, testPrices())

		require.Empty(t, out.ValidatedDecision.Orders)
		require.Len(t, out.RejectedOrders, 1)
		require.Contains(t, out.RejectedOrders[0].Reason, "no ETH position")
	})

	t.Run("orders beyond the per-cycle cap are dropped silently", func(t *testing.T) {
		config := internal.DefaultRiskConfig()
		config.MaxOrdersPerCycle = 2
		handler := riskValidatorHandler{Config: config}

		portfolio := testPortfolio(decimal.NewFromInt(100_000), nil)

		order := domain.TradeOrder{
			AssetSymbol: "ETH",
			Side:        domain.TradeSide_Buy,
			Quantity:    decimal.NewFromFloat(0.5),
		}
		out := handler.Validate(ctx, decisionWith(order, order, order, order), portfolio, testPrices())

		require.Len(t, out.ValidatedDecision.Orders, 2)
		require.Empty(t, out.RejectedOrders)
		require.False(t, out.HasWarnings)
	})

	t.Run("disallowed asset rejected, later order still validated", func(t *testing.T) {
		portfolio := testPortfolio(decimal.NewFromInt(100_000), nil)

		out := handler.Validate(ctx, decisionWith(
			domain.TradeOrder{AssetSymbol: "DOGE", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromInt(1000)},
			domain.TradeOrder{AssetSymbol: "BTC", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromFloat(0.1)},
		), portfolio, testPrices())

		require.Len(t, out.ValidatedDecision.Orders, 1)
		require.Equal(t, "BTC", out.ValidatedDecision.Orders[0].AssetSymbol)
		require.Len(t, out.RejectedOrders, 1)
		require.Contains(t, out.RejectedOrders[0].Reason, "'DOGE' not in allowed list")
		require.True(t, out.HasWarnings)
	})

	t.Run("position limit caps the buy against starting total value", func(t *testing.T) {
		config := internal.DefaultRiskConfig()
		config.MaxSingleTradeValue = decimal.NewFromInt(1_000_000)
		handler := riskValidatorHandler{Config: config}

		portfolio := testPortfolio(decimal.NewFromInt(100_000), nil)

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "BTC",
			Side:        domain.TradeSide_Buy,
			Quantity:    decimal.NewFromInt(2),
		}), portfolio, testPrices())

		require.Len(t, out.ValidatedDecision.Orders, 1)
		require.True(t, out.HasWarnings)

		// 50% of the 100k portfolio = 50000 -> at most ~1.19 BTC
		notional := out.ValidatedDecision.Orders[0].Quantity.Mul(decimal.NewFromInt(42_000))
		require.True(t, notional.LessThanOrEqual(decimal.NewFromInt(50_000)))
	})

	t.Run("buy at an existing position limit is rejected", func(t *testing.T) {
		config := internal.DefaultRiskConfig()
		config.MaxSingleTradeValue = decimal.NewFromInt(1_000_000)
		handler := riskValidatorHandler{Config: config}

		// BTC position alone is 42k of an 52k portfolio, beyond 50%
		portfolio := testPortfolio(decimal.NewFromInt(10_000), map[string]*domain.Position{
			"BTC": {Symbol: "BTC", Quantity: decimal.NewFromInt(1), AverageEntryPrice: decimal.NewFromInt(40_000)},
		})

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "BTC",
			Side:        domain.TradeSide_Buy,
			Quantity:    decimal.NewFromFloat(0.1),
		}), portfolio, testPrices())

		require.Empty(t, out.ValidatedDecision.Orders)
		require.Len(t, out.RejectedOrders, 1)
		require.Contains(t, out.RejectedOrders[0].Reason, "position limit reached")
	})

	t.Run("dust buy is rejected", func(t *testing.T) {
		portfolio := testPortfolio(decimal.NewFromInt(100_000), nil)

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "ETH",
			Side:        domain.TradeSide_Buy,
			Quantity:    decimal.NewFromFloat(0.001), // $2.50
		}), portfolio, testPrices())

		require.Empty(t, out.ValidatedDecision.Orders)
		require.Len(t, out.RejectedOrders, 1)
		require.Contains(t, out.RejectedOrders[0].Reason, "below minimum")
	})

	t.Run("dust sell allowed when it liquidates the whole position", func(t *testing.T) {
		portfolio := testPortfolio(decimal.NewFromInt(1_000), map[string]*domain.Position{
			"ETH": {Symbol: "ETH", Quantity: decimal.NewFromFloat(0.002), AverageEntryPrice: decimal.NewFromInt(2_000)},
		})

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "ETH",
			Side:        domain.TradeSide_Sell,
			Quantity:    decimal.NewFromFloat(0.002), // $5, below the $10 floor
		}), portfolio, testPrices())

		require.Len(t, out.ValidatedDecision.Orders, 1)
		require.Empty(t, out.RejectedOrders)
		require.False(t, out.HasWarnings)
	})

	t.Run("hold passes untouched", func(t *testing.T) {
		portfolio := testPortfolio(decimal.NewFromInt(100_000), nil)

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "BTC",
			Side:        domain.TradeSide_Hold,
		}), portfolio, testPrices())

		require.Len(t, out.ValidatedDecision.Orders, 1)
		require.False(t, out.HasWarnings)
	})

	t.Run("missing price rejects the order", func(t *testing.T) {
		portfolio := testPortfolio(decimal.NewFromInt(100_000), nil)

		out := handler.Validate(ctx, decisionWith(domain.TradeOrder{
			AssetSymbol: "ETH",
			Side:        domain.TradeSide_Buy,
			Quantity:    decimal.NewFromInt(1),
		}), portfolio, map[string]decimal.Decimal{"BTC": decimal.NewFromInt(42_000)})

		require.Empty(t, out.ValidatedDecision.Orders)
		require.Contains(t, out.RejectedOrders[0].Reason, "no price available")
	})

	t.Run("earlier buy consumes cash seen by the next order", func(t *testing.T) {
		config := internal.DefaultRiskConfig()
		config.MaxSingleTradeValue = decimal.NewFromInt(1_000_000)
		config.MaxPositionSizePercent = decimal.NewFromInt(1)
		handler := riskValidatorHandler{Config: config}

		portfolio := testPortfolio(decimal.NewFromInt(10_000), nil)

		out := handler.Validate(ctx, decisionWith(
			domain.TradeOrder{AssetSymbol: "ETH", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromInt(3)}, // 7500
			domain.TradeOrder{AssetSymbol: "ETH", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromInt(2)}, // wants 5000, only 2400 usable
		), portfolio, testPrices())

		require.Len(t, out.ValidatedDecision.Orders, 2)
		require.True(t, out.HasWarnings)

		second := out.ValidatedDecision.Orders[1]
		require.True(t, second.Quantity.Mul(decimal.NewFromInt(2_500)).
			LessThanOrEqual(decimal.NewFromInt(2_400)))
	})

	t.Run("rationale and created-at survive validation", func(t *testing.T) {
		portfolio := testPortfolio(decimal.NewFromInt(100_000), nil)
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		rationale := "momentum looks strong"
		decision := domain.AgentDecision{
			AgentID:      uuid.New(),
			CreatedAt:    createdAt,
			Rationale:    &rationale,
			CitedRuleIDs: []string{"max-position-size"},
			Orders: []domain.TradeOrder{
				{AssetSymbol: "BTC", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromFloat(0.1)},
			},
		}

		out := handler.Validate(ctx, decision, portfolio, testPrices())

		require.Equal(t, createdAt, out.ValidatedDecision.CreatedAt)
		require.Equal(t, &rationale, out.ValidatedDecision.Rationale)
		require.Equal(t, []string{"max-position-size"}, out.ValidatedDecision.CitedRuleIDs)
	})
}
