package decision

import (
	"fmt"
	"sort"
	"strings"

	"traderace/internal/domain"

	"github.com/shopspring/decimal"
)

func buildSystemPrompt(agentCtx domain.AgentContext) string {
	sb := strings.Builder{}

	sb.WriteString("You are an AI trading agent managing a cryptocurrency paper portfolio.\n\n")
	sb.WriteString("## Your Instructions\n")
	sb.WriteString(agentCtx.Instructions)
	sb.WriteString("\n\n## Trading Rules\n")
	sb.WriteString("1. Always respond with valid JSON\n")
	sb.WriteString("2. Use \"BUY\", \"SELL\", or \"HOLD\" for side\n")
	sb.WriteString("3. Quantity must be positive\n")
	sb.WriteString("4. Use the technical indicators provided to make data-driven decisions\n")
	sb.WriteString("\n## Response Format\n")
	sb.WriteString("You MUST respond with a JSON object in this exact format:\n")
	sb.WriteString(`{
  "reasoning": "Brief explanation of your decision",
  "orders": [
    {"asset": "BTC", "side": "BUY", "quantity": 0.1}
  ],
  "cited_rules": []
}
`)
	sb.WriteString("\nIf you decide to hold (no trades), return an empty orders array.\n")

	return sb.String()
}

func buildUserPrompt(agentCtx domain.AgentContext) string {
	sb := strings.Builder{}

	sb.WriteString("## Current Portfolio\n")
	sb.WriteString(fmt.Sprintf("Cash: $%s\n", agentCtx.Portfolio.Cash.StringFixed(2)))
	if len(agentCtx.Portfolio.Positions) == 0 {
		sb.WriteString("(no positions)\n")
	}
	for _, symbol := range agentCtx.Portfolio.HeldSymbols() {
		position := agentCtx.Portfolio.Positions[symbol]
		line := fmt.Sprintf("- %s: %s @ avg $%s", symbol, position.Quantity.String(), position.AverageEntryPrice.StringFixed(2))
		if price, ok := agentCtx.Prices[symbol]; ok {
			line += fmt.Sprintf(" (current: $%s)", price.StringFixed(2))
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n## Market Data\n")
	sb.WriteString(describeMarket(agentCtx.RecentCandles))

	sb.WriteString("\nBased on this data, what trades (if any) should be made?\n")
	return sb.String()
}

// describeMarket renders per-symbol price action with a few simple
// indicators. Candles arrive most-recent-first.
func describeMarket(candles []domain.Candle) string {
	bySymbol := map[string][]domain.Candle{}
	symbols := []string{}
	for _, c := range candles {
		if _, ok := bySymbol[c.Symbol]; !ok {
			symbols = append(symbols, c.Symbol)
		}
		bySymbol[c.Symbol] = append(bySymbol[c.Symbol], c)
	}
	sort.Strings(symbols)

	if len(symbols) == 0 {
		return "(no market data available)\n"
	}

	sb := strings.Builder{}
	for _, symbol := range symbols {
		// oldest-first for indicator math
		series := bySymbol[symbol]
		closes := make([]decimal.Decimal, len(series))
		for i, c := range series {
			closes[len(series)-1-i] = c.Close
		}

		latest := closes[len(closes)-1]
		oldest := closes[0]
		sb.WriteString(fmt.Sprintf("### %s\n", symbol))
		sb.WriteString(fmt.Sprintf("- Price: $%s (%s%% over %d candles)\n",
			latest.StringFixed(2), percentChange(oldest, latest).StringFixed(2), len(closes)))

		if len(closes) >= 7 {
			sma7 := simpleMovingAverage(closes, 7)
			sb.WriteString(fmt.Sprintf("- SMA(7): $%s\n", sma7.StringFixed(2)))
			if len(closes) >= 21 {
				sma21 := simpleMovingAverage(closes, 21)
				trend := "BEARISH (SMA7 < SMA21)"
				if sma7.GreaterThan(sma21) {
					trend = "BULLISH (SMA7 > SMA21)"
				}
				sb.WriteString(fmt.Sprintf("- SMA(21): $%s\n- Trend: %s\n", sma21.StringFixed(2), trend))
			}
			if len(closes) >= 15 {
				rsi := relativeStrengthIndex(closes, 14)
				sb.WriteString(fmt.Sprintf("- RSI(14): %s\n", rsi.StringFixed(1)))
			}
			sb.WriteString(fmt.Sprintf("- 1-candle return: %s%%\n", percentChange(closes[len(closes)-2], latest).StringFixed(2)))
			sb.WriteString(fmt.Sprintf("- 7-candle return: %s%%\n", percentChange(closes[len(closes)-7], latest).StringFixed(2)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func percentChange(start, end decimal.Decimal) decimal.Decimal {
	if start.IsZero() {
		return decimal.Zero
	}
	return end.Sub(start).Div(start).Mul(decimal.NewFromInt(100))
}

func simpleMovingAverage(closes []decimal.Decimal, window int) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range closes[len(closes)-window:] {
		sum = sum.Add(c)
	}
	return sum.Div(decimal.NewFromInt(int64(window)))
}

func relativeStrengthIndex(closes []decimal.Decimal, period int) decimal.Decimal {
	gains := decimal.Zero
	losses := decimal.Zero
	start := len(closes) - period
	for i := start; i < len(closes); i++ {
		change := closes[i].Sub(closes[i-1])
		if change.IsPositive() {
			gains = gains.Add(change)
		} else {
			losses = losses.Add(change.Neg())
		}
	}
	if losses.IsZero() {
		return decimal.NewFromInt(100)
	}
	rs := gains.Div(losses)
	hundred := decimal.NewFromInt(100)
	return hundred.Sub(hundred.Div(decimal.NewFromInt(1).Add(rs)))
}
