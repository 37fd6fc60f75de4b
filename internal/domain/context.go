package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AgentContext is everything a decision source gets to see: the
// agent's own portfolio, current prices and recent candles for the
// enabled assets, and the agent's standing instructions.
type AgentContext struct {
	AgentID       uuid.UUID
	ModelProvider string
	Instructions  string
	Portfolio     *Portfolio
	Prices        map[string]decimal.Decimal
	RecentCandles []Candle
}
