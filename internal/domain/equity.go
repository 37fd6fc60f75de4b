package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade is an append-only audit record of an order actually applied to
// the ledger. Rejected or adjusted-away quantity never produces one.
type Trade struct {
	TradeID     uuid.UUID
	PortfolioID uuid.UUID
	AssetSymbol string
	Side        TradeSide
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	ExecutedAt  time.Time
}

type EquitySnapshot struct {
	SnapshotID     uuid.UUID
	PortfolioID    uuid.UUID
	CapturedAt     time.Time
	CashValue      decimal.Decimal
	PositionsValue decimal.Decimal
	TotalValue     decimal.Decimal
	UnrealizedPnL  decimal.Decimal
	// PercentChange is measured against the immediately preceding
	// snapshot; zero for the first snapshot in history.
	PercentChange decimal.Decimal
}

type PerformanceMetrics struct {
	AgentID            uuid.UUID
	InitialValue       decimal.Decimal
	CurrentValue       decimal.Decimal
	TotalReturn        decimal.Decimal
	PercentReturn      decimal.Decimal
	MaxDrawdownPercent decimal.Decimal
	// AnnualizedVolatility is the stdev of snapshot-to-snapshot returns,
	// annualized. Nil when fewer than three snapshots exist.
	AnnualizedVolatility *float64
	TotalTrades          int
	WinningTrades        int
	LosingTrades         int
	WinRate              decimal.Decimal
	CalculatedAt         time.Time
}
