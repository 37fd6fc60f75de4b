package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeSide string

const (
	TradeSide_Buy  TradeSide = "BUY"
	TradeSide_Sell TradeSide = "SELL"
	TradeSide_Hold TradeSide = "HOLD"
)

// TradeOrder is immutable once constructed. Adjustment during risk
// validation produces a new order, never a mutation of the original.
type TradeOrder struct {
	AssetSymbol string
	Side        TradeSide
	Quantity    decimal.Decimal
	LimitPrice  *decimal.Decimal
}

func (o TradeOrder) WithQuantity(quantity decimal.Decimal) TradeOrder {
	return TradeOrder{
		AssetSymbol: o.AssetSymbol,
		Side:        o.Side,
		Quantity:    quantity,
		LimitPrice:  o.LimitPrice,
	}
}

type AgentDecision struct {
	AgentID      uuid.UUID
	CreatedAt    time.Time
	Orders       []TradeOrder
	Rationale    *string
	CitedRuleIDs []string
}

func NewHoldDecision(agentID uuid.UUID, reason string) AgentDecision {
	return AgentDecision{
		AgentID:   agentID,
		CreatedAt: time.Now().UTC(),
		Orders:    []TradeOrder{},
		Rationale: &reason,
	}
}

type RejectedOrder struct {
	Order  TradeOrder
	Reason string
}

// ValidationOutcome is the result of risk-validating one decision.
// ValidatedDecision carries only surviving (possibly adjusted) orders;
// HasWarnings is true iff any order was rejected or adjusted.
type ValidationOutcome struct {
	ValidatedDecision AgentDecision
	RejectedOrders    []RejectedOrder
	HasWarnings       bool
}
