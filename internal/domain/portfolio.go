package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Portfolio is the paper-trading ledger for a single agent. It is
// mutated only by the portfolio service; everything else reads copies.
type Portfolio struct {
	PortfolioID uuid.UUID
	AgentID     uuid.UUID
	Cash        decimal.Decimal
	Positions   map[string]*Position
	AsOf        time.Time
}

func NewPortfolio(agentID uuid.UUID, startingCash decimal.Decimal) *Portfolio {
	return &Portfolio{
		PortfolioID: uuid.New(),
		AgentID:     agentID,
		Cash:        startingCash,
		Positions:   map[string]*Position{},
		AsOf:        time.Now().UTC(),
	}
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for symbol := range p.Positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func (p Portfolio) DeepCopy() *Portfolio {
	newPortfolio := &Portfolio{
		PortfolioID: p.PortfolioID,
		AgentID:     p.AgentID,
		Cash:        p.Cash,
		Positions:   map[string]*Position{},
		AsOf:        p.AsOf,
	}
	for symbol, position := range p.Positions {
		newPortfolio.Positions[symbol] = position.DeepCopy()
	}

	return newPortfolio
}

// TotalValue is cash plus the sum of quantity * current price across
// all positions. Every held symbol must appear in priceMap.
func (p Portfolio) TotalValue(priceMap map[string]decimal.Decimal) (decimal.Decimal, error) {
	totalValue := p.Cash
	for symbol, position := range p.Positions {
		price, ok := priceMap[symbol]
		if !ok {
			return decimal.Zero, fmt.Errorf("cannot compute portfolio total value: price map missing %s", symbol)
		}
		totalValue = totalValue.Add(position.Quantity.Mul(price))
	}

	return totalValue, nil
}

// UnrealizedPnL is the sum of quantity * (current price - average entry
// price). Symbols without a price contribute zero.
func (p Portfolio) UnrealizedPnL(priceMap map[string]decimal.Decimal) decimal.Decimal {
	pnl := decimal.Zero
	for symbol, position := range p.Positions {
		price, ok := priceMap[symbol]
		if !ok {
			continue
		}
		pnl = pnl.Add(position.Quantity.Mul(price.Sub(position.AverageEntryPrice)))
	}
	return pnl
}

type Position struct {
	Symbol            string
	Quantity          decimal.Decimal
	AverageEntryPrice decimal.Decimal
}

func (p Position) DeepCopy() *Position {
	return &Position{
		Symbol:            p.Symbol,
		Quantity:          p.Quantity,
		AverageEntryPrice: p.AverageEntryPrice,
	}
}
