package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"traderace/internal"
	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/domain"
	"traderace/internal/logger"
	"traderace/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PortfolioService is the ledger: the only component that mutates
// persisted portfolio, position and trade state.
type PortfolioService interface {
	// GetPortfolio lazily creates the agent's portfolio with the
	// configured starting cash on first access.
	GetPortfolio(ctx context.Context, agentID uuid.UUID) (*domain.Portfolio, error)
	// ApplyDecision applies the decision's orders in list order inside
	// one transaction. Any order failure aborts the whole decision;
	// no partial writes are committed.
	ApplyDecision(ctx context.Context, agentID uuid.UUID, decision domain.AgentDecision, prices map[string]decimal.Decimal) (*domain.Portfolio, []uuid.UUID, error)
}

type portfolioServiceHandler struct {
	Db                  *sql.DB
	PortfolioRepository repository.PortfolioRepository
	PositionRepository  repository.PositionRepository
	TradeRepository     repository.TradeRepository
	StartingCash        decimal.Decimal
}

func NewPortfolioService(
	db *sql.DB,
	portfolioRepository repository.PortfolioRepository,
	positionRepository repository.PositionRepository,
	tradeRepository repository.TradeRepository,
	config internal.RiskConfig,
) PortfolioService {
	return portfolioServiceHandler{
		Db:                  db,
		PortfolioRepository: portfolioRepository,
		PositionRepository:  positionRepository,
		TradeRepository:     tradeRepository,
		StartingCash:        config.StartingCash,
	}
}

func (h portfolioServiceHandler) GetPortfolio(ctx context.Context, agentID uuid.UUID) (*domain.Portfolio, error) {
	row, err := h.PortfolioRepository.GetByAgentID(nil, agentID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		row, err = h.createPortfolio(ctx, agentID)
		if err != nil {
			return nil, err
		}
	}

	positions, err := h.PositionRepository.ListForPortfolio(nil, row.PortfolioID)
	if err != nil {
		return nil, err
	}

	return portfolioFromRows(*row, positions), nil
}

func (h portfolioServiceHandler) createPortfolio(ctx context.Context, agentID uuid.UUID) (*model.Portfolio, error) {
	logger.FromContext(ctx).Infof("creating portfolio for agent %s with starting cash %s",
		agentID, h.StartingCash)

	return h.PortfolioRepository.Add(nil, model.Portfolio{
		AgentID:      agentID,
		Cash:         h.StartingCash,
		BaseCurrency: "USD",
	})
}

func (h portfolioServiceHandler) ApplyDecision(
	ctx context.Context,
	agentID uuid.UUID,
	decision domain.AgentDecision,
	prices map[string]decimal.Decimal,
) (*domain.Portfolio, []uuid.UUID, error) {
	before, err := h.GetPortfolio(ctx, agentID)
	if err != nil {
		return nil, nil, err
	}

	after, trades, err := ApplyOrdersToPortfolio(before, decision.Orders, prices)
	if err != nil {
		return nil, nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	err = h.PortfolioRepository.UpdateCash(tx, after.PortfolioID, after.Cash)
	if err != nil {
		return nil, nil, err
	}

	// persist every symbol the decision touched: upsert survivors,
	// delete liquidated rows
	for _, symbol := range touchedSymbols(decision.Orders) {
		position, ok := after.Positions[symbol]
		if !ok {
			if _, had := before.Positions[symbol]; had {
				if err := h.PositionRepository.Delete(tx, after.PortfolioID, symbol); err != nil {
					return nil, nil, err
				}
			}
			continue
		}
		_, err = h.PositionRepository.Upsert(tx, model.Position{
			PortfolioID:       after.PortfolioID,
			Symbol:            symbol,
			Quantity:          position.Quantity,
			AverageEntryPrice: position.AverageEntryPrice,
		})
		if err != nil {
			return nil, nil, err
		}
	}

	tradeIDs := []uuid.UUID{}
	for _, trade := range trades {
		inserted, err := h.TradeRepository.Add(tx, model.Trade{
			PortfolioID: trade.PortfolioID,
			Symbol:      trade.AssetSymbol,
			Side:        tradeSideToModel(trade.Side),
			Quantity:    trade.Quantity,
			Price:       trade.Price,
			ExecutedAt:  trade.ExecutedAt,
		})
		if err != nil {
			return nil, nil, err
		}
		tradeIDs = append(tradeIDs, inserted.TradeID)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return after, tradeIDs, nil
}

// ApplyOrdersToPortfolio folds the orders over a copy of the
// portfolio, producing the resulting state and the audit trades. It
// never mutates the input. The first failing order aborts the whole
// application.
func ApplyOrdersToPortfolio(
	portfolio *domain.Portfolio,
	orders []domain.TradeOrder,
	prices map[string]decimal.Decimal,
) (*domain.Portfolio, []domain.Trade, error) {
	result := portfolio.DeepCopy()
	now := time.Now().UTC()
	trades := []domain.Trade{}

	for _, order := range orders {
		if order.Side == domain.TradeSide_Hold {
			continue
		}
		if !order.Quantity.IsPositive() {
			return nil, nil, fmt.Errorf("order quantity must be positive for %s", order.AssetSymbol)
		}

		price, err := resolveExecutionPrice(order, prices)
		if err != nil {
			return nil, nil, err
		}
		notional := order.Quantity.Mul(price)

		switch order.Side {
		case domain.TradeSide_Buy:
			if notional.GreaterThan(result.Cash) {
				return nil, nil, fmt.Errorf("cannot buy %s %s at %s with cash %s: %w",
					order.Quantity, order.AssetSymbol, price, result.Cash, domain.ErrInsufficientFunds)
			}
			result.Cash = result.Cash.Sub(notional)
			applyBuyToPosition(result, order.AssetSymbol, order.Quantity, price)

		case domain.TradeSide_Sell:
			position, ok := result.Positions[order.AssetSymbol]
			if !ok || position.Quantity.LessThan(order.Quantity) {
				return nil, nil, fmt.Errorf("cannot sell %s %s without sufficient holdings: %w",
					order.Quantity, order.AssetSymbol, domain.ErrInsufficientPosition)
			}
			result.Cash = result.Cash.Add(notional)
			position.Quantity = position.Quantity.Sub(order.Quantity)
			if !position.Quantity.IsPositive() {
				delete(result.Positions, order.AssetSymbol)
			}

		default:
			return nil, nil, fmt.Errorf("unsupported trade side '%s'", order.Side)
		}

		trades = append(trades, domain.Trade{
			PortfolioID: result.PortfolioID,
			AssetSymbol: order.AssetSymbol,
			Side:        order.Side,
			Quantity:    order.Quantity,
			Price:       price,
			ExecutedAt:  now,
		})
	}

	result.AsOf = now
	return result, trades, nil
}

// applyBuyToPosition folds a buy into the weighted-average entry
// price: newAvg = (oldQty*oldAvg + qty*price) / (oldQty + qty).
func applyBuyToPosition(portfolio *domain.Portfolio, symbol string, quantity, price decimal.Decimal) {
	position, ok := portfolio.Positions[symbol]
	if !ok {
		portfolio.Positions[symbol] = &domain.Position{
			Symbol:            symbol,
			Quantity:          quantity,
			AverageEntryPrice: price,
		}
		return
	}

	totalCost := position.Quantity.Mul(position.AverageEntryPrice).Add(quantity.Mul(price))
	totalQuantity := position.Quantity.Add(quantity)
	position.AverageEntryPrice = totalCost.Div(totalQuantity)
	position.Quantity = totalQuantity
}

func resolveExecutionPrice(order domain.TradeOrder, prices map[string]decimal.Decimal) (decimal.Decimal, error) {
	if order.LimitPrice != nil && order.LimitPrice.IsPositive() {
		return *order.LimitPrice, nil
	}
	price, ok := prices[order.AssetSymbol]
	if !ok || !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("no price available for %s; provide a limit price or ingest market data first", order.AssetSymbol)
	}
	return price, nil
}

func touchedSymbols(orders []domain.TradeOrder) []string {
	seen := map[string]bool{}
	symbols := []string{}
	for _, order := range orders {
		if order.Side == domain.TradeSide_Hold || seen[order.AssetSymbol] {
			continue
		}
		seen[order.AssetSymbol] = true
		symbols = append(symbols, order.AssetSymbol)
	}
	return symbols
}

func portfolioFromRows(row model.Portfolio, positions []model.Position) *domain.Portfolio {
	out := &domain.Portfolio{
		PortfolioID: row.PortfolioID,
		AgentID:     row.AgentID,
		Cash:        row.Cash,
		Positions:   map[string]*domain.Position{},
		AsOf:        row.ModifiedAt,
	}
	for _, position := range positions {
		out.Positions[position.Symbol] = &domain.Position{
			Symbol:            position.Symbol,
			Quantity:          position.Quantity,
			AverageEntryPrice: position.AverageEntryPrice,
		}
	}
	return out
}

func tradeSideToModel(side domain.TradeSide) model.TradeSide {
	switch side {
	case domain.TradeSide_Buy:
		return model.TradeSide_Buy
	case domain.TradeSide_Sell:
		return model.TradeSide_Sell
	}
	return model.TradeSide_Hold
}
