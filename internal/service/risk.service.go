package service

import (
	"context"
	"fmt"

	"traderace/internal"
	"traderace/internal/domain"
	"traderace/internal/logger"

	"github.com/shopspring/decimal"
)

// quantityPrecision is the decimal places kept when a shrink cascade
// derives a quantity from a notional cap. Division rounds half-up at
// the library's default precision, which can nudge the re-multiplied
// notional above the cap; truncating here keeps notional <= cap.
const quantityPrecision = 8

// RiskValidator enforces server-side risk policy on a proposed
// decision, independent of whatever the decision source claimed to
// respect. Pure: no I/O beyond the inputs.
type RiskValidator interface {
	Validate(ctx context.Context, decision domain.AgentDecision, portfolio domain.Portfolio, prices map[string]decimal.Decimal) domain.ValidationOutcome
}

type riskValidatorHandler struct {
	Config internal.RiskConfig
}

func NewRiskValidator(config internal.RiskConfig) RiskValidator {
	return riskValidatorHandler{Config: config}
}

// simState is the running simulated portfolio used for multi-order
// validation. Each surviving order updates it before the next order is
// checked, so validation is greedy and order-sensitive within a
// decision.
type simState struct {
	cash       decimal.Decimal
	quantities map[string]decimal.Decimal
	// totalValue is fixed at decision start; position limits are
	// computed against it, not against the simulated value.
	totalValue decimal.Decimal
}

func newSimState(portfolio domain.Portfolio, prices map[string]decimal.Decimal) simState {
	quantities := map[string]decimal.Decimal{}
	totalValue := portfolio.Cash
	for symbol, position := range portfolio.Positions {
		quantities[symbol] = position.Quantity
		if price, ok := prices[symbol]; ok {
			totalValue = totalValue.Add(position.Quantity.Mul(price))
		}
	}
	return simState{
		cash:       portfolio.Cash,
		quantities: quantities,
		totalValue: totalValue,
	}
}

func (s simState) apply(order domain.TradeOrder, price decimal.Decimal) simState {
	notional := order.Quantity.Mul(price)
	switch order.Side {
	case domain.TradeSide_Buy:
		s.cash = s.cash.Sub(notional)
		s.quantities[order.AssetSymbol] = s.quantities[order.AssetSymbol].Add(order.Quantity)
	case domain.TradeSide_Sell:
		s.cash = s.cash.Add(notional)
		s.quantities[order.AssetSymbol] = s.quantities[order.AssetSymbol].Sub(order.Quantity)
	}
	return s
}

// orderOutcome is the per-order result of the validation fold.
type orderOutcome struct {
	valid    bool
	adjusted bool
	order    domain.TradeOrder
	reason   string
}

func outcomeValid(order domain.TradeOrder) orderOutcome {
	return orderOutcome{valid: true, order: order}
}

func outcomeAdjusted(order domain.TradeOrder) orderOutcome {
	return orderOutcome{valid: true, adjusted: true, order: order}
}

func outcomeRejected(order domain.TradeOrder, reason string) orderOutcome {
	return orderOutcome{order: order, reason: reason}
}

func (h riskValidatorHandler) Validate(
	ctx context.Context,
	decision domain.AgentDecision,
	portfolio domain.Portfolio,
	prices map[string]decimal.Decimal,
) domain.ValidationOutcome {
	log := logger.FromContext(ctx)

	orders := decision.Orders
	if len(orders) > h.Config.MaxOrdersPerCycle {
		log.Warnf("agent %s submitted %d orders, truncated to %d",
			decision.AgentID, len(orders), h.Config.MaxOrdersPerCycle)
		orders = orders[:h.Config.MaxOrdersPerCycle]
	}

	allowed := h.Config.AllowedAssetSet()
	state := newSimState(portfolio, prices)

	validOrders := []domain.TradeOrder{}
	rejectedOrders := []domain.RejectedOrder{}
	anyAdjusted := false

	for _, order := range orders {
		var outcome orderOutcome
		state, outcome = h.validateOrder(state, order, allowed, prices)

		if !outcome.valid {
			rejectedOrders = append(rejectedOrders, domain.RejectedOrder{
				Order:  order,
				Reason: outcome.reason,
			})
			log.Warnf("order rejected for agent %s: %s %s %s - %s",
				decision.AgentID, order.AssetSymbol, order.Side, order.Quantity, outcome.reason)
			continue
		}

		if outcome.adjusted {
			anyAdjusted = true
			log.Infof("order adjusted for agent %s: %s %s %s -> %s",
				decision.AgentID, order.AssetSymbol, order.Side, order.Quantity, outcome.order.Quantity)
		}
		validOrders = append(validOrders, outcome.order)
	}

	return domain.ValidationOutcome{
		ValidatedDecision: domain.AgentDecision{
			AgentID:      decision.AgentID,
			CreatedAt:    decision.CreatedAt,
			Orders:       validOrders,
			Rationale:    decision.Rationale,
			CitedRuleIDs: decision.CitedRuleIDs,
		},
		RejectedOrders: rejectedOrders,
		HasWarnings:    len(rejectedOrders) > 0 || anyAdjusted,
	}
}

// validateOrder checks a single order against the simulated state and
// folds a surviving order back into it: (state, order) -> (state',
// outcome). Checks run in a fixed sequence and short-circuit on the
// first rejection.
func (h riskValidatorHandler) validateOrder(
	state simState,
	order domain.TradeOrder,
	allowed map[string]bool,
	prices map[string]decimal.Decimal,
) (simState, orderOutcome) {
	symbol := order.AssetSymbol

	if !allowed[symbol] {
		return state, outcomeRejected(order, fmt.Sprintf("asset '%s' not in allowed list", symbol))
	}

	if !order.Quantity.IsPositive() && order.Side != domain.TradeSide_Hold {
		return state, outcomeRejected(order, "quantity must be positive")
	}

	if order.Side == domain.TradeSide_Hold {
		return state, outcomeValid(order)
	}

	price, ok := prices[symbol]
	if !ok || !price.IsPositive() {
		return state, outcomeRejected(order, fmt.Sprintf("no price available for '%s'", symbol))
	}

	held := state.quantities[symbol]
	orderValue := order.Quantity.Mul(price)

	// dust prevention; a sell that liquidates the whole position is the
	// one allowed exception
	fullLiquidation := order.Side == domain.TradeSide_Sell &&
		held.IsPositive() && order.Quantity.GreaterThanOrEqual(held)
	if orderValue.LessThan(h.Config.MinOrderValue) && !fullLiquidation {
		return state, outcomeRejected(order, fmt.Sprintf(
			"order value $%s below minimum $%s", orderValue.StringFixed(2), h.Config.MinOrderValue.StringFixed(2)))
	}

	var outcome orderOutcome
	switch order.Side {
	case domain.TradeSide_Buy:
		outcome = h.validateBuy(state, order, price)
	case domain.TradeSide_Sell:
		outcome = h.validateSell(state, order, price)
	default:
		return state, outcomeRejected(order, fmt.Sprintf("unsupported trade side '%s'", order.Side))
	}

	if outcome.valid {
		state = state.apply(outcome.order, price)
	}
	return state, outcome
}

func (h riskValidatorHandler) validateBuy(state simState, order domain.TradeOrder, price decimal.Decimal) orderOutcome {
	quantity := order.Quantity
	orderValue := quantity.Mul(price)
	adjusted := false

	// 1. single-trade notional cap
	if orderValue.GreaterThan(h.Config.MaxSingleTradeValue) {
		quantity = h.Config.MaxSingleTradeValue.Div(price).RoundDown(quantityPrecision)
		orderValue = quantity.Mul(price)
		adjusted = true
	}

	// 2. cash availability, respecting the reserve
	usableCash := state.cash.Sub(h.Config.MinCashReserve)
	if orderValue.GreaterThan(usableCash) {
		if !usableCash.IsPositive() {
			return outcomeRejected(order, "insufficient cash after reserve")
		}
		quantity = usableCash.Div(price).RoundDown(quantityPrecision)
		orderValue = quantity.Mul(price)
		adjusted = true
	}

	// 3. position size limit as a share of total portfolio value
	held := state.quantities[order.AssetSymbol]
	newPositionValue := held.Add(quantity).Mul(price)
	maxPositionValue := state.totalValue.Mul(h.Config.MaxPositionSizePercent)
	if newPositionValue.GreaterThan(maxPositionValue) {
		allowedQuantity := maxPositionValue.Div(price).RoundDown(quantityPrecision).Sub(held)
		if !allowedQuantity.IsPositive() {
			return outcomeRejected(order, fmt.Sprintf("position limit reached for %s", order.AssetSymbol))
		}
		quantity = allowedQuantity
		orderValue = quantity.Mul(price)
		adjusted = true
	}

	// re-check the minimum after the shrink cascade
	if orderValue.LessThan(h.Config.MinOrderValue) {
		return outcomeRejected(order, fmt.Sprintf(
			"adjusted order value $%s below minimum", orderValue.StringFixed(2)))
	}

	if adjusted {
		return outcomeAdjusted(order.WithQuantity(quantity))
	}
	return outcomeValid(order)
}

func (h riskValidatorHandler) validateSell(state simState, order domain.TradeOrder, price decimal.Decimal) orderOutcome {
	held := state.quantities[order.AssetSymbol]
	if !held.IsPositive() {
		return outcomeRejected(order, fmt.Sprintf("no %s position to sell", order.AssetSymbol))
	}

	quantity := order.Quantity
	adjusted := false

	if !h.Config.AllowLeverage && quantity.GreaterThan(held) {
		quantity = held
		adjusted = true
	}

	// adjusted sells can shrink below the minimum unless they liquidate
	// the entire position
	orderValue := quantity.Mul(price)
	if orderValue.LessThan(h.Config.MinOrderValue) && quantity.LessThan(held) {
		return outcomeRejected(order, fmt.Sprintf(
			"order value $%s below minimum", orderValue.StringFixed(2)))
	}

	if adjusted {
		return outcomeAdjusted(order.WithQuantity(quantity))
	}
	return outcomeValid(order)
}
