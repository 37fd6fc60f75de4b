package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"traderace/internal"
	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/domain"
	"traderace/internal/logger"
	"traderace/internal/repository"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// EquityService snapshots portfolio value over time and derives
// performance metrics from the snapshot and trade history.
type EquityService interface {
	CaptureSnapshot(ctx context.Context, agentID uuid.UUID) (*domain.EquitySnapshot, error)
	// CaptureAllSnapshots snapshots every active agent under one batch
	// id so all rows in the batch share a comparable capture moment.
	CaptureAllSnapshots(ctx context.Context) ([]domain.EquitySnapshot, error)
	GetEquityCurve(ctx context.Context, agentID uuid.UUID, from, to *time.Time) ([]domain.EquitySnapshot, error)
	CalculatePerformance(ctx context.Context, agentID uuid.UUID) (*domain.PerformanceMetrics, error)
}

type equityServiceHandler struct {
	AgentRepository          repository.AgentRepository
	EquitySnapshotRepository repository.EquitySnapshotRepository
	TradeRepository          repository.TradeRepository
	PortfolioService         PortfolioService
	PriceService             PriceService
	StartingCash             decimal.Decimal
}

func NewEquityService(
	agentRepository repository.AgentRepository,
	equitySnapshotRepository repository.EquitySnapshotRepository,
	tradeRepository repository.TradeRepository,
	portfolioService PortfolioService,
	priceService PriceService,
	config internal.RiskConfig,
) EquityService {
	return equityServiceHandler{
		AgentRepository:          agentRepository,
		EquitySnapshotRepository: equitySnapshotRepository,
		TradeRepository:          tradeRepository,
		PortfolioService:         portfolioService,
		PriceService:             priceService,
		StartingCash:             config.StartingCash,
	}
}

func (h equityServiceHandler) CaptureSnapshot(ctx context.Context, agentID uuid.UUID) (*domain.EquitySnapshot, error) {
	return h.captureSnapshot(ctx, agentID, nil)
}

func (h equityServiceHandler) CaptureAllSnapshots(ctx context.Context) ([]domain.EquitySnapshot, error) {
	agents, err := h.AgentRepository.List(true)
	if err != nil {
		return nil, err
	}

	batchID := uuid.New()
	snapshots := []domain.EquitySnapshot{}
	for _, agent := range agents {
		snapshot, err := h.captureSnapshot(ctx, agent.AgentID, &batchID)
		if err != nil {
			// one agent's stale prices must not block the rest of
			// the batch
			logger.FromContext(ctx).Warnf("failed to snapshot agent %s: %v", agent.AgentID, err)
			continue
		}
		snapshots = append(snapshots, *snapshot)
	}

	return snapshots, nil
}

func (h equityServiceHandler) captureSnapshot(ctx context.Context, agentID uuid.UUID, batchID *uuid.UUID) (*domain.EquitySnapshot, error) {
	portfolio, err := h.PortfolioService.GetPortfolio(ctx, agentID)
	if err != nil {
		return nil, err
	}

	prices, err := h.PriceService.GetLatestPrices(ctx)
	if err != nil {
		return nil, err
	}

	positionsValue := decimal.Zero
	unrealized := decimal.Zero
	for symbol, position := range portfolio.Positions {
		price, ok := prices[symbol]
		if !ok {
			return nil, fmt.Errorf("no price for held asset %s; cannot value portfolio", symbol)
		}
		positionsValue = positionsValue.Add(position.Quantity.Mul(price))
		unrealized = unrealized.Add(
			price.Sub(position.AverageEntryPrice).Mul(position.Quantity),
		)
	}
	totalValue := portfolio.Cash.Add(positionsValue)

	previous, err := h.EquitySnapshotRepository.GetLatest(portfolio.PortfolioID)
	if err != nil {
		return nil, err
	}

	inserted, err := h.EquitySnapshotRepository.Add(nil, model.EquitySnapshot{
		PortfolioID:    portfolio.PortfolioID,
		CapturedAt:     time.Now().UTC(),
		CashValue:      portfolio.Cash,
		PositionsValue: positionsValue,
		TotalValue:     totalValue,
		UnrealizedPnl:  unrealized,
		BatchID:        batchID,
	})
	if err != nil {
		return nil, err
	}

	snapshot := snapshotFromRow(*inserted)
	if previous != nil && previous.TotalValue.IsPositive() {
		snapshot.PercentChange = totalValue.Sub(previous.TotalValue).
			Div(previous.TotalValue).Mul(decimal.NewFromInt(100))
	}

	return &snapshot, nil
}

func (h equityServiceHandler) GetEquityCurve(ctx context.Context, agentID uuid.UUID, from, to *time.Time) ([]domain.EquitySnapshot, error) {
	portfolio, err := h.PortfolioService.GetPortfolio(ctx, agentID)
	if err != nil {
		return nil, err
	}

	rows, err := h.EquitySnapshotRepository.List(portfolio.PortfolioID, from, to)
	if err != nil {
		return nil, err
	}

	curve := make([]domain.EquitySnapshot, 0, len(rows))
	for i, row := range rows {
		snapshot := snapshotFromRow(row)
		if i > 0 && rows[i-1].TotalValue.IsPositive() {
			snapshot.PercentChange = row.TotalValue.Sub(rows[i-1].TotalValue).
				Div(rows[i-1].TotalValue).Mul(decimal.NewFromInt(100))
		}
		curve = append(curve, snapshot)
	}

	return curve, nil
}

func (h equityServiceHandler) CalculatePerformance(ctx context.Context, agentID uuid.UUID) (*domain.PerformanceMetrics, error) {
	portfolio, err := h.PortfolioService.GetPortfolio(ctx, agentID)
	if err != nil {
		return nil, err
	}

	snapshots, err := h.EquitySnapshotRepository.List(portfolio.PortfolioID, nil, nil)
	if err != nil {
		return nil, err
	}
	trades, err := h.TradeRepository.List(portfolio.PortfolioID)
	if err != nil {
		return nil, err
	}

	metrics := domain.PerformanceMetrics{
		AgentID:       agentID,
		InitialValue:  h.StartingCash,
		CurrentValue:  h.StartingCash,
		WinRate:       decimal.Zero,
		CalculatedAt:  time.Now().UTC(),
		TotalTrades:   len(trades),
		WinningTrades: 0,
		LosingTrades:  0,
	}

	if len(snapshots) > 0 {
		metrics.InitialValue = snapshots[0].TotalValue
		metrics.CurrentValue = snapshots[len(snapshots)-1].TotalValue
	}
	metrics.TotalReturn = metrics.CurrentValue.Sub(metrics.InitialValue)
	if metrics.InitialValue.IsPositive() {
		metrics.PercentReturn = metrics.TotalReturn.Div(metrics.InitialValue).
			Mul(decimal.NewFromInt(100))
	}

	totals := make([]decimal.Decimal, 0, len(snapshots))
	timestamps := make([]time.Time, 0, len(snapshots))
	for _, snapshot := range snapshots {
		totals = append(totals, snapshot.TotalValue)
		timestamps = append(timestamps, snapshot.CapturedAt)
	}
	metrics.MaxDrawdownPercent = CalculateMaxDrawdown(totals)
	metrics.AnnualizedVolatility = annualizedVolatility(totals, timestamps)

	wins, losses := ClassifyTradeOutcomes(trades)
	metrics.WinningTrades = wins
	metrics.LosingTrades = losses
	if metrics.TotalTrades > 0 {
		metrics.WinRate = decimal.NewFromInt(int64(wins)).
			Div(decimal.NewFromInt(int64(metrics.TotalTrades))).
			Mul(decimal.NewFromInt(100))
	}

	return &metrics, nil
}

// CalculateMaxDrawdown returns the largest peak-to-trough decline as a
// positive percentage of the running peak. Empty or monotonically
// rising histories yield zero.
func CalculateMaxDrawdown(totals []decimal.Decimal) decimal.Decimal {
	maxDrawdown := decimal.Zero
	peak := decimal.Zero

	for _, total := range totals {
		if total.GreaterThan(peak) {
			peak = total
		}
		if !peak.IsPositive() {
			continue
		}
		drawdown := peak.Sub(total).Div(peak).Mul(decimal.NewFromInt(100))
		if drawdown.GreaterThan(maxDrawdown) {
			maxDrawdown = drawdown
		}
	}

	return maxDrawdown
}

// ClassifyTradeOutcomes replays the trade history in execution order,
// tracking each asset's weighted-average entry price, and classifies
// every sell as a win (above entry) or loss. Buys open or extend
// positions and are never counted themselves.
func ClassifyTradeOutcomes(trades []model.Trade) (wins, losses int) {
	type openPosition struct {
		quantity decimal.Decimal
		avgPrice decimal.Decimal
	}
	open := map[string]openPosition{}

	for _, trade := range trades {
		switch trade.Side {
		case model.TradeSide_Buy:
			position := open[trade.Symbol]
			totalCost := position.quantity.Mul(position.avgPrice).
				Add(trade.Quantity.Mul(trade.Price))
			position.quantity = position.quantity.Add(trade.Quantity)
			if position.quantity.IsPositive() {
				position.avgPrice = totalCost.Div(position.quantity)
			}
			open[trade.Symbol] = position

		case model.TradeSide_Sell:
			position, ok := open[trade.Symbol]
			if !ok {
				continue
			}
			if trade.Price.GreaterThan(position.avgPrice) {
				wins++
			} else {
				losses++
			}
			position.quantity = position.quantity.Sub(trade.Quantity)
			if !position.quantity.IsPositive() {
				delete(open, trade.Symbol)
			} else {
				open[trade.Symbol] = position
			}
		}
	}

	return wins, losses
}

// annualizedVolatility is the sample stdev of snapshot-to-snapshot
// returns scaled by the observed capture cadence. Nil when the history
// is too short to measure.
func annualizedVolatility(totals []decimal.Decimal, timestamps []time.Time) *float64 {
	if len(totals) < 3 {
		return nil
	}

	returns := make([]float64, 0, len(totals)-1)
	for i := 1; i < len(totals); i++ {
		if !totals[i-1].IsPositive() {
			return nil
		}
		r, _ := totals[i].Sub(totals[i-1]).Div(totals[i-1]).Float64()
		returns = append(returns, r)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil
	}

	span := timestamps[len(timestamps)-1].Sub(timestamps[0])
	if span <= 0 {
		return nil
	}
	avgInterval := span / time.Duration(len(totals)-1)
	periodsPerYear := float64(365*24*time.Hour) / float64(avgInterval)
	annualized := stdev * math.Sqrt(periodsPerYear)

	return &annualized
}

func snapshotFromRow(row model.EquitySnapshot) domain.EquitySnapshot {
	return domain.EquitySnapshot{
		SnapshotID:     row.SnapshotID,
		PortfolioID:    row.PortfolioID,
		CapturedAt:     row.CapturedAt,
		CashValue:      row.CashValue,
		PositionsValue: row.PositionsValue,
		TotalValue:     row.TotalValue,
		UnrealizedPnL:  row.UnrealizedPnl,
		PercentChange:  decimal.Zero,
	}
}
