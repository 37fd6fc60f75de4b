// Package app orchestrates the decision cycle: context assembly,
// decision generation, risk validation, ledger application and equity
// snapshotting for each agent.
package app

import (
	"context"
	"strings"
	"sync"

	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/decision"
	"traderace/internal/domain"
	"traderace/internal/logger"
	"traderace/internal/repository"
	"traderace/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AgentRunResult reports one agent's completed cycle.
type AgentRunResult struct {
	AgentID           uuid.UUID              `json:"agentId"`
	ValidatedDecision domain.AgentDecision   `json:"validatedDecision"`
	RejectedOrders    []domain.RejectedOrder `json:"rejectedOrders"`
	HasWarnings       bool                   `json:"hasWarnings"`
	Applied           bool                   `json:"applied"`
	Portfolio         *domain.Portfolio      `json:"portfolio"`
	Snapshot          *domain.EquitySnapshot `json:"snapshot"`
}

type AgentRunner struct {
	ContextService        service.ContextService
	Registry              *decision.Registry
	RiskValidator         service.RiskValidator
	PortfolioService      service.PortfolioService
	EquityService         service.EquityService
	DecisionLogRepository repository.DecisionLogRepository
	TradeRepository       repository.TradeRepository

	// mu guards agentLocks; each agent's lock serializes ledger writes
	// for that agent across concurrent cycles.
	mu         sync.Mutex
	agentLocks map[uuid.UUID]*sync.Mutex
}

func NewAgentRunner(
	contextService service.ContextService,
	registry *decision.Registry,
	riskValidator service.RiskValidator,
	portfolioService service.PortfolioService,
	equityService service.EquityService,
	decisionLogRepository repository.DecisionLogRepository,
	tradeRepository repository.TradeRepository,
) *AgentRunner {
	return &AgentRunner{
		ContextService:        contextService,
		Registry:              registry,
		RiskValidator:         riskValidator,
		PortfolioService:      portfolioService,
		EquityService:         equityService,
		DecisionLogRepository: decisionLogRepository,
		TradeRepository:       tradeRepository,
		agentLocks:            map[uuid.UUID]*sync.Mutex{},
	}
}

func (r *AgentRunner) lockFor(agentID uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.agentLocks[agentID]
	if !ok {
		lock = &sync.Mutex{}
		r.agentLocks[agentID] = lock
	}
	return lock
}

// RunAgentOnce drives one full cycle for one agent. Unknown or
// inactive agents fail the call; decision-source problems degrade to a
// hold inside the source and never surface here.
func (r *AgentRunner) RunAgentOnce(ctx context.Context, agentID uuid.UUID) (*AgentRunResult, error) {
	log := logger.FromContext(ctx)

	agentContext, err := r.ContextService.BuildContext(ctx, agentID)
	if err != nil {
		return nil, err
	}

	source, err := r.Registry.Resolve(agentContext.ModelProvider)
	if err != nil {
		return nil, err
	}

	generated, err := source.Generate(ctx, *agentContext)
	if err != nil {
		// cancellation only
		return nil, err
	}

	outcome := r.RiskValidator.Validate(ctx, generated, *agentContext.Portfolio, agentContext.Prices)
	if outcome.HasWarnings {
		log.Warnf("agent %s decision validated with %d rejected orders",
			agentID, len(outcome.RejectedOrders))
	}

	result := &AgentRunResult{
		AgentID:           agentID,
		ValidatedDecision: outcome.ValidatedDecision,
		RejectedOrders:    outcome.RejectedOrders,
		HasWarnings:       outcome.HasWarnings,
		Portfolio:         agentContext.Portfolio,
	}

	valueBefore, valueErr := agentContext.Portfolio.TotalValue(agentContext.Prices)
	if valueErr != nil {
		valueBefore = agentContext.Portfolio.Cash
	}
	valueAfter := valueBefore

	var tradeIDs []uuid.UUID
	if hasExecutableOrders(outcome.ValidatedDecision) {
		lock := r.lockFor(agentID)
		lock.Lock()
		after, ids, applyErr := r.PortfolioService.ApplyDecision(ctx, agentID, outcome.ValidatedDecision, agentContext.Prices)
		lock.Unlock()
		if applyErr != nil {
			log.Errorf("agent %s: failed to apply decision: %v", agentID, applyErr)
			return nil, applyErr
		}
		result.Applied = true
		result.Portfolio = after
		tradeIDs = ids
		if v, err := after.TotalValue(agentContext.Prices); err == nil {
			valueAfter = v
		}
	}

	r.logDecision(ctx, agentID, outcome.ValidatedDecision, valueBefore, valueAfter, tradeIDs)

	snapshot, err := r.EquityService.CaptureSnapshot(ctx, agentID)
	if err != nil {
		log.Errorf("agent %s: failed to capture equity snapshot: %v", agentID, err)
		return nil, err
	}
	result.Snapshot = snapshot

	return result, nil
}

// RunAllAgents runs every active agent's cycle concurrently and
// returns the results that completed. Per-agent failures are collected
// rather than aborting the batch.
func (r *AgentRunner) RunAllAgents(ctx context.Context, agentRepository repository.AgentRepository) ([]AgentRunResult, error) {
	agents, err := agentRepository.List(true)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	resultsMu := sync.Mutex{}
	results := []AgentRunResult{}

	for _, agent := range agents {
		wg.Add(1)
		go func(agentID uuid.UUID) {
			defer wg.Done()
			result, err := r.RunAgentOnce(ctx, agentID)
			if err != nil {
				logger.FromContext(ctx).Errorf("agent %s cycle failed: %v", agentID, err)
				return
			}
			resultsMu.Lock()
			results = append(results, *result)
			resultsMu.Unlock()
		}(agent.AgentID)
	}
	wg.Wait()

	return results, ctx.Err()
}

// logDecision writes the audit row. Logging failures are reported but
// never fail the cycle that produced them.
func (r *AgentRunner) logDecision(
	ctx context.Context,
	agentID uuid.UUID,
	validated domain.AgentDecision,
	valueBefore, valueAfter decimal.Decimal,
	tradeIDs []uuid.UUID,
) {
	log := logger.FromContext(ctx)

	rationale := ""
	if validated.Rationale != nil {
		rationale = *validated.Rationale
	}
	var citedRules *string
	if len(validated.CitedRuleIDs) > 0 {
		joined := strings.Join(validated.CitedRuleIDs, ",")
		citedRules = &joined
	}

	row := model.DecisionLog{
		AgentID:              agentID,
		Action:               summarizeAction(validated),
		Rationale:            rationale,
		CitedRuleIds:         citedRules,
		PortfolioValueBefore: valueBefore,
		PortfolioValueAfter:  valueAfter,
	}
	if len(validated.Orders) == 1 {
		order := validated.Orders[0]
		row.Asset = &order.AssetSymbol
		quantity := order.Quantity
		row.Quantity = &quantity
	}

	inserted, err := r.DecisionLogRepository.Add(nil, row)
	if err != nil {
		log.Errorf("agent %s: failed to persist decision log: %v", agentID, err)
		return
	}

	if len(tradeIDs) == 0 {
		return
	}
	if err := r.TradeRepository.LinkToDecisionLog(nil, tradeIDs, inserted.DecisionLogID); err != nil {
		log.Errorf("agent %s: failed to link trades to decision log: %v", agentID, err)
	}
}

func summarizeAction(validated domain.AgentDecision) string {
	if len(validated.Orders) == 0 {
		return string(domain.TradeSide_Hold)
	}
	parts := make([]string, 0, len(validated.Orders))
	for _, order := range validated.Orders {
		parts = append(parts, string(order.Side)+" "+order.AssetSymbol)
	}
	return strings.Join(parts, "; ")
}

func hasExecutableOrders(validated domain.AgentDecision) bool {
	for _, order := range validated.Orders {
		if order.Side != domain.TradeSide_Hold {
			return true
		}
	}
	return false
}
