package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"traderace/internal"
	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/decision"
	"traderace/internal/domain"
	mock_repository "traderace/internal/repository/mocks"
	"traderace/internal/service"
	mock_service "traderace/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scriptedSource returns a fixed decision, standing in for a model
// call.
type scriptedSource struct {
	decision domain.AgentDecision
}

func (s scriptedSource) Generate(ctx context.Context, agentCtx domain.AgentContext) (domain.AgentDecision, error) {
	if err := ctx.Err(); err != nil {
		return domain.AgentDecision{}, err
	}
	d := s.decision
	d.AgentID = agentCtx.AgentID
	return d, nil
}

func testAgentContext(agentID uuid.UUID) *domain.AgentContext {
	return &domain.AgentContext{
		AgentID:       agentID,
		ModelProvider: "scripted",
		Instructions:  "trade carefully",
		Portfolio: &domain.Portfolio{
			PortfolioID: uuid.New(),
			AgentID:     agentID,
			Cash:        decimal.NewFromInt(100_000),
			Positions:   map[string]*domain.Position{},
			AsOf:        time.Now().UTC(),
		},
		Prices: map[string]decimal.Decimal{
			"BTC": decimal.NewFromInt(42_000),
			"ETH": decimal.NewFromInt(2_500),
		},
	}
}

func Test_RunAgentOnce(t *testing.T) {
	ctx := context.Background()
	agentID := uuid.New()

	newRunner := func(
		ctrl *gomock.Controller,
		source decision.Source,
	) (*AgentRunner, *mock_service.MockContextService, *mock_service.MockPortfolioService, *mock_service.MockEquityService, *mock_repository.MockDecisionLogRepository, *mock_repository.MockTradeRepository) {
		contextService := mock_service.NewMockContextService(ctrl)
		portfolioService := mock_service.NewMockPortfolioService(ctrl)
		equityService := mock_service.NewMockEquityService(ctrl)
		decisionLogRepository := mock_repository.NewMockDecisionLogRepository(ctrl)
		tradeRepository := mock_repository.NewMockTradeRepository(ctrl)

		registry := decision.NewRegistry()
		registry.Register("scripted", source)

		runner := NewAgentRunner(
			contextService,
			registry,
			service.NewRiskValidator(internal.DefaultRiskConfig()),
			portfolioService,
			equityService,
			decisionLogRepository,
			tradeRepository,
		)
		return runner, contextService, portfolioService, equityService, decisionLogRepository, tradeRepository
	}

	t.Run("hold decision skips the ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner, contextService, _, equityService, decisionLogRepository, _ := newRunner(ctrl, scriptedSource{
			decision: domain.NewHoldDecision(agentID, "nothing to do"),
		})

		contextService.EXPECT().BuildContext(ctx, agentID).Return(testAgentContext(agentID), nil)
		decisionLogRepository.EXPECT().Add(gomock.Nil(), gomock.Any()).Return(&model.DecisionLog{
			DecisionLogID: uuid.New(),
		}, nil)
		equityService.EXPECT().CaptureSnapshot(ctx, agentID).Return(&domain.EquitySnapshot{}, nil)

		result, err := runner.RunAgentOnce(ctx, agentID)
		require.NoError(t, err)
		require.False(t, result.Applied)
		require.NotNil(t, result.Snapshot)
	})

	t.Run("buy decision is applied and trades are linked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner, contextService, portfolioService, equityService, decisionLogRepository, tradeRepository := newRunner(ctrl, scriptedSource{
			decision: domain.AgentDecision{
				CreatedAt: time.Now().UTC(),
				Orders: []domain.TradeOrder{
					{AssetSymbol: "BTC", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromFloat(0.1)},
				},
			},
		})

		agentContext := testAgentContext(agentID)
		contextService.EXPECT().BuildContext(ctx, agentID).Return(agentContext, nil)

		tradeID := uuid.New()
		portfolioService.EXPECT().
			ApplyDecision(ctx, agentID, gomock.Any(), agentContext.Prices).
			Return(agentContext.Portfolio, []uuid.UUID{tradeID}, nil)

		logID := uuid.New()
		decisionLogRepository.EXPECT().Add(gomock.Nil(), gomock.Any()).Return(&model.DecisionLog{
			DecisionLogID: logID,
		}, nil)
		tradeRepository.EXPECT().LinkToDecisionLog(gomock.Nil(), []uuid.UUID{tradeID}, logID).Return(nil)
		equityService.EXPECT().CaptureSnapshot(ctx, agentID).Return(&domain.EquitySnapshot{}, nil)

		result, err := runner.RunAgentOnce(ctx, agentID)
		require.NoError(t, err)
		require.True(t, result.Applied)
	})

	t.Run("unknown agent propagates the lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner, contextService, _, _, _, _ := newRunner(ctrl, scriptedSource{})

		contextService.EXPECT().BuildContext(ctx, agentID).Return(nil, domain.ErrAgentNotFound)

		_, err := runner.RunAgentOnce(ctx, agentID)
		require.ErrorIs(t, err, domain.ErrAgentNotFound)
	})

	t.Run("decision log failure does not fail the cycle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner, contextService, _, equityService, decisionLogRepository, _ := newRunner(ctrl, scriptedSource{
			decision: domain.NewHoldDecision(agentID, "hold"),
		})

		contextService.EXPECT().BuildContext(ctx, agentID).Return(testAgentContext(agentID), nil)
		decisionLogRepository.EXPECT().Add(gomock.Nil(), gomock.Any()).Return(nil, fmt.Errorf("db is down"))
		equityService.EXPECT().CaptureSnapshot(ctx, agentID).Return(&domain.EquitySnapshot{}, nil)

		result, err := runner.RunAgentOnce(ctx, agentID)
		require.NoError(t, err)
		require.NotNil(t, result)
	})

	t.Run("risk rejection leaves nothing to apply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner, contextService, _, equityService, decisionLogRepository, _ := newRunner(ctrl, scriptedSource{
			decision: domain.AgentDecision{
				CreatedAt: time.Now().UTC(),
				Orders: []domain.TradeOrder{
					{AssetSymbol: "DOGE", Side: domain.TradeSide_Buy, Quantity: decimal.NewFromInt(1000)},
				},
			},
		})

		contextService.EXPECT().BuildContext(ctx, agentID).Return(testAgentContext(agentID), nil)
		decisionLogRepository.EXPECT().Add(gomock.Nil(), gomock.Any()).Return(&model.DecisionLog{
			DecisionLogID: uuid.New(),
		}, nil)
		equityService.EXPECT().CaptureSnapshot(ctx, agentID).Return(&domain.EquitySnapshot{}, nil)

		result, err := runner.RunAgentOnce(ctx, agentID)
		require.NoError(t, err)
		require.False(t, result.Applied)
		require.True(t, result.HasWarnings)
		require.Len(t, result.RejectedOrders, 1)
	})
}

func Test_RunAllAgents(t *testing.T) {
	ctx := context.Background()

	t.Run("one failing agent does not block the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		goodAgent := uuid.New()
		badAgent := uuid.New()

		contextService := mock_service.NewMockContextService(ctrl)
		equityService := mock_service.NewMockEquityService(ctrl)
		decisionLogRepository := mock_repository.NewMockDecisionLogRepository(ctrl)
		agentRepository := mock_repository.NewMockAgentRepository(ctrl)

		registry := decision.NewRegistry()
		registry.Register("scripted", scriptedSource{decision: domain.NewHoldDecision(goodAgent, "hold")})

		runner := NewAgentRunner(
			contextService,
			registry,
			service.NewRiskValidator(internal.DefaultRiskConfig()),
			mock_service.NewMockPortfolioService(ctrl),
			equityService,
			decisionLogRepository,
			mock_repository.NewMockTradeRepository(ctrl),
		)

		agentRepository.EXPECT().List(true).Return([]model.Agent{
			{AgentID: goodAgent, ModelProvider: "scripted", IsActive: true},
			{AgentID: badAgent, ModelProvider: "scripted", IsActive: true},
		}, nil)

		contextService.EXPECT().BuildContext(ctx, goodAgent).Return(testAgentContext(goodAgent), nil)
		contextService.EXPECT().BuildContext(ctx, badAgent).Return(nil, domain.ErrAgentInactive)
		decisionLogRepository.EXPECT().Add(gomock.Nil(), gomock.Any()).Return(&model.DecisionLog{
			DecisionLogID: uuid.New(),
		}, nil)
		equityService.EXPECT().CaptureSnapshot(ctx, goodAgent).Return(&domain.EquitySnapshot{}, nil)

		results, err := runner.RunAllAgents(ctx, agentRepository)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, goodAgent, results[0].AgentID)
	})
}
