package decision

import (
	"context"

	"traderace/internal/domain"
)

// echoSource is a deterministic source for local runs and tests: it
// always holds, echoing a summary of the context it was given.
type echoSource struct{}

func NewEchoSource() Source {
	return echoSource{}
}

func (echoSource) Generate(ctx context.Context, agentCtx domain.AgentContext) (domain.AgentDecision, error) {
	if err := ctx.Err(); err != nil {
		return domain.AgentDecision{}, err
	}
	return domain.NewHoldDecision(
		agentCtx.AgentID,
		"echo agent holds by construction; cash "+agentCtx.Portfolio.Cash.StringFixed(2),
	), nil
}
