package decision

import (
	"context"
	"fmt"

	"traderace/internal/domain"
)

// Source generates a trading decision for one agent. Implementations
// must never fail for ordinary API or formatting problems: those
// degrade to an explicit hold decision carrying a reason. An error
// return is reserved for context cancellation.
type Source interface {
	Generate(ctx context.Context, agentCtx domain.AgentContext) (domain.AgentDecision, error)
}

// Registry maps model provider identifiers to decision sources. It is
// built once at startup; resolution is read-only afterwards.
type Registry struct {
	sources map[string]Source
}

func NewRegistry() *Registry {
	return &Registry{sources: map[string]Source{}}
}

func (r *Registry) Register(provider string, source Source) {
	r.sources[provider] = source
}

func (r *Registry) Resolve(provider string) (Source, error) {
	source, ok := r.sources[provider]
	if !ok {
		return nil, fmt.Errorf("no decision source registered for provider %q", provider)
	}
	return source, nil
}
