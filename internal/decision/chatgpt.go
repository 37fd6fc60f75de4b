package decision

import (
	"context"
	"fmt"
	"time"

	"traderace/internal/domain"
	"traderace/internal/logger"

	"github.com/ayush6624/go-chatgpt"
)

type chatGptSource struct {
	client         *chatgpt.Client
	pacer          *Pacer
	requestTimeout time.Duration
}

// NewChatGptSource builds the ChatGPT-backed decision source. The
// pacer is shared with whatever else calls the same API.
func NewChatGptSource(apiKey string, pacer *Pacer, requestTimeout time.Duration) (Source, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return &chatGptSource{
		client:         client,
		pacer:          pacer,
		requestTimeout: requestTimeout,
	}, nil
}

func (s *chatGptSource) Generate(ctx context.Context, agentCtx domain.AgentContext) (domain.AgentDecision, error) {
	log := logger.FromContext(ctx)

	if err := s.pacer.Wait(ctx); err != nil {
		return domain.AgentDecision{}, err
	}

	requestCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	response, err := s.client.Send(requestCtx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: buildSystemPrompt(agentCtx),
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: buildUserPrompt(agentCtx),
			},
		},
	})
	if err != nil {
		// parent cancellation propagates; everything else degrades
		if ctx.Err() != nil {
			return domain.AgentDecision{}, ctx.Err()
		}
		log.Warnf("gpt call failed for agent %s: %v", agentCtx.AgentID, err)
		return domain.NewHoldDecision(agentCtx.AgentID, fmt.Sprintf("API error - defaulting to HOLD: %v", err)), nil
	}

	if len(response.Choices) == 0 {
		return domain.NewHoldDecision(agentCtx.AgentID, "empty response - defaulting to HOLD"), nil
	}

	parsed, err := ParseDecision(agentCtx.AgentID, response.Choices[0].Message.Content)
	if err != nil {
		log.Warnf("failed to parse gpt response for agent %s: %v", agentCtx.AgentID, err)
		return domain.NewHoldDecision(agentCtx.AgentID, fmt.Sprintf("invalid response - defaulting to HOLD: %v", err)), nil
	}

	return parsed, nil
}
