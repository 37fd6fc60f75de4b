package decision

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"traderace/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type rawDecision struct {
	Reasoning  string     `json:"reasoning"`
	Orders     []rawOrder `json:"orders"`
	CitedRules []string   `json:"cited_rules"`
}

type rawOrder struct {
	Asset    string          `json:"asset"`
	Side     string          `json:"side"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ParseDecision converts a model response into an AgentDecision.
// Responses are expected to be a single JSON object; a leading/trailing
// markdown fence is tolerated since models love adding those.
func ParseDecision(agentID uuid.UUID, content string) (domain.AgentDecision, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	raw := rawDecision{}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return domain.AgentDecision{}, fmt.Errorf("failed to parse decision json: %w", err)
	}

	orders := []domain.TradeOrder{}
	for _, o := range raw.Orders {
		side, err := parseSide(o.Side)
		if err != nil {
			return domain.AgentDecision{}, err
		}
		orders = append(orders, domain.TradeOrder{
			AssetSymbol: strings.ToUpper(strings.TrimSpace(o.Asset)),
			Side:        side,
			Quantity:    o.Quantity,
		})
	}

	decision := domain.AgentDecision{
		AgentID:      agentID,
		CreatedAt:    time.Now().UTC(),
		Orders:       orders,
		CitedRuleIDs: raw.CitedRules,
	}
	if raw.Reasoning != "" {
		reasoning := raw.Reasoning
		decision.Rationale = &reasoning
	}

	return decision, nil
}

func parseSide(side string) (domain.TradeSide, error) {
	switch strings.ToUpper(strings.TrimSpace(side)) {
	case "BUY":
		return domain.TradeSide_Buy, nil
	case "SELL":
		return domain.TradeSide_Sell, nil
	case "HOLD":
		return domain.TradeSide_Hold, nil
	}
	return "", fmt.Errorf("unknown trade side %q", side)
}
