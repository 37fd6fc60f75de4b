package decision

import (
	"testing"

	"traderace/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ParseDecision(t *testing.T) {
	agentID := uuid.New()

	t.Run("plain json", func(t *testing.T) {
		content := `{
			"reasoning": "BTC momentum is positive",
			"orders": [
				{"asset": "BTC", "side": "buy", "quantity": 0.25}
			],
			"cited_rules": ["max-position-size"]
		}`

		decision, err := ParseDecision(agentID, content)
		require.NoError(t, err)

		require.Equal(t, agentID, decision.AgentID)
		require.Len(t, decision.Orders, 1)
		require.Equal(t, "BTC", decision.Orders[0].AssetSymbol)
		require.Equal(t, domain.TradeSide_Buy, decision.Orders[0].Side)
		require.True(t, decision.Orders[0].Quantity.Equal(decimal.NewFromFloat(0.25)))
		require.NotNil(t, decision.Rationale)
		require.Equal(t, "BTC momentum is positive", *decision.Rationale)
		require.Equal(t, []string{"max-position-size"}, decision.CitedRuleIDs)
	})

	t.Run("markdown fenced json", func(t *testing.T) {
		content := "```json\n{\"reasoning\": \"hold\", \"orders\": []}\n```"

		decision, err := ParseDecision(agentID, content)
		require.NoError(t, err)
		require.Empty(t, decision.Orders)
	})

	t.Run("lowercase and padded fields normalize", func(t *testing.T) {
		content := `{"orders": [{"asset": " eth ", "side": " Sell ", "quantity": 1}]}`

		decision, err := ParseDecision(agentID, content)
		require.NoError(t, err)
		require.Equal(t, "ETH", decision.Orders[0].AssetSymbol)
		require.Equal(t, domain.TradeSide_Sell, decision.Orders[0].Side)
	})

	t.Run("garbage is an error", func(t *testing.T) {
		_, err := ParseDecision(agentID, "I think you should buy bitcoin")
		require.ErrorContains(t, err, "failed to parse decision json")
	})

	t.Run("unknown side is an error", func(t *testing.T) {
		content := `{"orders": [{"asset": "BTC", "side": "short", "quantity": 1}]}`

		_, err := ParseDecision(agentID, content)
		require.ErrorContains(t, err, `unknown trade side "short"`)
	})
}
