package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type equityPointResponse struct {
	CapturedAt     time.Time       `json:"capturedAt"`
	CashValue      decimal.Decimal `json:"cashValue"`
	PositionsValue decimal.Decimal `json:"positionsValue"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	UnrealizedPnl  decimal.Decimal `json:"unrealizedPnl"`
	PercentChange  decimal.Decimal `json:"percentChange"`
}

func (m ApiHandler) getEquityCurve(c *gin.Context) {
	agentID, err := agentIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	from, err := timeParam(c, "from")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	to, err := timeParam(c, "to")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	curve, err := m.EquityService.GetEquityCurve(c.Request.Context(), agentID, from, to)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []equityPointResponse{}
	for _, snapshot := range curve {
		out = append(out, equityPointResponse{
			CapturedAt:     snapshot.CapturedAt,
			CashValue:      snapshot.CashValue,
			PositionsValue: snapshot.PositionsValue,
			TotalValue:     snapshot.TotalValue,
			UnrealizedPnl:  snapshot.UnrealizedPnL,
			PercentChange:  snapshot.PercentChange,
		})
	}

	c.JSON(200, out)
}

func timeParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s '%s': expected RFC3339: %w", name, raw, err)
	}
	return &t, nil
}
