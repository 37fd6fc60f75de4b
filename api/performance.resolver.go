package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type performanceResponse struct {
	AgentID              string          `json:"agentId"`
	InitialValue         decimal.Decimal `json:"initialValue"`
	CurrentValue         decimal.Decimal `json:"currentValue"`
	TotalReturn          decimal.Decimal `json:"totalReturn"`
	PercentReturn        decimal.Decimal `json:"percentReturn"`
	MaxDrawdownPercent   decimal.Decimal `json:"maxDrawdownPercent"`
	AnnualizedVolatility *float64        `json:"annualizedVolatility"`
	TotalTrades          int             `json:"totalTrades"`
	WinningTrades        int             `json:"winningTrades"`
	LosingTrades         int             `json:"losingTrades"`
	WinRate              decimal.Decimal `json:"winRate"`
	CalculatedAt         time.Time       `json:"calculatedAt"`
}

func (m ApiHandler) getPerformance(c *gin.Context) {
	agentID, err := agentIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	metrics, err := m.EquityService.CalculatePerformance(c.Request.Context(), agentID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, performanceResponse{
		AgentID:              metrics.AgentID.String(),
		InitialValue:         metrics.InitialValue,
		CurrentValue:         metrics.CurrentValue,
		TotalReturn:          metrics.TotalReturn,
		PercentReturn:        metrics.PercentReturn,
		MaxDrawdownPercent:   metrics.MaxDrawdownPercent,
		AnnualizedVolatility: metrics.AnnualizedVolatility,
		TotalTrades:          metrics.TotalTrades,
		WinningTrades:        metrics.WinningTrades,
		LosingTrades:         metrics.LosingTrades,
		WinRate:              metrics.WinRate,
		CalculatedAt:         metrics.CalculatedAt,
	})
}
