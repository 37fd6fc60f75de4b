package api

import (
	"fmt"
	"time"

	"traderace/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type positionResponse struct {
	Symbol            string          `json:"symbol"`
	Quantity          decimal.Decimal `json:"quantity"`
	AverageEntryPrice decimal.Decimal `json:"averageEntryPrice"`
}

type portfolioResponse struct {
	PortfolioID string             `json:"portfolioId"`
	AgentID     string             `json:"agentId"`
	Cash        decimal.Decimal    `json:"cash"`
	Positions   []positionResponse `json:"positions"`
	AsOf        time.Time          `json:"asOf"`
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	agentID, err := agentIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	portfolio, err := m.PortfolioService.GetPortfolio(c.Request.Context(), agentID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioToResponse(portfolio))
}

func portfolioToResponse(portfolio *domain.Portfolio) portfolioResponse {
	positions := []positionResponse{}
	for _, symbol := range portfolio.HeldSymbols() {
		position := portfolio.Positions[symbol]
		positions = append(positions, positionResponse{
			Symbol:            position.Symbol,
			Quantity:          position.Quantity,
			AverageEntryPrice: position.AverageEntryPrice,
		})
	}

	return portfolioResponse{
		PortfolioID: portfolio.PortfolioID.String(),
		AgentID:     portfolio.AgentID.String(),
		Cash:        portfolio.Cash,
		Positions:   positions,
		AsOf:        portfolio.AsOf,
	}
}

func agentIDParam(c *gin.Context) (uuid.UUID, error) {
	raw := c.Query("agentId")
	if raw == "" {
		return uuid.Nil, fmt.Errorf("missing required query param 'agentId'")
	}
	agentID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid agentId '%s': %w", raw, err)
	}
	return agentID, nil
}
