package api

import (
	"encoding/json"
	"errors"

	"traderace/internal/app"
	"traderace/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type runCycleRequest struct {
	// AgentID limits the cycle to one agent; empty runs all active
	// agents.
	AgentID *uuid.UUID `json:"agentId"`
}

func (m ApiHandler) runCycle(c *gin.Context) {
	req := runCycleRequest{}
	if c.Request.ContentLength > 0 {
		if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
	}

	ctx := c.Request.Context()

	if req.AgentID != nil {
		result, err := m.AgentRunner.RunAgentOnce(ctx, *req.AgentID)
		if err != nil {
			if errors.Is(err, domain.ErrAgentNotFound) || errors.Is(err, domain.ErrAgentInactive) {
				returnErrorJsonCode(err, c, 404)
				return
			}
			returnErrorJson(err, c)
			return
		}
		c.JSON(200, []app.AgentRunResult{*result})
		return
	}

	results, err := m.AgentRunner.RunAllAgents(ctx, m.AgentRepository)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, results)
}

func (m ApiHandler) ingestCandles(c *gin.Context) {
	const barsPerSymbol = 24

	count, err := m.IngestionService.IngestLatestCandles(c.Request.Context(), barsPerSymbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"ingestedCandles": count})
}
