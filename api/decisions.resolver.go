package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const defaultDecisionLimit = 50

type decisionLogResponse struct {
	DecisionLogID        string           `json:"decisionLogId"`
	AgentID              string           `json:"agentId"`
	Action               string           `json:"action"`
	Asset                *string          `json:"asset"`
	Quantity             *decimal.Decimal `json:"quantity"`
	Rationale            string           `json:"rationale"`
	CitedRuleIDs         []string         `json:"citedRuleIds"`
	PortfolioValueBefore decimal.Decimal  `json:"portfolioValueBefore"`
	PortfolioValueAfter  decimal.Decimal  `json:"portfolioValueAfter"`
	CreatedAt            time.Time        `json:"createdAt"`
}

func (m ApiHandler) listDecisions(c *gin.Context) {
	agentID, err := agentIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	limit := defaultDecisionLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			returnErrorJsonCode(fmt.Errorf("invalid limit '%s'", raw), c, 400)
			return
		}
		limit = parsed
	}

	logs, err := m.DecisionLogRepository.List(agentID, limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []decisionLogResponse{}
	for _, log := range logs {
		citedRules := []string{}
		if log.CitedRuleIds != nil && *log.CitedRuleIds != "" {
			citedRules = strings.Split(*log.CitedRuleIds, ",")
		}
		out = append(out, decisionLogResponse{
			DecisionLogID:        log.DecisionLogID.String(),
			AgentID:              log.AgentID.String(),
			Action:               log.Action,
			Asset:                log.Asset,
			Quantity:             log.Quantity,
			Rationale:            log.Rationale,
			CitedRuleIDs:         citedRules,
			PortfolioValueBefore: log.PortfolioValueBefore,
			PortfolioValueAfter:  log.PortfolioValueAfter,
			CreatedAt:            log.CreatedAt,
		})
	}

	c.JSON(200, out)
}
