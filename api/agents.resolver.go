package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type agentResponse struct {
	AgentID       string    `json:"agentId"`
	Name          string    `json:"name"`
	ModelProvider string    `json:"modelProvider"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (m ApiHandler) listAgents(c *gin.Context) {
	agents, err := m.AgentRepository.List(false)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []agentResponse{}
	for _, agent := range agents {
		out = append(out, agentResponse{
			AgentID:       agent.AgentID.String(),
			Name:          agent.Name,
			ModelProvider: string(agent.ModelProvider),
			IsActive:      agent.IsActive,
			CreatedAt:     agent.CreatedAt,
		})
	}

	c.JSON(200, out)
}
