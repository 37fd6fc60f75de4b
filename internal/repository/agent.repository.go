package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/db/models/postgres/public/table"
	"traderace/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AgentRepository interface {
	// Get returns the agent or domain.ErrAgentNotFound /
	// domain.ErrAgentInactive. Inactive agents are never returned.
	Get(agentID uuid.UUID) (*model.Agent, error)
	List(activeOnly bool) ([]model.Agent, error)
	Add(tx *sql.Tx, agent model.Agent) (*model.Agent, error)
}

type agentRepositoryHandler struct {
	Db *sql.DB
}

func NewAgentRepository(db *sql.DB) AgentRepository {
	return agentRepositoryHandler{Db: db}
}

func (h agentRepositoryHandler) Get(agentID uuid.UUID) (*model.Agent, error) {
	query := table.Agent.
		SELECT(table.Agent.AllColumns).
		WHERE(table.Agent.AgentID.EQ(postgres.UUID(agentID)))

	result := model.Agent{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("agent %s: %w", agentID, domain.ErrAgentNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get agent %s: %w", agentID, err)
	}

	if !result.IsActive {
		return nil, fmt.Errorf("agent %s: %w", agentID, domain.ErrAgentInactive)
	}

	return &result, nil
}

func (h agentRepositoryHandler) List(activeOnly bool) ([]model.Agent, error) {
	query := table.Agent.SELECT(table.Agent.AllColumns)
	if activeOnly {
		query = query.WHERE(table.Agent.IsActive.IS_TRUE())
	}

	result := []model.Agent{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return result, nil
}

func (h agentRepositoryHandler) Add(tx *sql.Tx, agent model.Agent) (*model.Agent, error) {
	agent.CreatedAt = time.Now().UTC()
	query := table.Agent.
		INSERT(table.Agent.MutableColumns).
		MODEL(agent).
		RETURNING(table.Agent.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Agent{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert agent: %w", err)
	}

	return &out, nil
}
