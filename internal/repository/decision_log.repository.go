package repository

import (
	"database/sql"
	"fmt"
	"time"

	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type DecisionLogRepository interface {
	Add(tx *sql.Tx, log model.DecisionLog) (*model.DecisionLog, error)
	List(agentID uuid.UUID, limit int) ([]model.DecisionLog, error)
}

type decisionLogRepositoryHandler struct {
	Db *sql.DB
}

func NewDecisionLogRepository(db *sql.DB) DecisionLogRepository {
	return decisionLogRepositoryHandler{Db: db}
}

func (h decisionLogRepositoryHandler) Add(tx *sql.Tx, log model.DecisionLog) (*model.DecisionLog, error) {
	log.CreatedAt = time.Now().UTC()
	query := table.DecisionLog.
		INSERT(table.DecisionLog.MutableColumns).
		MODEL(log).
		RETURNING(table.DecisionLog.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.DecisionLog{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert decision log: %w", err)
	}

	return &out, nil
}

func (h decisionLogRepositoryHandler) List(agentID uuid.UUID, limit int) ([]model.DecisionLog, error) {
	query := table.DecisionLog.
		SELECT(table.DecisionLog.AllColumns).
		WHERE(table.DecisionLog.AgentID.EQ(postgres.UUID(agentID))).
		ORDER_BY(table.DecisionLog.CreatedAt.DESC()).
		LIMIT(int64(limit))

	result := []model.DecisionLog{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list decision logs: %w", err)
	}

	return result, nil
}
