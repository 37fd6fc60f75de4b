package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PortfolioRepository interface {
	// GetByAgentID returns (nil, nil) when the agent has no portfolio
	// yet; lazy creation is the portfolio service's call to make.
	GetByAgentID(tx *sql.Tx, agentID uuid.UUID) (*model.Portfolio, error)
	Add(tx *sql.Tx, portfolio model.Portfolio) (*model.Portfolio, error)
	UpdateCash(tx *sql.Tx, portfolioID uuid.UUID, cash decimal.Decimal) error
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) GetByAgentID(tx *sql.Tx, agentID uuid.UUID) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.AgentID.EQ(postgres.UUID(agentID)))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.Portfolio{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get portfolio for agent %s: %w", agentID, err)
	}

	return &result, nil
}

func (h portfolioRepositoryHandler) Add(tx *sql.Tx, portfolio model.Portfolio) (*model.Portfolio, error) {
	portfolio.CreatedAt = time.Now().UTC()
	portfolio.ModifiedAt = time.Now().UTC()
	query := table.Portfolio.
		INSERT(table.Portfolio.MutableColumns).
		MODEL(portfolio).
		RETURNING(table.Portfolio.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) UpdateCash(tx *sql.Tx, portfolioID uuid.UUID, cash decimal.Decimal) error {
	query := table.Portfolio.
		UPDATE(table.Portfolio.Cash, table.Portfolio.ModifiedAt).
		MODEL(model.Portfolio{
			Cash:       cash,
			ModifiedAt: time.Now().UTC(),
		}).
		WHERE(table.Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update portfolio cash: %w", err)
	}

	return nil
}
