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

type PositionRepository interface {
	ListForPortfolio(tx *sql.Tx, portfolioID uuid.UUID) ([]model.Position, error)
	Upsert(tx *sql.Tx, position model.Position) (*model.Position, error)
	Delete(tx *sql.Tx, portfolioID uuid.UUID, symbol string) error
}

type positionRepositoryHandler struct {
	Db *sql.DB
}

func NewPositionRepository(db *sql.DB) PositionRepository {
	return positionRepositoryHandler{Db: db}
}

func (h positionRepositoryHandler) ListForPortfolio(tx *sql.Tx, portfolioID uuid.UUID) ([]model.Position, error) {
	query := table.Position.
		SELECT(table.Position.AllColumns).
		WHERE(table.Position.PortfolioID.EQ(postgres.UUID(portfolioID)))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Position{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions for portfolio %s: %w", portfolioID, err)
	}

	return result, nil
}

func (h positionRepositoryHandler) Upsert(tx *sql.Tx, position model.Position) (*model.Position, error) {
	position.ModifiedAt = time.Now().UTC()
	query := table.Position.
		INSERT(table.Position.MutableColumns).
		MODEL(position).
		ON_CONFLICT(table.Position.PortfolioID, table.Position.Symbol).
		DO_UPDATE(postgres.SET(
			table.Position.Quantity.SET(table.Position.EXCLUDED.Quantity),
			table.Position.AverageEntryPrice.SET(table.Position.EXCLUDED.AverageEntryPrice),
			table.Position.ModifiedAt.SET(table.Position.EXCLUDED.ModifiedAt),
		)).
		RETURNING(table.Position.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Position{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert position %s: %w", position.Symbol, err)
	}

	return &out, nil
}

func (h positionRepositoryHandler) Delete(tx *sql.Tx, portfolioID uuid.UUID, symbol string) error {
	query := table.Position.
		DELETE().
		WHERE(postgres.AND(
			table.Position.PortfolioID.EQ(postgres.UUID(portfolioID)),
			table.Position.Symbol.EQ(postgres.String(symbol)),
		))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete position %s: %w", symbol, err)
	}

	return nil
}
