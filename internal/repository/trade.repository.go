package repository

import (
	"database/sql"
	"fmt"

	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TradeRepository interface {
	Add(tx *sql.Tx, trade model.Trade) (*model.Trade, error)
	// List returns the portfolio's trades ordered by execution time.
	List(portfolioID uuid.UUID) ([]model.Trade, error)
	LinkToDecisionLog(tx *sql.Tx, tradeIDs []uuid.UUID, decisionLogID uuid.UUID) error
}

type tradeRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeRepository(db *sql.DB) TradeRepository {
	return tradeRepositoryHandler{Db: db}
}

func (h tradeRepositoryHandler) Add(tx *sql.Tx, trade model.Trade) (*model.Trade, error) {
	query := table.Trade.
		INSERT(table.Trade.MutableColumns).
		MODEL(trade).
		RETURNING(table.Trade.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Trade{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trade: %w", err)
	}

	return &out, nil
}

func (h tradeRepositoryHandler) List(portfolioID uuid.UUID) ([]model.Trade, error) {
	query := table.Trade.
		SELECT(table.Trade.AllColumns).
		WHERE(table.Trade.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(table.Trade.ExecutedAt.ASC())

	result := []model.Trade{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	return result, nil
}

func (h tradeRepositoryHandler) LinkToDecisionLog(tx *sql.Tx, tradeIDs []uuid.UUID, decisionLogID uuid.UUID) error {
	if len(tradeIDs) == 0 {
		return nil
	}

	ids := []postgres.Expression{}
	for _, id := range tradeIDs {
		ids = append(ids, postgres.UUID(id))
	}

	query := table.Trade.
		UPDATE(table.Trade.DecisionLogID).
		MODEL(model.Trade{
			DecisionLogID: &decisionLogID,
		}).
		WHERE(table.Trade.TradeID.IN(ids...))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to link trades to decision log: %w", err)
	}

	return nil
}
