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
)

type EquitySnapshotRepository interface {
	Add(tx *sql.Tx, snapshot model.EquitySnapshot) (*model.EquitySnapshot, error)
	// List returns snapshots ordered by capture time, optionally
	// bounded to [from, to].
	List(portfolioID uuid.UUID, from, to *time.Time) ([]model.EquitySnapshot, error)
	GetLatest(portfolioID uuid.UUID) (*model.EquitySnapshot, error)
}

type equitySnapshotRepositoryHandler struct {
	Db *sql.DB
}

func NewEquitySnapshotRepository(db *sql.DB) EquitySnapshotRepository {
	return equitySnapshotRepositoryHandler{Db: db}
}

func (h equitySnapshotRepositoryHandler) Add(tx *sql.Tx, snapshot model.EquitySnapshot) (*model.EquitySnapshot, error) {
	query := table.EquitySnapshot.
		INSERT(table.EquitySnapshot.MutableColumns).
		MODEL(snapshot).
		RETURNING(table.EquitySnapshot.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.EquitySnapshot{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert equity snapshot: %w", err)
	}

	return &out, nil
}

func (h equitySnapshotRepositoryHandler) List(portfolioID uuid.UUID, from, to *time.Time) ([]model.EquitySnapshot, error) {
	conditions := []postgres.BoolExpression{
		table.EquitySnapshot.PortfolioID.EQ(postgres.UUID(portfolioID)),
	}
	if from != nil {
		conditions = append(conditions, table.EquitySnapshot.CapturedAt.GT_EQ(postgres.TimestampzT(*from)))
	}
	if to != nil {
		conditions = append(conditions, table.EquitySnapshot.CapturedAt.LT_EQ(postgres.TimestampzT(*to)))
	}

	query := table.EquitySnapshot.
		SELECT(table.EquitySnapshot.AllColumns).
		WHERE(postgres.AND(conditions...)).
		ORDER_BY(table.EquitySnapshot.CapturedAt.ASC())

	result := []model.EquitySnapshot{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list equity snapshots: %w", err)
	}

	return result, nil
}

func (h equitySnapshotRepositoryHandler) GetLatest(portfolioID uuid.UUID) (*model.EquitySnapshot, error) {
	query := table.EquitySnapshot.
		SELECT(table.EquitySnapshot.AllColumns).
		WHERE(table.EquitySnapshot.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(table.EquitySnapshot.CapturedAt.DESC()).
		LIMIT(1)

	result := model.EquitySnapshot{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest equity snapshot: %w", err)
	}

	return &result, nil
}
