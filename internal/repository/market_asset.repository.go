package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type MarketAssetRepository interface {
	ListEnabled() ([]model.MarketAsset, error)
	// GetBySymbol returns (nil, nil) when the symbol is unknown.
	GetBySymbol(symbol string) (*model.MarketAsset, error)
}

type marketAssetRepositoryHandler struct {
	Db *sql.DB
}

func NewMarketAssetRepository(db *sql.DB) MarketAssetRepository {
	return marketAssetRepositoryHandler{Db: db}
}

func (h marketAssetRepositoryHandler) ListEnabled() ([]model.MarketAsset, error) {
	query := table.MarketAsset.
		SELECT(table.MarketAsset.AllColumns).
		WHERE(table.MarketAsset.IsEnabled.IS_TRUE())

	result := []model.MarketAsset{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled market assets: %w", err)
	}

	return result, nil
}

func (h marketAssetRepositoryHandler) GetBySymbol(symbol string) (*model.MarketAsset, error) {
	query := table.MarketAsset.
		SELECT(table.MarketAsset.AllColumns).
		WHERE(postgres.AND(
			table.MarketAsset.Symbol.EQ(postgres.String(symbol)),
			table.MarketAsset.IsEnabled.IS_TRUE(),
		))

	result := model.MarketAsset{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get market asset %s: %w", symbol, err)
	}

	return &result, nil
}
