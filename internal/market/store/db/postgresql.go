package storedb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/shopbuddy-backend/internal/logging"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
	"github.com/xw1nchester/shopbuddy-backend/pkg/transactor"
	pgtx "github.com/xw1nchester/shopbuddy-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

type repository struct {
	client    *pgxpool.Pool
	txManager transactor.Manager
	logger    *zap.Logger
}

func NewPostgres(client *pgxpool.Pool, txManager transactor.Manager, logger *zap.Logger) *repository {
	return &repository{
		client:    client,
		txManager: txManager,
		logger:    logger,
	}
}

func (r *repository) GetAllStores(ctx context.Context) ([]store.StoreRecord, error) {
	var stores []store.StoreRecord

	err := r.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error

		stores, err = r.getStores(ctx)
		if err != nil {
			return err
		}

		inventory, err := r.getInventory(ctx)
		if err != nil {
			return err
		}

		for i := range stores {
			stores[i].Inventory = inventory[stores[i].ID]
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stores, nil
}

func (r *repository) GetStoreByID(ctx context.Context, id string) (*store.StoreRecord, error) {
	var record store.StoreRecord

	err := r.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		query := `
			SELECT id, name, latitude, longitude, hours, address
			FROM stores
			WHERE id=$1
		`

		logging.LogSQLQuery(r.logger, query, id)

		executor := pgtx.GetExecutor(ctx, r.client)

		if err := executor.QueryRow(ctx, query, id).Scan(
			&record.ID,
			&record.Name,
			&record.Latitude,
			&record.Longitude,
			&record.Hours,
			&record.Address,
		); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrStoreNotFound
			}
			return err
		}

		inventory, err := r.getStoreInventory(ctx, id)
		if err != nil {
			return err
		}

		record.Inventory = inventory

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *repository) getStores(ctx context.Context) ([]store.StoreRecord, error) {
	query := `
		SELECT id, name, latitude, longitude, hours, address
		FROM stores
		ORDER BY position, id
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]store.StoreRecord, 0)
	for rows.Next() {
		var s store.StoreRecord

		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Latitude,
			&s.Longitude,
			&s.Hours,
			&s.Address,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		stores = append(stores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return stores, nil
}

func (r *repository) getInventory(ctx context.Context) (map[string][]store.InventoryItem, error) {
	query := `
		SELECT store_id, name, in_stock, quantity, price
		FROM inventory_items
		ORDER BY store_id, position, name
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inventory := make(map[string][]store.InventoryItem)
	for rows.Next() {
		var (
			storeID string
			item    store.InventoryItem
		)

		if err := rows.Scan(
			&storeID,
			&item.Name,
			&item.InStock,
			&item.Quantity,
			&item.Price,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		inventory[storeID] = append(inventory[storeID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return inventory, nil
}

func (r *repository) getStoreInventory(ctx context.Context, storeID string) ([]store.InventoryItem, error) {
	query := `
		SELECT name, in_stock, quantity, price
		FROM inventory_items
		WHERE store_id=$1
		ORDER BY position, name
	`

	logging.LogSQLQuery(r.logger, query, storeID)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]store.InventoryItem, 0)
	for rows.Next() {
		var item store.InventoryItem

		if err := rows.Scan(
			&item.Name,
			&item.InStock,
			&item.Quantity,
			&item.Price,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return items, nil
}
