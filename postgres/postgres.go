// Package postgres persists the store's blob slots in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/maska-snacks/review-wall/store"
)

// Postgres provides durable key-value slots in PostgreSQL.
type Postgres struct {
	bun *bun.DB
}

// Connect connects to the database and pings the DB to ensure the
// connection is working.
func Connect(ctx context.Context, connStr string) (*Postgres, error) {
	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	db := bun.NewDB(sqlDB, pgdialect.New())
	if _, err := db.NewCreateTable().
		Model((*blob)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("create blobs table: %w", err)
	}
	return &Postgres{
		bun: db,
	}, nil
}

// Get reads the blob at key, mapping a missing row to store.ErrNotFound.
func (pg *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var b blob
	err := pg.bun.NewSelect().
		Model(&b).
		Where("key = ?", key).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return b.Data, nil
}

// Set upserts the blob at key.
func (pg *Postgres) Set(ctx context.Context, key string, data []byte) error {
	b := &blob{
		Key:       key,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	_, err := pg.bun.NewInsert().
		Model(b).
		On("CONFLICT (key) DO UPDATE").
		Set("data = EXCLUDED.data, updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}
