package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the read side shared by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
