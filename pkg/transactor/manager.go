package transactor

import "context"

// Manager runs fn inside a single database transaction carried by ctx. Nested
// calls join the outer transaction.
type Manager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
