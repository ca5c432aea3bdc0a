package transactor

import (
	"context"
)

// Transactor runs function as single atomic unit of work.
// Changes made through ctx passed to txFunc are committed only if txFunc returns nil,
// otherwise they are rolled back. Nested calls join the outer unit of work.
type Transactor interface {
	WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error
}
