package shared

import (
	"context"

	"parkreserve/internal/infra/db"
)

// UnitOfWork serializes multi-statement mutations. Every reservation
// mutation that touches both the reservations table and the slot
// availability flag runs inside Within, which is what closes the
// double-booking race: the overlap check and both writes commit or roll
// back together.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, d db.DBTX) error) error
}
