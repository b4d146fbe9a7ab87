//go:build unit

package dbtest

import (
	"context"

	"parkreserve/internal/infra/db"
	"parkreserve/internal/usecase/shared"
)

// StubUnitOfWork runs callbacks directly with a nil DBTX so command logic
// can be exercised against repository mocks without a database.
type StubUnitOfWork struct {
	// WithinErr, when set, is returned before the callback runs.
	WithinErr error
}

var _ shared.UnitOfWork = (*StubUnitOfWork)(nil)

func (s *StubUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	if s.WithinErr != nil {
		return s.WithinErr
	}
	return fn(ctx, nil)
}

func (s *StubUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, d db.DBTX) error) error {
	return fn(ctx, nil)
}
