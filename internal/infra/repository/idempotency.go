package repository

import (
	"context"
	"time"

	"parkreserve/internal/infra"
	"parkreserve/internal/infra/db"
	"parkreserve/internal/usecase/commands"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

const tryInsertIdempotencyKeyQuery = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO NOTHING
`

// TryInsert claims the key with a conditional insert. Zero rows affected
// means another request (or an earlier replay) already holds it.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, d db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := d.Exec(ctx, tryInsertIdempotencyKeyQuery, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

const getIdempotencyKeyQuery = `
SELECT key, user_id, status, request_hash, result_reservation_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2
`

func (r *IdempotencyRepository) Get(ctx context.Context, d db.DBTX, key, userID uuid.UUID) (*commands.IdempotencyRecord, error) {
	var record commands.IdempotencyRecord
	err := d.QueryRow(ctx, getIdempotencyKeyQuery, key, userID).Scan(
		&record.Key, &record.UserID, &record.Status, &record.RequestHash,
		&record.ResultReservationID, &record.ExpiresAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load idempotency key", err)
	}
	return &record, nil
}

const markIdempotencyCompletedQuery = `
UPDATE idempotency_keys
SET status = 'completed', result_reservation_id = $3, updated_at = now()
WHERE key = $1 AND user_id = $2
`

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, d db.DBTX, key, userID, resultReservationID uuid.UUID) error {
	tag, err := d.Exec(ctx, markIdempotencyCompletedQuery, key, userID, resultReservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}
