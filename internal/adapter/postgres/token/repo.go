// Package token implements the e-mail verification token repository using PostgreSQL.
package token

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/unievent-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unievent-backend/internal/domain"
)

const entity = "verification_token"

// Repo provides verification-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert stores the token hash for a user, replacing any previous token.
func (r *Repo) Upsert(ctx context.Context, t domain.VerificationToken) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO verification_tokens (user_id, token_hash, expires_at, is_valid)
		 VALUES ($1, $2, $3, true)
		 ON CONFLICT (user_id) DO UPDATE
		    SET token_hash = EXCLUDED.token_hash,
		        expires_at = EXCLUDED.expires_at,
		        is_valid = true,
		        created_at = now()`,
		t.UserID, t.TokenHash, t.ExpiresAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, t.UserID)
	}
	return nil
}

// GetByUser returns the outstanding token of a user.
func (r *Repo) GetByUser(ctx context.Context, userID string) (*domain.VerificationToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.VerificationToken
	err := q.QueryRow(ctx,
		`SELECT user_id, token_hash, expires_at, is_valid, created_at FROM verification_tokens WHERE user_id = $1`,
		userID,
	).Scan(&t.UserID, &t.TokenHash, &t.ExpiresAt, &t.IsValid, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return &t, nil
}

// Delete removes the token of a user.
func (r *Repo) Delete(ctx context.Context, userID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM verification_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return postgres.MapError(err, entity, userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, userID)
	}
	return nil
}

// DeleteExpired removes tokens that expired at or before now, and tokens
// that were invalidated. Returns the count of deleted rows.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM verification_tokens WHERE expires_at <= $1 OR NOT is_valid`, now)
	if err != nil {
		return 0, postgres.MapError(err, entity, "")
	}
	return tag.RowsAffected(), nil
}
