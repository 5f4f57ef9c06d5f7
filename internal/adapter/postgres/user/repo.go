// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/unievent-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unievent-backend/internal/domain"
)

const (
	entity  = "user"
	columns = "id, name, email, institutional_email, image_url, email_verified, created_at, updated_at"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert creates the user on first login and refreshes the profile fields
// on later logins. Verification state is preserved.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	got, err := scanUser(q.QueryRow(ctx,
		`INSERT INTO users (id, name, email, image_url)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE
		    SET name = EXCLUDED.name,
		        email = EXCLUDED.email,
		        image_url = COALESCE(EXCLUDED.image_url, users.image_url),
		        updated_at = now()
		 RETURNING `+columns,
		u.ID, u.Name, u.Email, u.ImageURL,
	))
	if err != nil {
		return nil, postgres.MapError(err, entity, u.ID)
	}
	return &got, nil
}

// GetByID returns a user by matric id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	got, err := scanUser(q.QueryRow(ctx, `SELECT `+columns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return &got, nil
}

// MarkEmailVerified stores the verified institutional e-mail.
func (r *Repo) MarkEmailVerified(ctx context.Context, id, institutionalEmail string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE users SET institutional_email = $2, email_verified = true, updated_at = now() WHERE id = $1`,
		id, institutionalEmail,
	)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.InstitutionalEmail, &u.ImageURL, &u.EmailVerified, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
