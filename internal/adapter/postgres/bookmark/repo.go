// Package bookmark implements the bookmark repository using PostgreSQL.
package bookmark

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/unievent-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unievent-backend/internal/domain"
)

const entity = "bookmark"

// Repo provides bookmark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bookmark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Add bookmarks an event. Adding an existing bookmark is a no-op.
// Returns domain.ErrNotFound when the event or user does not exist.
func (r *Repo) Add(ctx context.Context, userID, eventID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO bookmarks (user_id, event_id) VALUES ($1, $2) ON CONFLICT (user_id, event_id) DO NOTHING`,
		userID, eventID,
	)
	if err != nil {
		return postgres.MapError(err, entity, eventID)
	}
	return nil
}

// Remove deletes a bookmark. Returns domain.ErrNotFound when there was none.
func (r *Repo) Remove(ctx context.Context, userID, eventID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		return postgres.MapError(err, entity, eventID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, eventID)
	}
	return nil
}

// ListEvents returns the bookmarked events of a user, most recently
// bookmarked first. Inactive events are included.
func (r *Repo) ListEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT e.id, e.title, e.campus, e.date, e.registration_end_date, e.location, e.organizer,
		        e.fee, e.categories, e.poster_urls, e.author_id, e.is_active, e.created_at
		   FROM bookmarks b
		   JOIN events e ON e.id = b.event_id
		  WHERE b.user_id = $1
		  ORDER BY b.created_at DESC, e.id`,
		userID,
	)
	if err != nil {
		return nil, postgres.MapError(err, entity, "")
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			e      domain.Event
			campus string
		)
		err := row.Scan(&e.ID, &e.Title, &campus, &e.Date, &e.RegistrationEndDate, &e.Location, &e.Organizer,
			&e.Fee, &e.Categories, &e.PosterKeys, &e.AuthorID, &e.IsActive, &e.CreatedAt)
		e.Campus = domain.Campus(campus)
		return e, err
	})
	if err != nil {
		return nil, postgres.MapError(err, entity, "")
	}
	return events, nil
}
