package event

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/unievent-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unievent-backend/internal/domain"
)

const columns = `id, title, description, campus, date, registration_end_date, location, organizer,
	fee, has_starpoints, is_recruiting, categories, poster_urls, registration_link, author_id,
	is_active, created_at, updated_at`

func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		e      domain.Event
		campus string
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &campus, &e.Date, &e.RegistrationEndDate, &e.Location,
		&e.Organizer, &e.Fee, &e.HasStarpoints, &e.IsRecruiting, &e.Categories, &e.PosterKeys,
		&e.RegistrationLink, &e.AuthorID, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	e.Campus = domain.Campus(campus)
	return e, err
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Event, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, entity, "")
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, "")
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, entity, "")
	}
	return events, nil
}

func selectEvents() sq.SelectBuilder {
	return postgres.Builder().Select(columns).From("events")
}

func page(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return b
}

// ListActive returns active events, newest first.
func (r *Repo) ListActive(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	b := selectEvents().
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at DESC", "id")
	return r.list(ctx, page(b, limit, offset))
}

// Search returns active events matching every filter that is set.
// f.Categories must already be expanded to concrete terms.
func (r *Repo) Search(ctx context.Context, f domain.EventFilter) ([]domain.Event, error) {
	return r.list(ctx, page(searchQuery(f), f.Limit, f.Offset))
}

func searchQuery(f domain.EventFilter) sq.SelectBuilder {
	b := selectEvents().Where(sq.Eq{"is_active": true})

	if f.Query != "" {
		p := postgres.ContainsPattern(f.Query)
		b = b.Where(sq.Or{
			sq.ILike{"title": p},
			sq.ILike{"description": p},
			sq.ILike{"organizer": p},
			sq.ILike{"location": p},
		})
	}
	if len(f.Categories) > 0 {
		b = b.Where("categories && ?", f.Categories)
	}
	if f.Campus != nil {
		b = b.Where(sq.Eq{"campus": string(*f.Campus)})
	}
	if f.HasFee != nil {
		if *f.HasFee {
			b = b.Where(sq.NotEq{"fee": "0"})
		} else {
			b = b.Where(sq.Eq{"fee": "0"})
		}
	}
	if f.HasStarpoints != nil {
		b = b.Where(sq.Eq{"has_starpoints": *f.HasStarpoints})
	}
	if f.IsRecruiting != nil {
		b = b.Where(sq.Eq{"is_recruiting": *f.IsRecruiting})
	}

	return b.OrderBy("created_at DESC", "id")
}

// ListByAuthor returns every event posted by authorID in any state, newest first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID string) ([]domain.Event, error) {
	b := selectEvents().
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("created_at DESC", "id")
	return r.list(ctx, b)
}

// ListCandidates returns up to limit active events other than excludeID,
// newest first.
func (r *Repo) ListCandidates(ctx context.Context, excludeID string, limit int) ([]domain.Event, error) {
	b := selectEvents().
		Where(sq.Eq{"is_active": true}).
		Where(sq.NotEq{"id": excludeID}).
		OrderBy("created_at DESC", "id")
	return r.list(ctx, page(b, limit, 0))
}
