// Package event implements the Event repository using PostgreSQL.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/unievent-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unievent-backend/internal/domain"
)

const entity = "event"

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts the event and its contacts. Call it inside a transaction
// so a failing contact insert does not leave a half-written event.
func (r *Repo) Create(ctx context.Context, e *domain.Event) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO events (id, title, description, campus, date, registration_end_date, location,
		                     organizer, fee, has_starpoints, is_recruiting, categories, poster_urls,
		                     registration_link, author_id, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, true)
		 RETURNING is_active, created_at, updated_at`,
		e.ID, e.Title, e.Description, string(e.Campus), e.Date, e.RegistrationEndDate, e.Location,
		e.Organizer, e.Fee, e.HasStarpoints, e.IsRecruiting, nonNil(e.Categories), e.PosterKeys,
		e.RegistrationLink, e.AuthorID,
	).Scan(&e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, entity, e.ID)
	}

	if err := insertContacts(ctx, q, e.ID, e.Contacts); err != nil {
		return postgres.MapError(err, entity, e.ID)
	}
	return nil
}

// GetByID returns the event in any state together with its contacts.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEvent(q.QueryRow(ctx, `SELECT `+columns+` FROM events WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	rows, err := q.Query(ctx,
		`SELECT name, phone FROM event_contacts WHERE event_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	contacts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contact, error) {
		var c domain.Contact
		err := row.Scan(&c.Name, &c.Phone)
		return c, err
	})
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	e.Contacts = contacts

	return &e, nil
}

// UpdateDetails overwrites the editable detail columns of an active event.
// Returns domain.ErrNotFound when no active event has the id.
func (r *Repo) UpdateDetails(ctx context.Context, id string, d domain.EventDetails) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE events
		    SET title = $2, campus = $3, date = $4, registration_end_date = $5, location = $6,
		        organizer = $7, fee = $8, has_starpoints = $9, is_recruiting = $10,
		        categories = $11, registration_link = $12, updated_at = now()
		  WHERE id = $1 AND is_active`,
		id, d.Title, string(d.Campus), d.Date, d.RegistrationEndDate, d.Location,
		d.Organizer, d.Fee, d.HasStarpoints, d.IsRecruiting, nonNil(d.Categories), d.RegistrationLink,
	)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// ReplaceContacts deletes the event's contacts and inserts the new list.
func (r *Repo) ReplaceContacts(ctx context.Context, id string, contacts []domain.Contact) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM event_contacts WHERE event_id = $1`, id); err != nil {
		return postgres.MapError(err, entity, id)
	}
	if err := insertContacts(ctx, q, id, contacts); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}

// UpdateDescription replaces the description of an active event.
func (r *Repo) UpdateDescription(ctx context.Context, id, description string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE events SET description = $2, updated_at = now() WHERE id = $1 AND is_active`,
		id, description,
	)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// Delete removes the event. Contacts, reports and bookmarks cascade.
func (r *Repo) Delete(ctx context.Context, id string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// Deactivate marks one event inactive. Idempotent.
func (r *Repo) Deactivate(ctx context.Context, id string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE events SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// DeactivateExpired marks every active event whose date or registration
// deadline is not after now as inactive and returns how many changed.
func (r *Repo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE events
		    SET is_active = false, updated_at = now()
		  WHERE is_active AND (registration_end_date <= $1 OR date <= $1)`,
		now,
	)
	if err != nil {
		return 0, postgres.MapError(err, entity, "")
	}
	return tag.RowsAffected(), nil
}

func insertContacts(ctx context.Context, q postgres.Querier, eventID string, contacts []domain.Contact) error {
	if len(contacts) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, c := range contacts {
		batch.Queue(
			`INSERT INTO event_contacts (event_id, position, name, phone) VALUES ($1, $2, $3, $4)`,
			eventID, i, c.Name, c.Phone,
		)
	}

	br := q.SendBatch(ctx, batch)
	for range contacts {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert contact: %w", err)
		}
	}
	return br.Close()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
