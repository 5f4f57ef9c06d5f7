package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/unievent-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a random matric id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        "m-" + suffix,
		Name:      "Student " + suffix,
		Email:     "student-" + suffix + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Email, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// EventOption customises a seeded event.
type EventOption func(*domain.Event)

// WithCategories sets the event categories.
func WithCategories(categories ...string) EventOption {
	return func(e *domain.Event) { e.Categories = categories }
}

// WithDates sets the event date and registration deadline.
func WithDates(date, registrationEnd time.Time) EventOption {
	return func(e *domain.Event) {
		e.Date = date
		e.RegistrationEndDate = registrationEnd
	}
}

// WithTitle sets the title.
func WithTitle(title string) EventOption {
	return func(e *domain.Event) { e.Title = title }
}

// Inactive marks the event inactive.
func Inactive() EventOption {
	return func(e *domain.Event) { e.IsActive = false }
}

// WithCreatedAt sets created_at, which drives "newest first" ordering.
func WithCreatedAt(ts time.Time) EventOption {
	return func(e *domain.Event) { e.CreatedAt = ts }
}

// WithFee sets the fee string.
func WithFee(fee string) EventOption {
	return func(e *domain.Event) { e.Fee = fee }
}

// SeedEvent inserts an active event owned by authorID, one week in the future.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, authorID string, opts ...EventOption) domain.Event {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.Event{
		ID:                  domain.NewEventID(),
		Title:               "Event " + uniqueSuffix(),
		Description:         "<p>Seeded event</p>",
		Campus:              domain.CampusGombak,
		Date:                now.Add(7 * 24 * time.Hour),
		RegistrationEndDate: now.Add(6 * 24 * time.Hour),
		Location:            "Main Auditorium",
		Organizer:           "Student Council",
		Fee:                 "0",
		Categories:          []string{"workshop"},
		PosterKeys:          []string{"events/test/" + uniqueSuffix() + ".webp"},
		Contacts:            []domain.Contact{{Name: "Ali", Phone: "0123456789"}},
		AuthorID:            authorID,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, opt := range opts {
		opt(&e)
	}

	ctx := context.Background()
	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, title, description, campus, date, registration_end_date, location,
		                     organizer, fee, has_starpoints, is_recruiting, categories, poster_urls,
		                     registration_link, author_id, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		e.ID, e.Title, e.Description, string(e.Campus), e.Date, e.RegistrationEndDate, e.Location,
		e.Organizer, e.Fee, e.HasStarpoints, e.IsRecruiting, e.Categories, e.PosterKeys,
		e.RegistrationLink, e.AuthorID, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent: %v", err)
	}

	for i, c := range e.Contacts {
		_, err := pool.Exec(ctx,
			`INSERT INTO event_contacts (event_id, position, name, phone) VALUES ($1, $2, $3, $4)`,
			e.ID, i, c.Name, c.Phone,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedEvent contact: %v", err)
		}
	}
	return e
}

// SeedBookmark bookmarks eventID for userID.
func SeedBookmark(t *testing.T, pool *pgxpool.Pool, userID, eventID string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO bookmarks (user_id, event_id) VALUES ($1, $2)`, userID, eventID)
	if err != nil {
		t.Fatalf("testhelper: SeedBookmark: %v", err)
	}
}

// DB wraps a test pool with small query helpers.
type DB struct {
	Pool *pgxpool.Pool
}

// Count runs a single-value count query.
func (db *DB) Count(t *testing.T, query string, args ...any) int {
	t.Helper()

	var n int
	if err := db.Pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: Count: %v", err)
	}
	return n
}
