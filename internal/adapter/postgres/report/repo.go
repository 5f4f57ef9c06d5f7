// Package report implements the EventReport repository using PostgreSQL.
package report

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/unievent-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unievent-backend/internal/domain"
)

const (
	entity  = "event_report"
	columns = "id, event_id, reason, reported_by, status, type, created_at, updated_at"
)

// Repo provides event report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a report. A zero ID is replaced with a new UUID.
func (r *Repo) Create(ctx context.Context, rep *domain.EventReport) error {
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	if rep.Status == "" {
		rep.Status = domain.ReportStatusPending
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	err := q.QueryRow(ctx,
		`INSERT INTO event_reports (id, event_id, reason, reported_by, status, type)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		rep.ID, rep.EventID, rep.Reason, rep.ReportedBy, string(rep.Status), string(rep.Type),
	).Scan(&rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, entity, rep.ID.String())
	}
	return nil
}

// GetByID returns a report by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EventReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rep, err := scanReport(q.QueryRow(ctx, `SELECT `+columns+` FROM event_reports WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id.String())
	}
	return &rep, nil
}

// List returns reports newest first, optionally filtered by status.
func (r *Repo) List(ctx context.Context, status *domain.ReportStatus, limit int) ([]domain.EventReport, error) {
	b := postgres.Builder().Select(columns).From("event_reports").OrderBy("created_at DESC", "id")
	if status != nil {
		b = b.Where(sq.Eq{"status": string(*status)})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, entity, "")
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, "")
	}
	reports, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EventReport, error) {
		return scanReport(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, entity, "")
	}
	return reports, nil
}

// UpdateStatus sets the status of a report and returns the updated row.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.EventReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rep, err := scanReport(q.QueryRow(ctx,
		`UPDATE event_reports SET status = $2, updated_at = now() WHERE id = $1 RETURNING `+columns,
		id, string(status),
	))
	if err != nil {
		return nil, postgres.MapError(err, entity, id.String())
	}
	return &rep, nil
}

func scanReport(row pgx.Row) (domain.EventReport, error) {
	var (
		rep          domain.EventReport
		status, kind string
	)
	err := row.Scan(&rep.ID, &rep.EventID, &rep.Reason, &rep.ReportedBy, &status, &kind, &rep.CreatedAt, &rep.UpdatedAt)
	rep.Status = domain.ReportStatus(status)
	rep.Type = domain.ReportType(kind)
	return rep, err
}
