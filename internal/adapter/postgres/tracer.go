package postgres

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/unievent-backend/internal/metrics"
)

const maxLoggedSQL = 200

type queryStartKey struct{}

type queryStart struct {
	sql string
	at  time.Time
}

// queryTracer times every query, feeds the duration histogram and logs
// queries slower than the threshold.
type queryTracer struct {
	log  *slog.Logger
	slow time.Duration
	now  func() time.Time
}

func newQueryTracer(logger *slog.Logger, slow time.Duration) *queryTracer {
	return &queryTracer{log: logger.With("component", "postgres"), slow: slow, now: time.Now}
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: data.SQL, at: t.now()})
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}
	elapsed := t.now().Sub(start.at)
	metrics.DBQueryDuration.Observe(elapsed.Seconds())

	if t.slow <= 0 || elapsed < t.slow {
		return
	}
	attrs := []any{
		slog.Duration("duration", elapsed),
		slog.String("sql", compactSQL(start.sql)),
	}
	if data.Err != nil {
		attrs = append(attrs, slog.String("error", data.Err.Error()))
	}
	t.log.WarnContext(ctx, "slow query", attrs...)
}

// compactSQL collapses whitespace and truncates long statements for logs.
func compactSQL(sql string) string {
	s := strings.Join(strings.Fields(sql), " ")
	if len(s) > maxLoggedSQL {
		return s[:maxLoggedSQL] + "..."
	}
	return s
}
