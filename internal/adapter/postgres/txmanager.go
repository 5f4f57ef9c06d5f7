package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/unievent-backend/internal/metrics"
)

// TxManager gives services multi-repository atomicity: an event with its
// moderation report, a report decision with the event deactivation, a
// verified address with its consumed token.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx runs fn in a Read Committed transaction carried by the context.
// fn returning nil commits; an error or a panic rolls back. Calls nested in
// fn reuse the outer transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			metrics.DBTransactions.WithLabelValues("rollback").Inc()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		metrics.DBTransactions.WithLabelValues("rollback").Inc()
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.DBTransactions.WithLabelValues("rollback").Inc()
		return fmt.Errorf("commit transaction: %w", err)
	}
	metrics.DBTransactions.WithLabelValues("commit").Inc()
	return nil
}
