// Command deactivate marks every active event whose date has passed as
// inactive. It is intended to be invoked by an external cron job; the same
// sweep is reachable over HTTP at GET /api/cron/active-events.
//
// The command runs outside the server and cannot touch its in-process read
// cache, so served lists may show swept events until their entries expire
// (Cache.TTL, Cache.RecommendTTL for recommendations). Schedule the HTTP
// endpoint when lists must drop expired events immediately.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unievent-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/unievent-backend/internal/app"
	"github.com/heartmarshall/unievent-backend/internal/config"
)

func main() {
	cfg, err := config.LoadJob()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	n, err := event.New(pool).DeactivateExpired(ctx, now)
	if err != nil {
		logger.Error("deactivate expired events failed",
			slog.String("error", err.Error()),
			slog.Time("now", now),
		)
		os.Exit(1)
	}

	logger.Info("deactivate expired events completed",
		slog.Int64("deactivated", n),
		slog.Time("now", now),
	)
}
