// Command cleanup-tokens deletes expired e-mail verification tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Configuration is loaded the same way as the server (CONFIG_PATH or env).
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/adapter/postgres"
	"github.com/heartmarshall/unievent-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/unievent-backend/internal/app"
	"github.com/heartmarshall/unievent-backend/internal/config"
)

func main() {
	cfg, err := config.LoadJob()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deleted, err := token.New(pool).DeleteExpired(ctx, time.Now())
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("expired verification tokens deleted", slog.Int64("deleted", deleted))
}
