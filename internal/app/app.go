package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/unievent-backend/internal/adapter/postgres"
	bookmarkrepo "github.com/heartmarshall/unievent-backend/internal/adapter/postgres/bookmark"
	eventrepo "github.com/heartmarshall/unievent-backend/internal/adapter/postgres/event"
	reportrepo "github.com/heartmarshall/unievent-backend/internal/adapter/postgres/report"
	tokenrepo "github.com/heartmarshall/unievent-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/unievent-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/unievent-backend/internal/adapter/provider/breaker"
	"github.com/heartmarshall/unievent-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/unievent-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/unievent-backend/internal/adapter/provider/institution"
	"github.com/heartmarshall/unievent-backend/internal/adapter/provider/mailer"
	"github.com/heartmarshall/unievent-backend/internal/adapter/storage"
	"github.com/heartmarshall/unievent-backend/internal/auth"
	"github.com/heartmarshall/unievent-backend/internal/cache"
	"github.com/heartmarshall/unievent-backend/internal/config"
	"github.com/heartmarshall/unievent-backend/internal/media"
	"github.com/heartmarshall/unievent-backend/internal/ratelimit"
	authsvc "github.com/heartmarshall/unievent-backend/internal/service/auth"
	"github.com/heartmarshall/unievent-backend/internal/service/bookmark"
	"github.com/heartmarshall/unievent-backend/internal/service/event"
	"github.com/heartmarshall/unievent-backend/internal/service/moderation"
	"github.com/heartmarshall/unievent-backend/internal/service/recommend"
	"github.com/heartmarshall/unievent-backend/internal/service/report"
	"github.com/heartmarshall/unievent-backend/internal/transport/middleware"
	"github.com/heartmarshall/unievent-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// database, object storage and AI providers, builds the services and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("ratelimit_backend", cfg.RateLimit.Backend),
	)

	// Database.
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)
	events := eventrepo.New(pool)
	reports := reportrepo.New(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	bookmarks := bookmarkrepo.New(pool)

	// Object storage.
	store, err := storage.New(cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}

	// AI providers.
	breakerSettings := breaker.Settings{
		Failures:         cfg.AI.BreakerFailures,
		OpenFor:          cfg.AI.BreakerOpenFor,
		HalfOpenRequests: cfg.AI.BreakerHalfOpen,
	}
	classifier := claude.New(claude.Config{
		APIKey:  cfg.AI.AnthropicAPIKey,
		Model:   cfg.AI.AnthropicModel,
		Timeout: cfg.AI.RequestTimeout,
		Breaker: breakerSettings,
	}, logger)
	embedder, err := gemini.New(gemini.Config{
		APIKey:  cfg.AI.GeminiAPIKey,
		Model:   cfg.AI.GeminiModel,
		BaseURL: cfg.AI.GeminiBaseURL,
		Timeout: cfg.AI.RequestTimeout,
		Breaker: breakerSettings,
	}, logger)
	if err != nil {
		return fmt.Errorf("init gemini: %w", err)
	}

	limiter, closeLimiter, err := newLimiter(ctx, cfg.RateLimit, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	readCache := cache.New(cfg.Cache.Size, max(cfg.Cache.TTL, cfg.Cache.RecommendTTL))

	// Auth primitives.
	sessions := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionMaxAge)
	beta := auth.NewBetaGate(cfg.Auth.BetaSecret, cfg.Auth.BetaPassword, cfg.Auth.BetaTTL)
	emailTokens := auth.NewEmailTokenManager(cfg.Auth.EmailTokenSecret, cfg.Auth.SessionIssuer, cfg.Auth.EmailTokenTTL)

	// Services.
	eventService := event.NewService(
		logger,
		event.Config{
			UTCOffset:   cfg.Events.UTCOffset,
			CacheTTL:    cfg.Cache.TTL,
			PageSize:    cfg.Events.PageSize,
			MaxPageSize: cfg.Events.MaxPageSize,
		},
		events,
		reports,
		moderation.NewGate(logger, classifier),
		media.NewPipeline(logger, media.Options{}),
		media.NewUploader(store, logger),
		limiter,
		readCache,
		tx,
	)
	recommendEngine := recommend.NewEngine(logger, events, embedder, readCache, cfg.Cache.RecommendTTL)
	bookmarkService := bookmark.NewService(logger, bookmarks, limiter, readCache, cfg.Cache.TTL)
	reportService := report.NewService(logger, reports, events, tx, cfg.Auth.IsAdmin, readCache, cfg.Cache.TTL)
	authService := authsvc.NewService(
		logger,
		authsvc.Config{
			InstitutionalDomain: cfg.Auth.InstitutionalDomain,
			VerifyBaseURL:       cfg.Mail.PublicBaseURL,
		},
		users,
		tokens,
		institution.New(cfg.Auth.ProfileURL, cfg.Auth.MarkerCookie, logger),
		sessions,
		emailTokens,
		mailer.New(mailer.Config{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		}, logger),
		limiter,
		authsvc.NewAttemptTracker(),
		tx,
	)

	// Transport.
	eventHandler := rest.NewEventHandler(eventService, recommendEngine, store, logger)
	handler := rest.NewRouter(rest.Handlers{
		Auth: rest.NewAuthHandler(authService, beta, rest.CookieConfig{
			Session:       cfg.Auth.SessionCookie,
			Marker:        cfg.Auth.MarkerCookie,
			Beta:          cfg.Auth.BetaCookie,
			Secure:        cfg.Auth.CookieSecure,
			SessionMaxAge: cfg.Auth.SessionMaxAge,
		}, logger),
		Events:    eventHandler,
		Bookmarks: rest.NewBookmarkHandler(bookmarkService, eventHandler, logger),
		Admin:     rest.NewAdminHandler(reportService, logger),
		Cron:      rest.NewCronHandler(eventService, authService, cfg.Auth.CronSecret, logger),
		Health:    rest.NewHealthHandler(pool, store, BuildVersion()),
	}, rest.RouterConfig{
		CORS:          cfg.CORS,
		Cookies:       middleware.SessionCookies{Session: cfg.Auth.SessionCookie, Marker: cfg.Auth.MarkerCookie},
		Sessions:      sessions,
		IsAdmin:       cfg.Auth.IsAdmin,
		BetaPerMinute: cfg.Auth.BetaAttemptsPerMin,
	}, logger)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}

// newLimiter selects the rate-limit backend. The returned func releases it.
func newLimiter(ctx context.Context, cfg config.RateLimitConfig, logger *slog.Logger) (ratelimit.Limiter, func(), error) {
	if cfg.Backend == "redis" {
		r, err := ratelimit.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisPrefix, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("init redis limiter: %w", err)
		}
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, nil, fmt.Errorf("ping redis limiter: %w", err)
		}
		return r, func() {
			if err := r.Close(); err != nil {
				logger.Warn("close redis limiter", slog.String("error", err.Error()))
			}
		}, nil
	}

	m := ratelimit.NewMemory(cfg.CleanupInterval)
	return m, m.Stop, nil
}
