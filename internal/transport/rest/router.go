package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/unievent-backend/internal/config"
	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/transport/middleware"
)

type sessionResolver interface {
	Resolve(marker, token string) (*domain.Identity, error)
}

// Handlers groups every endpoint handler the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Events    *EventHandler
	Bookmarks *BookmarkHandler
	Admin     *AdminHandler
	Cron      *CronHandler
	Health    *HealthHandler
}

// RouterConfig holds the cross-cutting settings of the router.
type RouterConfig struct {
	CORS          config.CORSConfig
	Cookies       middleware.SessionCookies
	Sessions      sessionResolver
	IsAdmin       func(userID string) bool
	BetaPerMinute int
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(h Handlers, cfg RouterConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
		middleware.SecurityHeaders(),
	)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Sessions, cfg.Cookies, logger))

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.LimitByIP(max(cfg.BetaPerMinute, 1), time.Minute)).Post("/beta-access", h.Auth.GrantBeta)
			r.Get("/beta-access", h.Auth.CheckBeta)
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/verify-email", h.Auth.VerifyEmail)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSession())
				r.Get("/me", h.Auth.Me)
				r.Post("/verify-email", h.Auth.RequestVerification)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.Events.List)
			r.Get("/search", h.Events.Search)
			r.With(middleware.RequireSession()).Get("/mine", h.Events.Mine)
			r.Get("/{id}", h.Events.Get)
			r.Get("/{id}/recommendations", h.Events.Recommendations)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSession())
				r.Post("/", h.Events.Create)
				r.Patch("/{id}", h.Events.UpdateDetails)
				r.Patch("/{id}/description", h.Events.UpdateDescription)
				r.Delete("/{id}", h.Events.Delete)
			})
		})

		r.Route("/user/bookmarks", func(r chi.Router) {
			r.Use(middleware.RequireSession())
			r.Get("/", h.Bookmarks.List)
			r.Post("/{eventId}", h.Bookmarks.Add)
			r.Delete("/{eventId}", h.Bookmarks.Remove)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(cfg.IsAdmin, logger))
			r.Get("/reports", h.Admin.ListReports)
			r.Patch("/reports/{id}", h.Admin.ResolveReport)
		})

		r.Get("/cron/active-events", h.Cron.DeactivateExpired)
		r.Get("/cron/verification-tokens", h.Cron.CleanupTokens)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
