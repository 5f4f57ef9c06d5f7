package rest

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

type deactivator interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

type tokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// CronHandler serves endpoints triggered by an external scheduler.
type CronHandler struct {
	events deactivator
	tokens tokenCleaner
	secret string
	log    *slog.Logger
}

// NewCronHandler creates a CronHandler guarded by a shared bearer secret.
func NewCronHandler(events deactivator, tokens tokenCleaner, secret string, logger *slog.Logger) *CronHandler {
	return &CronHandler{events: events, tokens: tokens, secret: secret, log: logger.With("handler", "cron")}
}

type deactivateResponse struct {
	Deactivated int64 `json:"deactivated"`
}

type cleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

// DeactivateExpired handles GET /api/cron/active-events.
func (h *CronHandler) DeactivateExpired(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		h.log.WarnContext(r.Context(), "cron request rejected", slog.String("remote_addr", r.RemoteAddr))
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	n, err := h.events.DeactivateExpired(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.log.InfoContext(r.Context(), "expired events deactivated", slog.Int64("deactivated", n))
	writeData(w, http.StatusOK, deactivateResponse{Deactivated: n})
}

// CleanupTokens handles GET /api/cron/verification-tokens.
func (h *CronHandler) CleanupTokens(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		h.log.WarnContext(r.Context(), "cron request rejected", slog.String("remote_addr", r.RemoteAddr))
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	n, err := h.tokens.CleanupExpiredTokens(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, cleanupResponse{Deleted: n})
}

func (h *CronHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return false
	}
	token := extractBearer(r)
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
