package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/unievent-backend/internal/domain"
)

type bookmarkService interface {
	Add(ctx context.Context, eventID string) error
	Remove(ctx context.Context, eventID string) error
	List(ctx context.Context) ([]domain.Event, error)
}

// BookmarkHandler serves the user's bookmark endpoints.
type BookmarkHandler struct {
	svc    bookmarkService
	events *EventHandler
	log    *slog.Logger
}

// NewBookmarkHandler creates a BookmarkHandler. Events are rendered the
// same way the event endpoints render them.
func NewBookmarkHandler(svc bookmarkService, events *EventHandler, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{svc: svc, events: events, log: logger.With("handler", "bookmark")}
}

// List handles GET /api/user/bookmarks.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, h.events.toEvents(events))
}

// Add handles POST /api/user/bookmarks/{eventId}.
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Add(r.Context(), chi.URLParam(r, "eventId")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Success: true, Message: "bookmarked"})
}

// Remove handles DELETE /api/user/bookmarks/{eventId}.
func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), chi.URLParam(r, "eventId")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, "bookmark removed")
}
