// Package rest serves the JSON HTTP API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/domain"
)

// envelope is the body of every non-health response. Failures carry the
// message under both "message" and "error" for older clients.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Error   string              `json:"error,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeOK(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Message: message, Error: message})
}

// moderationMessage is the only detail a rejected submitter sees.
// unavailableRetryAfter is the Retry-After hint, in seconds, sent while a
// provider circuit breaker is open.
const unavailableRetryAfter = 30

const moderationMessage = "Your submission was rejected by our content policy. Please revise the title, description or posters and try again."

// handleError maps a service error to a status code and a client-safe
// message. Dependency failures are logged in full and reported generically.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve  *domain.ValidationError
		rle *domain.RateLimitError
	)

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, envelope{Message: "validation failed", Error: "validation failed", Errors: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		log.WarnContext(r.Context(), "forbidden", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		writeError(w, http.StatusForbidden, "you are not allowed to do this")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInactive):
		writeError(w, http.StatusConflict, "event is no longer active")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrModerationRejected):
		writeError(w, http.StatusUnprocessableEntity, moderationMessage)
	case errors.Is(err, domain.ErrUnsupportedMedia):
		writeError(w, http.StatusUnsupportedMediaType, "posters must be JPEG, PNG or WebP images")
	case errors.As(err, &rle):
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rle)))
		writeError(w, http.StatusTooManyRequests, "too many requests, please slow down")
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "too many requests, please slow down")
	case errors.Is(err, domain.ErrUnavailable):
		log.WarnContext(r.Context(), "dependency unavailable",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		w.Header().Set("Retry-After", strconv.Itoa(unavailableRetryAfter))
		writeError(w, http.StatusServiceUnavailable, "service temporarily unavailable, please try again shortly")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func retryAfterSeconds(rle *domain.RateLimitError) int {
	s := int(rle.RetryAfter / time.Second)
	if rle.RetryAfter%time.Second != 0 {
		s++
	}
	return max(s, 1)
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON body")
	}
	return nil
}
