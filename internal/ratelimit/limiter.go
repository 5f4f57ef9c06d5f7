// Package ratelimit provides per-user action limits with in-memory and
// Redis-backed fixed-window counters.
package ratelimit

import (
	"context"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/metrics"
)

// Limit is the number of requests allowed within one window.
type Limit struct {
	MaxRequests int
	Window      time.Duration
}

// Per-action limits.
var (
	Default           = Limit{MaxRequests: 20, Window: 30 * time.Second}
	CreateEvent       = Limit{MaxRequests: 2, Window: 30 * time.Second}
	DeleteEvent       = Limit{MaxRequests: 2, Window: 30 * time.Second}
	UpdateDetails     = Limit{MaxRequests: 5, Window: 30 * time.Second}
	UpdateDescription = Limit{MaxRequests: 5, Window: 30 * time.Second}
	Bookmark          = Limit{MaxRequests: 50, Window: 30 * time.Second}
	VerifyEmail       = Limit{MaxRequests: 5, Window: 30 * time.Second}
)

// Action names used as key prefixes.
const (
	ActionCreate            = "create"
	ActionDelete            = "delete"
	ActionUpdateDetails     = "update-details"
	ActionUpdateDescription = "update-description"
	ActionBookmark          = "bookmark"
	ActionVerifyEmail       = "verify-email"
)

// Limiter decides whether a request identified by key fits into limit.
type Limiter interface {
	Allow(ctx context.Context, key string, limit Limit) bool
}

// Key builds the counter key for an action performed by a user.
func Key(action, userID string) string {
	return action + ":" + userID
}

// Check consumes one request for action on behalf of userID.
// A denial is returned as *domain.RateLimitError.
func Check(ctx context.Context, l Limiter, action, userID string, limit Limit) error {
	if l.Allow(ctx, Key(action, userID), limit) {
		return nil
	}
	metrics.RateLimitDenials.WithLabelValues(action).Inc()
	return domain.NewRateLimitError(action, limit.Window)
}
