// Package bookmark manages the events a user saved for later.
package bookmark

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/cache"
	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/ratelimit"
	"github.com/heartmarshall/unievent-backend/pkg/ctxutil"
)

type bookmarkRepo interface {
	Add(ctx context.Context, userID, eventID string) error
	Remove(ctx context.Context, userID, eventID string) error
	ListEvents(ctx context.Context, userID string) ([]domain.Event, error)
}

type rateLimiter interface {
	Allow(ctx context.Context, key string, limit ratelimit.Limit) bool
}

// Service provides bookmark operations.
type Service struct {
	bookmarks bookmarkRepo
	limiter   rateLimiter
	cache     *cache.Tagged
	ttl       time.Duration
	log       *slog.Logger
}

// NewService creates a new bookmark service.
func NewService(log *slog.Logger, bookmarks bookmarkRepo, limiter rateLimiter, c *cache.Tagged, ttl time.Duration) *Service {
	return &Service{
		bookmarks: bookmarks,
		limiter:   limiter,
		cache:     c,
		ttl:       ttl,
		log:       log.With("service", "bookmark"),
	}
}

// Add bookmarks an event. Adding an existing bookmark is a no-op.
func (s *Service) Add(ctx context.Context, eventID string) error {
	userID, err := s.begin(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.bookmarks.Add(ctx, userID, eventID); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	s.cache.Invalidate(cache.UserBookmarksTag(userID))

	s.log.InfoContext(ctx, "bookmark added", slog.String("user_id", userID), slog.String("event_id", eventID))
	return nil
}

// Remove deletes a bookmark. A missing bookmark yields domain.ErrNotFound.
func (s *Service) Remove(ctx context.Context, eventID string) error {
	userID, err := s.begin(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.bookmarks.Remove(ctx, userID, eventID); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	s.cache.Invalidate(cache.UserBookmarksTag(userID))

	s.log.InfoContext(ctx, "bookmark removed", slog.String("user_id", userID), slog.String("event_id", eventID))
	return nil
}

// List returns the caller's bookmarked events, newest bookmark first.
func (s *Service) List(ctx context.Context) ([]domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tags := []string{cache.TagBookmarks, cache.TagEvents, cache.UserBookmarksTag(userID)}
	return cache.Fetch(ctx, s.cache, cache.Key("bookmarks", userID), s.ttl, tags,
		func(ctx context.Context) ([]domain.Event, error) {
			events, err := s.bookmarks.ListEvents(ctx, userID)
			if err != nil {
				return nil, fmt.Errorf("list bookmarks: %w", err)
			}
			return events, nil
		})
}

// begin checks the session, the bookmark rate limit and the event id.
func (s *Service) begin(ctx context.Context, eventID string) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if err := ratelimit.Check(ctx, s.limiter, ratelimit.ActionBookmark, userID, ratelimit.Bookmark); err != nil {
		return "", err
	}
	if !domain.ValidEventID(eventID) {
		return "", domain.NewValidationError("eventId", "invalid event id")
	}
	return userID, nil
}
