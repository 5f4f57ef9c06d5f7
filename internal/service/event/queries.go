package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/unievent-backend/internal/cache"
	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/pkg/ctxutil"
)

// Cached read path names.
const (
	pathHomepage = "homepage"
	pathSearch   = "search"
	pathDetail   = "event"
	pathMine     = "mine"
)

type pageKey struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ListHomepage returns active events, newest first.
func (s *Service) ListHomepage(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	limit, offset = s.page(limit, offset)
	key := cache.Key(pathHomepage, pageKey{Limit: limit, Offset: offset})

	return cache.Fetch(ctx, s.cache, key, s.cfg.CacheTTL, []string{cache.TagEvents},
		func(ctx context.Context) ([]domain.Event, error) {
			events, err := s.events.ListActive(ctx, limit, offset)
			if err != nil {
				return nil, fmt.Errorf("list events: %w", err)
			}
			return events, nil
		})
}

// Search runs a discovery search over active events. Top-level category
// names expand to every term under them.
func (s *Service) Search(ctx context.Context, f domain.EventFilter) ([]domain.Event, error) {
	f.Query = strings.TrimSpace(f.Query)
	f.Categories = domain.ExpandCategories(f.Categories)
	if f.Campus != nil && !f.Campus.IsValid() {
		return nil, domain.NewValidationError("campus", "must be one of Gombak, Kuantan, Pagoh, Gambang")
	}
	f.Limit, f.Offset = s.page(f.Limit, f.Offset)

	key := cache.Key(pathSearch, f)
	return cache.Fetch(ctx, s.cache, key, s.cfg.CacheTTL, []string{cache.TagEvents},
		func(ctx context.Context) ([]domain.Event, error) {
			events, err := s.events.Search(ctx, f)
			if err != nil {
				return nil, fmt.Errorf("search events: %w", err)
			}
			return events, nil
		})
}

// GetEvent returns an event in any state with its contacts.
func (s *Service) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	if !domain.ValidEventID(eventID) {
		return nil, domain.ErrNotFound
	}

	key := cache.Key(pathDetail, eventID)
	return cache.Fetch(ctx, s.cache, key, s.cfg.CacheTTL, []string{cache.TagEvents, cache.EventTag(eventID)},
		func(ctx context.Context) (*domain.Event, error) {
			ev, err := s.events.GetByID(ctx, eventID)
			if err != nil {
				return nil, fmt.Errorf("get event: %w", err)
			}
			return ev, nil
		})
}

// ListMine returns every event posted by the caller, active or not.
func (s *Service) ListMine(ctx context.Context) ([]domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	key := cache.Key(pathMine, userID)
	return cache.Fetch(ctx, s.cache, key, s.cfg.CacheTTL, []string{cache.TagEvents, cache.UserEventsTag(userID)},
		func(ctx context.Context) ([]domain.Event, error) {
			events, err := s.events.ListByAuthor(ctx, userID)
			if err != nil {
				return nil, fmt.Errorf("list user events: %w", err)
			}
			return events, nil
		})
}
