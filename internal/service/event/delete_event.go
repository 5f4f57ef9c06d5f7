package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/unievent-backend/internal/cache"
	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/ratelimit"
	"github.com/heartmarshall/unievent-backend/pkg/ctxutil"
)

// DeleteEvent removes an event owned by the caller together with its
// posters. A storage failure rolls the row deletion back.
func (s *Service) DeleteEvent(ctx context.Context, eventID string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := ratelimit.Check(ctx, s.limiter, ratelimit.ActionDelete, userID, ratelimit.DeleteEvent); err != nil {
		return err
	}

	if !domain.ValidEventID(eventID) {
		s.log.WarnContext(ctx, "delete with malformed event id",
			slog.String("user_id", userID),
			slog.String("event_id", eventID),
		)
		return domain.NewValidationError("eventId", "invalid event id")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ev, err := s.events.GetByID(txCtx, eventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if !ev.IsOwnedBy(userID) {
			s.log.WarnContext(ctx, "delete by non-author refused",
				slog.String("user_id", userID),
				slog.String("event_id", eventID),
				slog.String("author_id", ev.AuthorID),
			)
			return domain.ErrForbidden
		}
		if err := s.events.Delete(txCtx, eventID); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		if err := s.posters.Remove(txCtx, ev.PosterKeys); err != nil {
			return fmt.Errorf("remove posters: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(
		cache.TagEvents,
		cache.EventTag(eventID),
		cache.UserEventsTag(userID),
		cache.TagBookmarks,
	)

	s.log.InfoContext(ctx, "event deleted",
		slog.String("user_id", userID),
		slog.String("event_id", eventID),
	)
	return nil
}
