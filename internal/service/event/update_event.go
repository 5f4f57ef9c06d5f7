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

// UpdateEventDetails replaces the editable fields and the contact list of an
// active event owned by the caller. Moderation is not re-run.
func (s *Service) UpdateEventDetails(ctx context.Context, input UpdateDetailsInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := ratelimit.Check(ctx, s.limiter, ratelimit.ActionUpdateDetails, userID, ratelimit.UpdateDetails); err != nil {
		return nil, err
	}

	if err := input.Validate(s.now()); err != nil {
		s.log.InfoContext(ctx, "event update rejected",
			slog.String("user_id", userID),
			slog.String("event_id", input.EventID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	details := domain.EventDetails{
		Title:               input.Title,
		Campus:              input.Campus,
		Date:                domain.LocalMidnight(input.Date, s.cfg.UTCOffset),
		RegistrationEndDate: input.RegistrationEndDate.UTC(),
		Location:            input.Location,
		Organizer:           input.Organizer,
		Fee:                 domain.NormalizeFee(input.Fee),
		HasStarpoints:       input.HasStarpoints,
		IsRecruiting:        input.IsRecruiting,
		Categories:          domain.NormalizeCategories(input.Categories),
		RegistrationLink:    input.RegistrationLink,
	}
	contacts := toContacts(input.Contacts)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.authorize(txCtx, userID, input.EventID); err != nil {
			return err
		}
		if err := s.events.UpdateDetails(txCtx, input.EventID, details); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		if err := s.events.ReplaceContacts(txCtx, input.EventID, contacts); err != nil {
			return fmt.Errorf("replace contacts: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateEvent(userID, input.EventID)

	s.log.InfoContext(ctx, "event details updated",
		slog.String("user_id", userID),
		slog.String("event_id", input.EventID),
	)

	ev, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("reload event: %w", err)
	}
	return ev, nil
}

// UpdateEventDescription replaces only the description of an active event
// owned by the caller.
func (s *Service) UpdateEventDescription(ctx context.Context, input UpdateDescriptionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := ratelimit.Check(ctx, s.limiter, ratelimit.ActionUpdateDescription, userID, ratelimit.UpdateDescription); err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.authorize(txCtx, userID, input.EventID); err != nil {
			return err
		}
		if err := s.events.UpdateDescription(txCtx, input.EventID, input.Description); err != nil {
			return fmt.Errorf("update description: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateEvent(userID, input.EventID)

	s.log.InfoContext(ctx, "event description updated",
		slog.String("user_id", userID),
		slog.String("event_id", input.EventID),
	)
	return nil
}

// authorize loads the event and checks it is active and owned by userID.
func (s *Service) authorize(ctx context.Context, userID, eventID string) error {
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if !ev.IsActive {
		s.log.InfoContext(ctx, "edit of inactive event refused",
			slog.String("user_id", userID),
			slog.String("event_id", eventID),
		)
		return domain.ErrInactive
	}
	if !ev.IsOwnedBy(userID) {
		s.log.WarnContext(ctx, "edit by non-author refused",
			slog.String("user_id", userID),
			slog.String("event_id", eventID),
			slog.String("author_id", ev.AuthorID),
		)
		return domain.ErrForbidden
	}
	return nil
}

func (s *Service) invalidateEvent(userID, eventID string) {
	s.cache.Invalidate(cache.TagEvents, cache.EventTag(eventID), cache.UserEventsTag(userID))
}
