package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/unievent-backend/internal/cache"
	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/media"
	"github.com/heartmarshall/unievent-backend/internal/ratelimit"
	"github.com/heartmarshall/unievent-backend/pkg/ctxutil"
)

// CreateEventResult is the outcome of a successful submission.
type CreateEventResult struct {
	Event *domain.Event
	// UnderReview is set when moderation asked for a human review.
	UnderReview bool
}

// CreateEvent moderates, uploads and persists a new event. Nothing is stored
// when moderation rejects the submission. A review verdict stores the event
// together with a pending report in one transaction.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput, files []media.Upload) (*CreateEventResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := ratelimit.Check(ctx, s.limiter, ratelimit.ActionCreate, userID, ratelimit.CreateEvent); err != nil {
		return nil, err
	}

	if err := input.Validate(s.now()); err != nil {
		s.log.InfoContext(ctx, "event input rejected", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}
	if err := validatePosters(len(files)); err != nil {
		return nil, err
	}

	processed := make([]media.Processed, 0, len(files))
	for _, f := range files {
		p, err := s.images.Process(f)
		if err != nil {
			return nil, fmt.Errorf("process poster %q: %w", f.Filename, err)
		}
		processed = append(processed, p)
	}

	cover := processed[0].Image()
	verdict, err := s.gate.ValidateEventContent(ctx, input.Title, input.Description, &cover)
	if err != nil {
		return nil, fmt.Errorf("moderate event: %w", err)
	}
	if verdict.Status == domain.ModerationInvalid {
		s.log.WarnContext(ctx, "event rejected by moderation",
			slog.String("user_id", userID),
			slog.String("reason", verdict.Reason()),
		)
		return nil, domain.ErrModerationRejected
	}

	ev := &domain.Event{
		ID:                  domain.NewEventID(),
		Title:               input.Title,
		Description:         input.Description,
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
		Contacts:            toContacts(input.Contacts),
		AuthorID:            userID,
	}

	keys, err := s.posters.Upload(ctx, processed, userID, ev.ID)
	if err != nil {
		return nil, fmt.Errorf("upload posters: %w", err)
	}
	ev.PosterKeys = keys

	underReview := verdict.Status == domain.ModerationReview
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.events.Create(txCtx, ev); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		if !underReview {
			return nil
		}
		if err := s.reports.Create(txCtx, &domain.EventReport{
			EventID:    ev.ID,
			Reason:     verdict.Flag.Reason(),
			ReportedBy: domain.ReporterAI,
			Status:     domain.ReportStatusPending,
			Type:       verdict.Flag.ReportType(),
		}); err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		return nil
	})
	if err != nil {
		s.removeOrphans(ctx, ev.ID, keys)
		return nil, err
	}

	tags := []string{cache.TagEvents, cache.UserEventsTag(userID)}
	if underReview {
		tags = append(tags, cache.TagReports)
	}
	s.cache.Invalidate(tags...)

	s.log.InfoContext(ctx, "event created",
		slog.String("user_id", userID),
		slog.String("event_id", ev.ID),
		slog.Int("posters", len(keys)),
		slog.Bool("under_review", underReview),
	)

	return &CreateEventResult{Event: ev, UnderReview: underReview}, nil
}

// removeOrphans deletes posters uploaded for an event that was never stored.
func (s *Service) removeOrphans(ctx context.Context, eventID string, keys []string) {
	if err := s.posters.Remove(context.WithoutCancel(ctx), keys); err != nil {
		s.log.ErrorContext(ctx, "orphaned posters not removed",
			slog.String("event_id", eventID),
			slog.Any("keys", keys),
			slog.String("error", err.Error()),
		)
	}
}
