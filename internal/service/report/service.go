// Package report implements administrator review of moderation reports.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/unievent-backend/internal/cache"
	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/pkg/ctxutil"
)

// DefaultListLimit caps the number of reports returned by List.
const DefaultListLimit = 200

type reportRepo interface {
	List(ctx context.Context, status *domain.ReportStatus, limit int) ([]domain.EventReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.EventReport, error)
}

type eventRepo interface {
	Deactivate(ctx context.Context, id string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AdminFunc reports whether a user id belongs to an administrator.
type AdminFunc func(userID string) bool

// Service provides report moderation for administrators.
type Service struct {
	reports reportRepo
	events  eventRepo
	tx      txManager
	isAdmin AdminFunc
	cache   *cache.Tagged
	ttl     time.Duration
	log     *slog.Logger
}

// NewService creates a new report service.
func NewService(log *slog.Logger, reports reportRepo, events eventRepo, tx txManager, isAdmin AdminFunc, c *cache.Tagged, ttl time.Duration) *Service {
	return &Service{
		reports: reports,
		events:  events,
		tx:      tx,
		isAdmin: isAdmin,
		cache:   c,
		ttl:     ttl,
		log:     log.With("service", "report"),
	}
}

// ResolveInput is the administrator decision on a report.
type ResolveInput struct {
	ReportID        string
	Status          string
	DeactivateEvent bool
}

// List returns reports newest first. An empty status lists every report.
func (s *Service) List(ctx context.Context, status string) ([]domain.EventReport, error) {
	if _, err := s.admin(ctx); err != nil {
		return nil, err
	}

	var filter *domain.ReportStatus
	if status = strings.ToLower(strings.TrimSpace(status)); status != "" {
		st := domain.ReportStatus(status)
		if !st.IsValid() {
			return nil, domain.NewValidationError("status", "must be pending, resolved or rejected")
		}
		filter = &st
	}

	return cache.Fetch(ctx, s.cache, cache.Key("reports", status), s.ttl, []string{cache.TagReports},
		func(ctx context.Context) ([]domain.EventReport, error) {
			reports, err := s.reports.List(ctx, filter, DefaultListLimit)
			if err != nil {
				return nil, fmt.Errorf("list reports: %w", err)
			}
			return reports, nil
		})
}

// Resolve sets the status of a report and optionally takes the reported
// event off the listings.
func (s *Service) Resolve(ctx context.Context, in ResolveInput) (*domain.EventReport, error) {
	adminID, err := s.admin(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(strings.TrimSpace(in.ReportID))
	if err != nil {
		return nil, domain.NewValidationError("id", "invalid report id")
	}
	status := domain.ReportStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be pending, resolved or rejected")
	}

	var updated *domain.EventReport
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rep, err := s.reports.UpdateStatus(txCtx, id, status)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if in.DeactivateEvent {
			if err := s.events.Deactivate(txCtx, rep.EventID); err != nil {
				return fmt.Errorf("deactivate event: %w", err)
			}
		}
		updated = rep
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve report: %w", err)
	}

	tags := []string{cache.TagReports}
	if in.DeactivateEvent {
		tags = append(tags, cache.TagEvents, cache.EventTag(updated.EventID))
	}
	s.cache.Invalidate(tags...)

	s.log.InfoContext(ctx, "report resolved",
		slog.String("report_id", id.String()),
		slog.String("event_id", updated.EventID),
		slog.String("status", status.String()),
		slog.Bool("deactivated", in.DeactivateEvent),
		slog.String("admin_id", adminID))

	return updated, nil
}

func (s *Service) admin(ctx context.Context) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if s.isAdmin == nil || !s.isAdmin(userID) {
		return "", domain.ErrForbidden
	}
	return userID, nil
}
