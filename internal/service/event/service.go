// Package event implements the event lifecycle: creation behind the
// moderation gate, author-only edits and deletes, cached read paths and the
// expiry sweep.
package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/cache"
	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/media"
	"github.com/heartmarshall/unievent-backend/internal/ratelimit"
)

type eventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	UpdateDetails(ctx context.Context, id string, d domain.EventDetails) error
	ReplaceContacts(ctx context.Context, id string, contacts []domain.Contact) error
	UpdateDescription(ctx context.Context, id, description string) error
	Delete(ctx context.Context, id string) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)

	ListActive(ctx context.Context, limit, offset int) ([]domain.Event, error)
	Search(ctx context.Context, f domain.EventFilter) ([]domain.Event, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Event, error)
}

type reportRepo interface {
	Create(ctx context.Context, rep *domain.EventReport) error
}

type contentGate interface {
	ValidateEventContent(ctx context.Context, title, description string, poster *domain.Image) (domain.Verdict, error)
}

type imageProcessor interface {
	Process(file media.Upload) (media.Processed, error)
}

type posterStore interface {
	Upload(ctx context.Context, images []media.Processed, ownerID, postID string) ([]string, error)
	Remove(ctx context.Context, keys []string) error
}

type rateLimiter interface {
	Allow(ctx context.Context, key string, limit ratelimit.Limit) bool
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds event service settings.
type Config struct {
	// UTCOffset is the campus time zone offset used to normalize event dates.
	UTCOffset   time.Duration
	CacheTTL    time.Duration
	PageSize    int
	MaxPageSize int
}

// Service provides event operations.
type Service struct {
	events  eventRepo
	reports reportRepo
	gate    contentGate
	images  imageProcessor
	posters posterStore
	limiter rateLimiter
	cache   *cache.Tagged
	tx      txManager
	cfg     Config
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new event service.
func NewService(
	log *slog.Logger,
	cfg Config,
	events eventRepo,
	reports reportRepo,
	gate contentGate,
	images imageProcessor,
	posters posterStore,
	limiter rateLimiter,
	c *cache.Tagged,
	tx txManager,
) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 24
	}
	if cfg.MaxPageSize < cfg.PageSize {
		cfg.MaxPageSize = cfg.PageSize
	}
	return &Service{
		events:  events,
		reports: reports,
		gate:    gate,
		images:  images,
		posters: posters,
		limiter: limiter,
		cache:   c,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
		log:     log.With("service", "event"),
	}
}

// page clamps a requested page size.
func (s *Service) page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = s.cfg.PageSize
	}
	limit = min(limit, s.cfg.MaxPageSize)
	return limit, max(offset, 0)
}
