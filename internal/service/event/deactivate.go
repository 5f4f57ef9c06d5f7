package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/unievent-backend/internal/cache"
	"github.com/heartmarshall/unievent-backend/internal/metrics"
)

// DeactivateExpired marks every active event whose date or registration
// deadline has passed as inactive. Running it again with no time passing
// changes nothing.
func (s *Service) DeactivateExpired(ctx context.Context) (int64, error) {
	now := s.now()

	n, err := s.events.DeactivateExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired events: %w", err)
	}

	s.cache.Invalidate(cache.TagEvents)
	metrics.EventsDeactivated.Add(float64(n))

	s.log.InfoContext(ctx, "expired events deactivated",
		slog.Int64("count", n),
		slog.Time("now", now),
	)
	return n, nil
}
