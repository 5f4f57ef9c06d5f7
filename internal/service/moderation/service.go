// Package moderation classifies event submissions as valid, needing review
// or invalid before anything is persisted.
package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/unievent-backend/internal/domain"
	"github.com/heartmarshall/unievent-backend/internal/metrics"
)

type classifier interface {
	Complete(ctx context.Context, system, prompt string, image *domain.Image) (string, error)
}

// Gate runs submissions through the content classifier.
type Gate struct {
	model classifier
	log   *slog.Logger
}

// NewGate creates a new moderation Gate.
func NewGate(log *slog.Logger, model classifier) *Gate {
	return &Gate{
		model: model,
		log:   log.With("service", "moderation"),
	}
}

// ValidateEventContent classifies the title, description and first poster.
// A classifier transport error is returned as is; an unreadable answer
// yields an invalid verdict.
func (g *Gate) ValidateEventContent(ctx context.Context, title, description string, poster *domain.Image) (domain.Verdict, error) {
	raw, err := g.model.Complete(ctx, systemPrompt, buildPrompt(title, description, poster != nil), poster)
	if err != nil {
		metrics.ModerationErrors.Inc()
		return domain.Verdict{}, fmt.Errorf("classify content: %w", err)
	}

	verdict, ok := ParseVerdict(raw)
	if !ok {
		g.log.WarnContext(ctx, "unparseable moderation answer", slog.String("raw", truncate(raw, 300)))
	}
	metrics.ModerationVerdicts.WithLabelValues(verdict.Status.String()).Inc()

	if verdict.Status != domain.ModerationValid {
		g.log.InfoContext(ctx, "content flagged",
			slog.String("status", verdict.Status.String()),
			slog.String("field", verdict.Flag.Field.String()),
			slog.String("reason", verdict.Flag.Message),
		)
	}

	return verdict, nil
}
