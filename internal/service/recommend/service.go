// Package recommend ranks other active events against a user's categories
// using text embeddings of the category taxonomy.
package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/unievent-backend/internal/cache"
	"github.com/heartmarshall/unievent-backend/internal/domain"
)

const (
	PoolSize        = 20
	MaxResults      = 10
	InterestSetSize = 20
)

type candidateRepo interface {
	ListCandidates(ctx context.Context, excludeID string, limit int) ([]domain.Event, error)
}

type embedder interface {
	BatchEmbed(ctx context.Context, texts []string) ([][]float32, error)
}

// Engine produces event recommendations.
type Engine struct {
	events candidateRepo
	embed  embedder
	cache  *cache.Tagged
	ttl    time.Duration
	log    *slog.Logger
}

// NewEngine creates a new recommendation Engine.
func NewEngine(log *slog.Logger, events candidateRepo, embed embedder, c *cache.Tagged, ttl time.Duration) *Engine {
	return &Engine{
		events: events,
		embed:  embed,
		cache:  c,
		ttl:    ttl,
		log:    log.With("service", "recommend"),
	}
}

type cacheKey struct {
	Event      string   `json:"event"`
	Categories []string `json:"categories"`
}

// Recommend returns up to MaxResults events other than currentEventID.
// Events sharing a category with the expanded interest set come first, in
// pool order; the rest of the pool fills the remaining slots.
func (e *Engine) Recommend(ctx context.Context, currentEventID string, userCategories []string) ([]domain.EventSummary, error) {
	cats := domain.NormalizeCategories(userCategories)
	if len(cats) == 0 {
		return nil, domain.NewValidationError("categories", "required")
	}

	sorted := slices.Clone(cats)
	slices.Sort(sorted)
	key := cache.Key("recommend", cacheKey{Event: currentEventID, Categories: sorted})

	return cache.Fetch(ctx, e.cache, key, e.ttl, []string{cache.TagEvents},
		func(ctx context.Context) ([]domain.EventSummary, error) {
			return e.recommend(ctx, currentEventID, cats)
		})
}

func (e *Engine) recommend(ctx context.Context, currentEventID string, cats []string) ([]domain.EventSummary, error) {
	pool, err := e.events.ListCandidates(ctx, currentEventID, PoolSize)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	if len(pool) == 0 {
		return []domain.EventSummary{}, nil
	}

	terms := domain.TaxonomyTerms()
	texts := make([]string, 0, len(terms)+1)
	texts = append(texts, domain.JoinCategories(cats))
	texts = append(texts, terms...)

	vecs, err := e.embed.BatchEmbed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed categories: %w", err)
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("embed categories: got %d vectors for %d texts", len(vecs), len(texts))
	}

	interests := InterestSet(vecs[0], terms, vecs[1:], InterestSetSize)
	out := Rank(pool, interests, MaxResults)

	e.log.DebugContext(ctx, "recommendations ranked",
		slog.String("event_id", currentEventID),
		slog.Int("pool", len(pool)),
		slog.Int("results", len(out)),
	)
	return out, nil
}
