package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/heartmarshall/unievent-backend/internal/domain"
)

// InterestSet scores every term by cosine similarity to query and returns
// the n best as a lookup set. Ties keep taxonomy order.
func InterestSet(query []float32, terms []string, termVecs [][]float32, n int) map[string]struct{} {
	type scored struct {
		term  string
		score float64
	}

	ranked := make([]scored, len(terms))
	for i, t := range terms {
		ranked[i] = scored{term: t, score: Cosine(query, termVecs[i])}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	set := make(map[string]struct{}, n)
	for _, r := range ranked[:min(n, len(ranked))] {
		set[strings.ToLower(r.term)] = struct{}{}
	}
	return set
}

// Rank picks up to limit events from pool: matched events first, then
// unmatched ones, both in pool order.
func Rank(pool []domain.Event, interests map[string]struct{}, limit int) []domain.EventSummary {
	out := make([]domain.EventSummary, 0, min(limit, len(pool)))
	var rest []domain.Event

	for _, ev := range pool {
		if !matches(ev.Categories, interests) {
			rest = append(rest, ev)
			continue
		}
		if len(out) < limit {
			out = append(out, summary(ev))
		}
	}
	for _, ev := range rest {
		if len(out) == limit {
			break
		}
		out = append(out, summary(ev))
	}
	return out
}

func matches(categories []string, interests map[string]struct{}) bool {
	for _, c := range categories {
		if _, ok := interests[strings.ToLower(c)]; ok {
			return true
		}
	}
	return false
}

func summary(ev domain.Event) domain.EventSummary {
	return domain.EventSummary{ID: ev.ID, PosterKey: ev.CoverKey()}
}

// Cosine returns the cosine similarity of a and b, or 0 when either is a
// zero vector or the lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
