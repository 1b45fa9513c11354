// Package services implements the order-grouping engine: pairwise
// compatibility scoring, layered suggestion generation, and
// conflict-free merge selection.
package services

import (
	"context"
	"time"

	"order-grouping-service/internal/domain"
	"order-grouping-service/internal/geo"
	"order-grouping-service/internal/metrics"
	"order-grouping-service/internal/reach"
)

// Engine runs grouping passes over in-memory order snapshots.
// Each pass is an independent, bounded computation: the engine holds
// only read-only reference data and is safe for concurrent use.
//
// Passes are O(n^2) in the order count; callers should batch very
// large daily snapshots (a few hundred orders per pass).
type Engine struct {
	resolver *geo.Resolver
	checker  *reach.Checker
	tiers    TierSet
}

func NewEngine(resolver *geo.Resolver, checker *reach.Checker, tiers TierSet) *Engine {
	return &Engine{resolver: resolver, checker: checker, tiers: tiers}
}

// ComputeLayeredSuggestions scores all ungrouped order pairs at three
// strictness tiers and returns three ranked suggestion lists. Orders
// that already carry a group id are skipped defensively; callers are
// expected to filter them beforehand.
func (e *Engine) ComputeLayeredSuggestions(ctx context.Context, orders []*domain.Order) domain.LayeredSuggestions {
	start := time.Now()

	ungrouped := make([]*domain.Order, 0, len(orders))
	for _, o := range orders {
		if !o.Grouped() {
			ungrouped = append(ungrouped, o)
		}
	}

	layered := domain.LayeredSuggestions{
		Tight:  e.suggestForTier(ctx, ungrouped, e.tiers.Tight),
		Normal: e.suggestForTier(ctx, ungrouped, e.tiers.Normal),
		Loose:  e.suggestForTier(ctx, ungrouped, e.tiers.Loose),
	}

	metrics.GroupingPassDuration.Observe(time.Since(start).Seconds())
	metrics.SuggestionsGenerated.WithLabelValues(e.tiers.Tight.Name).Add(float64(len(layered.Tight)))
	metrics.SuggestionsGenerated.WithLabelValues(e.tiers.Normal.Name).Add(float64(len(layered.Normal)))
	metrics.SuggestionsGenerated.WithLabelValues(e.tiers.Loose.Name).Add(float64(len(layered.Loose)))

	return layered
}
