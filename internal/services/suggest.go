package services

import (
	"context"
	"slices"
	"strings"

	"order-grouping-service/internal/domain"
)

// chain is a working sequence of 2+ orders with per-hop buffers and
// scores. Chain score is the mean hop score so longer chains compete
// with pairs on equal footing.
type chain struct {
	orders  []*domain.Order
	buffers []int
	scores  []int
	reasons []string
}

func (c chain) meanScore() float64 {
	total := 0
	for _, s := range c.scores {
		total += s
	}
	return float64(total) / float64(len(c.scores))
}

func (c chain) avgBuffer() float64 {
	total := 0
	for _, b := range c.buffers {
		total += b
	}
	return float64(total) / float64(len(c.buffers))
}

func (c chain) contains(id string) bool {
	for _, o := range c.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

// suggestForTier scores every order pair under one tier, extends
// accepted pairs into 3+ order chains, and returns the tier's
// suggestions sorted by descending score.
func (e *Engine) suggestForTier(ctx context.Context, orders []*domain.Order, tier Tier) []domain.MergeSuggestion {
	chains := make([]chain, 0, len(orders))

	for i := 0; i < len(orders); i++ {
		for j := i + 1; j < len(orders); j++ {
			pair, ok := e.scorePair(ctx, orders[i], orders[j], tier)
			if !ok || pair.hop.score < tier.MinScore {
				continue
			}
			chains = append(chains, chain{
				orders:  []*domain.Order{pair.first, pair.second},
				buffers: []int{pair.hop.bufferMin},
				scores:  []int{pair.hop.score},
				reasons: pair.hop.reasons,
			})
		}
	}

	// Chain extension: greedily append the best admissible next order
	// to each accepted pair, keeping every intermediate length as its
	// own suggestion. The selector resolves the resulting overlaps.
	extended := make([]chain, 0, len(chains))
	for _, base := range chains {
		cur := base
		for len(cur.orders) < tier.MaxChainLen {
			next, ok := e.bestExtension(ctx, cur, orders, tier)
			if !ok {
				break
			}
			cur = next
			extended = append(extended, cur)
		}
	}
	chains = append(chains, extended...)

	suggestions := make([]domain.MergeSuggestion, 0, len(chains))
	for _, c := range chains {
		ids := make([]string, 0, len(c.orders))
		numbers := make([]string, 0, len(c.orders))
		for _, o := range c.orders {
			ids = append(ids, o.ID)
			numbers = append(numbers, o.OrderNumber)
		}
		suggestions = append(suggestions, domain.MergeSuggestion{
			OrderIDs:     ids,
			OrderNumbers: numbers,
			Score:        c.meanScore(),
			AvgBufferMin: c.avgBuffer(),
			Reasons:      c.reasons,
		})
	}

	// Descending score; longer chains first on ties, then id order for
	// a fully deterministic ranking.
	slices.SortFunc(suggestions, func(a, b domain.MergeSuggestion) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		if len(a.OrderIDs) != len(b.OrderIDs) {
			return len(b.OrderIDs) - len(a.OrderIDs)
		}
		return strings.Compare(strings.Join(a.OrderIDs, ","), strings.Join(b.OrderIDs, ","))
	})

	return suggestions
}

// bestExtension finds the highest-scoring order whose pickup admissibly
// follows the chain's tail dropoff, keeping the extended chain above
// the tier minimum. Ties break on order id for determinism.
func (e *Engine) bestExtension(ctx context.Context, cur chain, orders []*domain.Order, tier Tier) (chain, bool) {
	tail := cur.orders[len(cur.orders)-1]

	var best chain
	var bestHop *hop
	for _, cand := range orders {
		if cur.contains(cand.ID) {
			continue
		}

		h, ok := e.scoreHop(ctx, tail, cand, tier)
		if !ok {
			continue
		}

		next := chain{
			orders:  append(slices.Clone(cur.orders), cand),
			buffers: append(slices.Clone(cur.buffers), h.bufferMin),
			scores:  append(slices.Clone(cur.scores), h.score),
			reasons: append(slices.Clone(cur.reasons), h.reasons...),
		}
		if next.meanScore() < float64(tier.MinScore) {
			continue
		}

		if bestHop == nil || h.score > bestHop.score ||
			(h.score == bestHop.score && cand.ID < best.orders[len(best.orders)-1].ID) {
			hcopy := h
			best = next
			bestHop = &hcopy
		}
	}

	if bestHop == nil {
		return chain{}, false
	}
	return best, true
}
