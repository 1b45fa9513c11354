package services

import (
	"order-grouping-service/internal/domain"
	"order-grouping-service/internal/metrics"
)

// SelectConflictFreeMerges walks the tiered suggestions greedily and
// returns merges in which no order id appears twice. Tight suggestions
// are consumed first, then normal, then loose, each in descending score
// order: a high-confidence merge always beats a speculative one, and a
// conflicting suggestion is skipped whole, never partially applied.
//
// This is a deliberate approximation of maximum-weight matching. It
// trades optimality for determinism, speed, and tight-tier dominance;
// a false merge costs more than a missed opportunity.
func (e *Engine) SelectConflictFreeMerges(layered domain.LayeredSuggestions) []domain.SelectedMerge {
	used := make(map[string]struct{})
	selected := make([]domain.SelectedMerge, 0)

	layers := []struct {
		name        string
		suggestions []domain.MergeSuggestion
	}{
		{e.tiers.Tight.Name, layered.Tight},
		{e.tiers.Normal.Name, layered.Normal},
		{e.tiers.Loose.Name, layered.Loose},
	}

	for _, layer := range layers {
		for _, s := range layer.suggestions {
			if anyUsed(used, s.OrderIDs) {
				continue
			}
			for _, id := range s.OrderIDs {
				used[id] = struct{}{}
			}
			selected = append(selected, domain.SelectedMerge{
				OrderIDs:     s.OrderIDs,
				OrderNumbers: s.OrderNumbers,
				Layer:        layer.name,
				Score:        s.Score,
				AvgBufferMin: s.AvgBufferMin,
			})
		}
	}

	metrics.MergesSelected.Add(float64(len(selected)))

	return selected
}

func anyUsed(used map[string]struct{}, ids []string) bool {
	for _, id := range ids {
		if _, ok := used[id]; ok {
			return true
		}
	}
	return false
}
