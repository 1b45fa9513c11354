package services

import (
	"context"
	"fmt"

	"order-grouping-service/internal/domain"
	"order-grouping-service/internal/ports"
)

// The outcome of one full grouping pass: what was suggested, what was
// selected, and the group ids minted for the selected merges.
type PlanGroupsResult struct {
	Layered  domain.LayeredSuggestions
	Merges   []domain.SelectedMerge
	GroupIDs []string
}

// PlanGroups runs one end-to-end grouping pass for a planning day:
// load the ungrouped snapshot, compute layered suggestions, select a
// conflict-free merge set, and persist the group assignments.
//
// The repository enforces that no already-grouped order is overwritten;
// a conflict there surfaces as an error rather than silent corruption.
func PlanGroups(
	ctx context.Context,
	engine *Engine,
	repo ports.OrderRepository,
	planDate string,
) (*PlanGroupsResult, error) {
	orders, err := repo.ListUngrouped(ctx, planDate)
	if err != nil {
		return nil, fmt.Errorf("plan groups: list ungrouped orders: %w", err)
	}

	layered := engine.ComputeLayeredSuggestions(ctx, orders)
	merges := engine.SelectConflictFreeMerges(layered)

	result := &PlanGroupsResult{
		Layered:  layered,
		Merges:   merges,
		GroupIDs: []string{},
	}

	// An empty selection is a valid, non-error outcome.
	if len(merges) == 0 {
		return result, nil
	}

	ids, err := repo.AssignGroups(ctx, merges)
	if err != nil {
		return nil, fmt.Errorf("plan groups: assign groups: %w", err)
	}
	result.GroupIDs = ids

	return result, nil
}
