package ports

import (
	"context"

	"order-grouping-service/internal/domain"
)

// Port: a boundary for reading order snapshots and persisting group
// assignments.
type OrderRepository interface {
	// Retrieve all ungrouped orders for one planning day.
	ListUngrouped(ctx context.Context, planDate string) ([]*domain.Order, error)
	// Write a shared group identifier onto each order of each merge.
	// Implementations must refuse to overwrite an existing group id.
	// Returns the minted group ids, one per merge, in input order.
	AssignGroups(ctx context.Context, merges []domain.SelectedMerge) ([]string, error)
}
