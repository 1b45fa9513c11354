package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"order-grouping-service/internal/domain"
	"order-grouping-service/internal/platform/obs"
)

// Postgres-backed implementation of the OrderRepository port.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// Return all orders for the planning day that do not yet belong to a
// group.
func (r *PostgresOrderRepository) ListUngrouped(ctx context.Context, planDate string) (_ []*domain.Order, err error) {
	defer obs.Time(ctx, "orders.ListUngrouped")(&err)

	if r.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}
	if planDate == "" {
		return nil, errors.New("list ungrouped: planDate must be non-empty")
	}

	query := `
	SELECT
		id::text,
		order_number,
		pickup_time,
		pickup_address,
		dropoff_time,
		dropoff_address,
		time_bucket
	FROM orders
	WHERE plan_date = $1
		AND group_id IS NULL
	ORDER BY order_number;
	`
	rows, err := r.DB.QueryContext(ctx, query, planDate)
	if err != nil {
		return nil, fmt.Errorf("list ungrouped: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, 64)
	for rows.Next() {
		o := &domain.Order{}
		var bucket string
		err := rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&o.PickupTime,
			&o.PickupAddress,
			&o.DropoffTime,
			&o.DropoffAddress,
			&bucket,
		)
		if err != nil {
			return nil, fmt.Errorf("list ungrouped: scan row: %w", err)
		}
		o.Bucket = domain.TimeBucket(bucket)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ungrouped: row iteration: %w", err)
	}

	return orders, nil
}

// AssignGroups writes one freshly minted group id onto every order of
// each merge. The guarded update refuses to touch orders that already
// carry a group id: if any order of a merge was grouped concurrently
// (or a grouped order slipped into the selection), the whole
// transaction rolls back.
func (r *PostgresOrderRepository) AssignGroups(ctx context.Context, merges []domain.SelectedMerge) (_ []string, err error) {
	defer obs.Time(ctx, "orders.AssignGroups")(&err)

	if r.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}
	if len(merges) == 0 {
		return []string{}, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("assign groups: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	UPDATE orders
	SET group_id = $1
	WHERE id::text = ANY($2::text[])
		AND group_id IS NULL;
	`

	groupIDs := make([]string, 0, len(merges))
	for _, m := range merges {
		if len(m.OrderIDs) < 2 {
			return nil, fmt.Errorf("assign groups: merge must contain at least 2 orders, got %d", len(m.OrderIDs))
		}

		groupID := uuid.NewString()
		res, err := tx.ExecContext(ctx, query, groupID, m.OrderIDs)
		if err != nil {
			return nil, fmt.Errorf("assign groups: update group %s: %w", groupID, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("assign groups: rows affected: %w", err)
		}
		if affected != int64(len(m.OrderIDs)) {
			return nil, fmt.Errorf(
				"assign groups: merge %v updated %d of %d orders (already grouped or missing)",
				m.OrderNumbers, affected, len(m.OrderIDs),
			)
		}

		groupIDs = append(groupIDs, groupID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("assign groups: commit tx: %w", err)
	}

	return groupIDs, nil
}
