package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"order-grouping-service/internal/domain"
	"order-grouping-service/internal/timeparse"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_number TEXT NOT NULL,
		plan_date DATE NOT NULL,
		pickup_time TEXT NOT NULL,
		pickup_address TEXT NOT NULL,
		dropoff_time TEXT NOT NULL,
		dropoff_address TEXT NOT NULL,
		time_bucket TEXT NOT NULL DEFAULT '',
		group_id UUID,
		UNIQUE (plan_date, order_number)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_plan_date_group
	ON orders(plan_date, group_id);
	`

	statements := []string{
		createOrdersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type OrderSeed struct {
	OrderNumber    string `json:"order_number"`
	PlanDate       string `json:"plan_date"`
	PickupTime     string `json:"pickup_time"`
	PickupAddress  string `json:"pickup_address"`
	DropoffTime    string `json:"dropoff_time"`
	DropoffAddress string `json:"dropoff_address"`
}

// Populate the database with order snapshots from a JSON file.
// The time bucket is derived from the pickup time where it parses;
// orders with unparsable times are still stored (the engine
// disqualifies them from suggestions on its own).
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed orders: read %q: %w", jsonPath, err)
	}

	var data []OrderSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed orders: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.OrderNumber) == "" {
			return fmt.Errorf("seed orders: item at index %d: order_number cannot be empty", i+1)
		}
		if strings.TrimSpace(item.PlanDate) == "" {
			return fmt.Errorf("seed orders: item at index %d: plan_date cannot be empty", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO orders (
		order_number,
		plan_date,
		pickup_time,
		pickup_address,
		dropoff_time,
		dropoff_address,
		time_bucket
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (plan_date, order_number) DO NOTHING;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range data {
		bucket := ""
		if m, ok := timeparse.Minutes(o.PickupTime); ok {
			bucket = string(domain.BucketForMinutes(m))
		}

		_, err := stmt.Exec(
			o.OrderNumber,
			o.PlanDate,
			o.PickupTime,
			o.PickupAddress,
			o.DropoffTime,
			o.DropoffAddress,
			bucket,
		)
		if err != nil {
			return fmt.Errorf("seed orders: insert order_number=%s: %w", o.OrderNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return nil
}
