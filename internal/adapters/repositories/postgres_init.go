package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres schema for local and demo environments.
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
		id BIGINT PRIMARY KEY,
		sale_number TEXT NOT NULL,
		client_name TEXT NOT NULL,
		delivery_date DATE,
		address TEXT,
		address_lat DOUBLE PRECISION,
		address_lng DOUBLE PRECISION,
		geocoded_at TIMESTAMPTZ,
		geocode_provider TEXT
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_delivery_date
	ON orders(delivery_date);
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
	OrderID      int64    `json:"order_id"`
	SaleNumber   string   `json:"sale_number"`
	ClientName   string   `json:"client_name"`
	DeliveryDate *string  `json:"delivery_date"`
	Address      string   `json:"address"`
	AddressLat   *float64 `json:"address_lat"`
	AddressLng   *float64 `json:"address_lng"`
}

// Populate the orders table from a JSON file.
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
		if item.OrderID <= 0 {
			return fmt.Errorf("seed orders: invalid order_id at index %d: %d", i+1, item.OrderID)
		}
		if strings.TrimSpace(item.SaleNumber) == "" {
			return fmt.Errorf("seed orders: item at index %d: sale_number cannot be empty", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO orders (
		id,
		sale_number,
		client_name,
		delivery_date,
		address,
		address_lat,
		address_lng
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE
	SET sale_number = EXCLUDED.sale_number,
		client_name = EXCLUDED.client_name,
		delivery_date = EXCLUDED.delivery_date,
		address = EXCLUDED.address,
		address_lat = EXCLUDED.address_lat,
		address_lng = EXCLUDED.address_lng;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range data {
		if _, err := stmt.Exec(
			o.OrderID, o.SaleNumber, o.ClientName,
			o.DeliveryDate, o.Address, o.AddressLat, o.AddressLng,
		); err != nil {
			return fmt.Errorf("seed orders: insert order_id=%d: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return nil
}
