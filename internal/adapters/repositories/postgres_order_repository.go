package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"installation-route-service/internal/domain"
)

// Postgres-backed implementation of the OrderRepository port.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// Return orders eligible for routing, optionally bounded by delivery
// date. Undated orders are always included and sort last.
func (s *PostgresOrderRepository) ListCandidates(
	ctx context.Context,
	from, to *time.Time,
) ([]*domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `
	SELECT
		id,
		sale_number,
		client_name,
		delivery_date,
		address,
		address_lat,
		address_lng
	FROM orders
	WHERE ($1::date IS NULL OR delivery_date IS NULL OR delivery_date >= $1)
		AND ($2::date IS NULL OR delivery_date IS NULL OR delivery_date <= $2)
	ORDER BY delivery_date NULLS LAST, id;
	`
	rows, err := s.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list candidates: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, 64)
	for rows.Next() {
		var (
			id           int64
			saleNumber   string
			clientName   string
			deliveryDate sql.NullTime
			address      sql.NullString
			lat, lng     sql.NullFloat64
		)
		if err := rows.Scan(&id, &saleNumber, &clientName, &deliveryDate, &address, &lat, &lng); err != nil {
			return nil, fmt.Errorf("list candidates: scan row: %w", err)
		}

		o := &domain.Order{
			OrderID:    id,
			SaleNumber: saleNumber,
			ClientName: clientName,
			Address:    address.String,
		}
		if deliveryDate.Valid {
			d := deliveryDate.Time.UTC().Truncate(24 * time.Hour)
			o.DeliveryDate = &d
		}
		if lat.Valid && lng.Valid {
			o.Coords = &domain.Coordinates{Lon: lng.Float64, Lat: lat.Float64}
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: row iteration: %w", err)
	}

	return orders, nil
}

// Persist resolved coordinates onto the order row, tagging provider and
// time so later runs can tell cached pairs from hand-entered ones.
func (s *PostgresOrderRepository) SaveCoordinates(
	ctx context.Context,
	orderID int64,
	c domain.Coordinates,
) error {
	if s.DB == nil {
		return errors.New("order repository: DB is nil")
	}

	query := `
	UPDATE orders
	SET address_lat = $1,
		address_lng = $2,
		geocoded_at = now(),
		geocode_provider = 'ors'
	WHERE id = $3;
	`
	if _, err := s.DB.ExecContext(ctx, query, c.Lat, c.Lon, orderID); err != nil {
		return fmt.Errorf("save coordinates order_id=%d: %w", orderID, err)
	}

	return nil
}
