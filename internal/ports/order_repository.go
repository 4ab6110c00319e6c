package ports

import (
	"context"
	"time"

	"installation-route-service/internal/domain"
)

// Port: a boundary for reading route candidates and caching resolved
// coordinates back onto the order record.
type OrderRepository interface {
	// Retrieve orders eligible for routing, optionally bounded by
	// delivery date (nil bounds are open-ended).
	ListCandidates(ctx context.Context, from, to *time.Time) ([]*domain.Order, error)

	// Persist resolved coordinates onto an order. A failure here must
	// not fail a planning run; callers log and continue.
	SaveCoordinates(ctx context.Context, orderID int64, c domain.Coordinates) error
}
