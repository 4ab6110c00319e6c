package ports

import (
	"context"

	"installation-route-service/internal/domain"
)

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Return the single best match for an address. An error means the
	// address could not be resolved; callers treat it as per-order
	// failure, not a run failure.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// Optional persistent cache consulted before the external geocoder.
// Keys are normalized addresses; implementations decide expiry.
type GeocodeCache interface {
	Get(ctx context.Context, address string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, address string, c domain.Coordinates) error
}
