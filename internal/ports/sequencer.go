package ports

import (
	"context"

	"installation-route-service/internal/domain"
)

// Result of sequencing one route segment.
// Order holds indexes into the input stop slice, in visiting order.
type SequenceResult struct {
	Order           []int
	DistanceMeters  int
	DurationSeconds int
}

// Contract for ordering the stops of one route segment.
type RouteSequencer interface {
	// Sequence returns a visiting order for stops. A non-nil start is a
	// round trip anchored there; nil start leaves endpoints to the
	// implementation. Errors trigger the caller's local fallback.
	Sequence(ctx context.Context, stops []domain.Stop, start *domain.Coordinates) (SequenceResult, error)
}
