package services

import (
	"math"

	"installation-route-service/internal/domain"
)

// NearestNeighborOrder sequences stops with a greedy heuristic: from
// the current position, always advance to the nearest unvisited stop by
// great-circle distance.
//
// The walk starts at start when given, otherwise at the first stop
// (which then opens the route). It does not attempt global optimality;
// it exists as the local fallback when the external optimizer is
// unavailable, so no road distance or duration can be reported for it.
func NearestNeighborOrder(stops []domain.Stop, start *domain.Coordinates) []domain.Stop {
	if len(stops) <= 1 {
		return stops
	}

	remaining := make([]domain.Stop, len(stops))
	copy(remaining, stops)

	ordered := make([]domain.Stop, 0, len(stops))

	var current domain.Coordinates
	if start != nil {
		current = *start
	} else {
		ordered = append(ordered, remaining[0])
		current = remaining[0].Coords
		remaining = remaining[1:]
	}

	for len(remaining) > 0 {
		bestIdx := 0
		bestDistance := math.MaxFloat64

		// Strict less keeps ties on the earlier index for determinism.
		for i, s := range remaining {
			if d := domain.DistanceKm(current, s.Coords); d < bestDistance {
				bestDistance = d
				bestIdx = i
			}
		}

		best := remaining[bestIdx]
		ordered = append(ordered, best)
		current = best.Coords
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return ordered
}
