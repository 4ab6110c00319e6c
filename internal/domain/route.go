package domain

import "time"

// Identifies which sequencing path produced a route.
type RouteSource string

const (
	// Stops were ordered by the external optimization API.
	SourceOptimizer RouteSource = "ors"
	// Stops were ordered by the local nearest-neighbor heuristic.
	SourceFallback RouteSource = "fallback"
)

// Represents one vehicle-sized route after sequencing.
// RouteID is a stable synthetic identifier combining date-group,
// cluster and segment indexes (e.g. "g0-c1-r0").
//
// DistanceMeters and DurationSeconds come from the optimizer summary
// and are nil for fallback routes, where no road metrics are known.
type SequencedRoute struct {
	RouteID         string
	Source          RouteSource
	Stops           []Stop
	DistanceMeters  *int
	DurationSeconds *int
	MapURL          string
}

// A set of routes whose orders share a delivery-date window.
// DisplayCentroid is the planar mean of the group's stops,
// suitable for centering a map view only.
type RouteGroup struct {
	DateFrom        *time.Time
	DateTo          *time.Time
	DisplayCentroid *Coordinates
	Routes          []SequencedRoute
}
