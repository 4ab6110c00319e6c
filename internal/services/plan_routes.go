package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"installation-route-service/internal/domain"
	"installation-route-service/internal/ports"
)

type PlanRoutesRequest struct {
	From       *time.Time
	To         *time.Time
	WindowDays int
	RadiusKm   float64
	MaxStops   int
	Start      *domain.Coordinates
}

type PlanStats struct {
	Candidates int
	Geocoded   int
	Unassigned int
	Groups     int
	Routes     int
}

type PlanRoutesResult struct {
	Request    PlanRoutesRequest
	Stats      PlanStats
	Unassigned []domain.UnassignedOrder
	Groups     []domain.RouteGroup
}

// PlanInstallationRoutes runs one full planning pass: load candidates,
// resolve coordinates, bucket by delivery-date proximity, cluster each
// bucket geographically, chunk clusters into vehicle-sized segments,
// sequence each segment, and attach a map deep link per route.
//
// Partial success is the normal outcome: unresolved orders land in the
// unassigned list while the rest are routed. Only repository failures
// (or a cancelled context) fail the run as a whole.
func PlanInstallationRoutes(
	ctx context.Context,
	req PlanRoutesRequest,
	repo ports.OrderRepository,
	resolver *Resolver,
	sequencer ports.RouteSequencer,
) (*PlanRoutesResult, error) {
	orders, err := repo.ListCandidates(ctx, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("plan routes: list candidates: %w", err)
	}

	stops, unassigned := resolver.Resolve(ctx, orders)

	result := &PlanRoutesResult{
		Request:    req,
		Unassigned: unassigned,
		Groups:     []domain.RouteGroup{},
	}
	result.Stats.Candidates = len(orders)
	result.Stats.Geocoded = len(stops)
	result.Stats.Unassigned = len(unassigned)

	link := WithinRadius(req.RadiusKm)

	// One result group per geo-cluster: orders are bucketed by
	// delivery-date proximity first, then each bucket is clustered
	// geographically, and every cluster becomes its own group carrying
	// the dates and display centroid of just its stops.
	for gi, bucket := range BucketByDate(stops, req.WindowDays) {
		for ci, cluster := range ClusterStops(bucket, link) {
			from, to := GroupDateRange(cluster)
			group := domain.RouteGroup{DateFrom: from, DateTo: to}

			points := make([]domain.Coordinates, 0, len(cluster))
			for _, s := range cluster {
				points = append(points, s.Coords)
			}
			if c, ok := domain.Centroid(points); ok {
				group.DisplayCentroid = &c
			}

			for ri, segment := range ChunkStops(cluster, req.MaxStops) {
				route := sequenceSegment(ctx, sequencer, segment, req.Start)
				route.RouteID = fmt.Sprintf("g%d-c%d-r%d", gi, ci, ri)
				route.MapURL = BuildMapURL(route.Stops, req.Start)
				group.Routes = append(group.Routes, route)
			}

			result.Groups = append(result.Groups, group)
			result.Stats.Routes += len(group.Routes)
		}
	}

	result.Stats.Groups = len(result.Groups)

	return result, nil
}

// sequenceSegment asks the external optimizer for a visiting order and
// falls back to the local nearest-neighbor heuristic when the call
// fails or returns an unusable ordering. One segment's failure never
// affects any other segment.
func sequenceSegment(
	ctx context.Context,
	sequencer ports.RouteSequencer,
	segment []domain.Stop,
	start *domain.Coordinates,
) domain.SequencedRoute {
	if sequencer != nil {
		res, err := sequencer.Sequence(ctx, segment, start)
		if err == nil {
			if ordered, ok := applyOrder(segment, res.Order); ok {
				meters, seconds := res.DistanceMeters, res.DurationSeconds
				return domain.SequencedRoute{
					Source:          domain.SourceOptimizer,
					Stops:           ordered,
					DistanceMeters:  &meters,
					DurationSeconds: &seconds,
				}
			}
			err = fmt.Errorf("optimizer returned unusable order for %d stops", len(segment))
		}
		log.Printf("route sequencing fell back stops=%d err=%v", len(segment), err)
	}

	return domain.SequencedRoute{
		Source: domain.SourceFallback,
		Stops:  NearestNeighborOrder(segment, start),
	}
}

// applyOrder reorders stops by the given index sequence, rejecting
// anything that is not an exact permutation of the input.
func applyOrder(stops []domain.Stop, order []int) ([]domain.Stop, bool) {
	if len(order) != len(stops) {
		return nil, false
	}

	seen := make([]bool, len(stops))
	ordered := make([]domain.Stop, 0, len(stops))
	for _, idx := range order {
		if idx < 0 || idx >= len(stops) || seen[idx] {
			return nil, false
		}
		seen[idx] = true
		ordered = append(ordered, stops[idx])
	}

	return ordered, true
}
