package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"installation-route-service/internal/domain"
	"installation-route-service/internal/ports"
)

// NormalizeAddress collapses internal whitespace runs and trims the
// ends, producing a stable cache/memo key. Idempotent.
func NormalizeAddress(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Resolver turns route candidates into geocoded stops.
//
// Resolution order per distinct normalized address: coordinates already
// on the order, then the in-run memo, then the persistent cache, then
// the external geocoder. The memo is an explicit per-call instance so
// concurrent runs stay isolated.
type Resolver struct {
	Geocoder ports.Geocoder
	Cache    ports.GeocodeCache    // optional
	Repo     ports.OrderRepository // optional; enables coordinate writeback
	Workers  int                   // concurrent geocode cap, default 4
}

type geocodeOutcome struct {
	address string
	coords  domain.Coordinates
	err     error
}

// Resolve partitions orders into geocoded stops and unassigned orders.
// Geocode failures never abort the run; they exclude only the affected
// orders. Output preserves input order.
func (r *Resolver) Resolve(ctx context.Context, orders []*domain.Order) ([]domain.Stop, []domain.UnassignedOrder) {
	memo := make(map[string]domain.Coordinates)
	failed := make(map[string]struct{})

	// Collect the distinct addresses that actually need external work.
	pending := make([]string, 0, len(orders))
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		if o.Coords != nil {
			continue
		}

		addr := NormalizeAddress(o.Address)
		if addr == "" {
			continue
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		pending = append(pending, addr)
	}

	misses := pending
	if r.Cache != nil {
		misses = make([]string, 0, len(pending))
		for _, addr := range pending {
			c, ok, err := r.Cache.Get(ctx, addr)
			if err != nil {
				log.Printf("geocode cache read failed addr=%q err=%v", addr, err)
			}
			if ok {
				memo[addr] = c
				continue
			}
			misses = append(misses, addr)
		}
	}

	r.geocodeMany(ctx, misses, memo, failed)

	stops := make([]domain.Stop, 0, len(orders))
	unassigned := make([]domain.UnassignedOrder, 0)

	for _, o := range orders {
		if o.Coords != nil {
			stops = append(stops, domain.Stop{Order: o, Coords: *o.Coords})
			continue
		}

		addr := NormalizeAddress(o.Address)
		if addr == "" {
			unassigned = append(unassigned, domain.UnassignedOrder{Order: o, Reason: domain.ReasonMissingAddress})
			continue
		}

		c, ok := memo[addr]
		if !ok {
			unassigned = append(unassigned, domain.UnassignedOrder{Order: o, Reason: domain.ReasonGeocodeFailed})
			continue
		}

		// Write the resolved pair back onto the order record so future
		// runs skip the external call. Best effort only.
		if r.Repo != nil {
			if err := r.Repo.SaveCoordinates(ctx, o.OrderID, c); err != nil {
				log.Printf("coordinate writeback failed order_id=%d err=%v", o.OrderID, err)
			}
		}

		coords := c
		o.Coords = &coords
		stops = append(stops, domain.Stop{Order: o, Coords: coords})
	}

	return stops, unassigned
}

// geocodeMany resolves distinct addresses through the external geocoder
// with bounded concurrency, filling memo on success and failed on error.
func (r *Resolver) geocodeMany(ctx context.Context, addresses []string, memo map[string]domain.Coordinates, failed map[string]struct{}) {
	if len(addresses) == 0 {
		return
	}

	workers := r.Workers
	if workers <= 0 {
		workers = 4
	}

	sem := make(chan struct{}, workers)
	outcomes := make(chan geocodeOutcome, len(addresses))
	var wg sync.WaitGroup

	for _, addr := range addresses {
		wg.Add(1)
		go func(addr string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			c, err := r.Geocoder.Geocode(ctx, addr)
			outcomes <- geocodeOutcome{address: addr, coords: c, err: err}
		}(addr)
	}

	wg.Wait()
	close(outcomes)

	for out := range outcomes {
		if out.err != nil {
			log.Printf("geocode failed addr=%q err=%v", out.address, out.err)
			failed[out.address] = struct{}{}
			continue
		}

		memo[out.address] = out.coords

		if r.Cache != nil {
			if err := r.Cache.Put(ctx, out.address, out.coords); err != nil {
				log.Printf("geocode cache write failed addr=%q err=%v", out.address, err)
			}
		}
	}
}
