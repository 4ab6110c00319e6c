package domain

import "time"

// Represents an order that is a candidate for an installation route.
// Orders are read from the order store at the start of a planning run;
// the in-memory record is discarded when the run ends.
//
// DeliveryDate carries calendar-date precision only (midnight UTC).
// Coords, when present, is a previously resolved coordinate pair and
// takes precedence over re-geocoding the address.
type Order struct {
	OrderID      int64
	SaleNumber   string
	ClientName   string
	DeliveryDate *time.Time
	Address      string
	Coords       *Coordinates
}

// Pairs an order with its resolved coordinates.
// Created during geocode resolution and never mutated afterwards.
type Stop struct {
	Order  *Order
	Coords Coordinates
}

// Why an order could not be placed into any route.
type UnassignedReason string

const (
	ReasonMissingAddress UnassignedReason = "missing_address"
	ReasonGeocodeFailed  UnassignedReason = "geocode_failed"
)

type UnassignedOrder struct {
	Order  *Order
	Reason UnassignedReason
}
