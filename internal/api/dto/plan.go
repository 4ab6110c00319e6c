package dto

type StartPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlanRequest struct {
	DateFrom   string      `json:"date_from"`
	DateTo     string      `json:"date_to"`
	WindowDays int         `json:"window_days"`
	RadiusKm   float64     `json:"radius_km"`
	MaxStops   int         `json:"max_stops"`
	Start      *StartPoint `json:"start"`
}

type PlanParamsResponse struct {
	DateFrom   *string     `json:"date_from"`
	DateTo     *string     `json:"date_to"`
	WindowDays int         `json:"window_days"`
	RadiusKm   float64     `json:"radius_km"`
	MaxStops   int         `json:"max_stops"`
	Start      *StartPoint `json:"start"`
}

type PlanStatsResponse struct {
	Candidates int `json:"candidates"`
	Geocoded   int `json:"geocoded"`
	Unassigned int `json:"unassigned"`
	Groups     int `json:"groups"`
	Routes     int `json:"routes"`
}

type UnassignedResponse struct {
	OrderID    int64  `json:"order_id"`
	SaleNumber string `json:"sale_number"`
	ClientName string `json:"client_name"`
	Reason     string `json:"reason"`
}

type PlanStopResponse struct {
	Sequence     int     `json:"sequence"`
	OrderID      int64   `json:"order_id"`
	SaleNumber   string  `json:"sale_number"`
	ClientName   string  `json:"client_name"`
	Address      string  `json:"address"`
	DeliveryDate *string `json:"delivery_date"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

type PlanRouteResponse struct {
	RouteID         string             `json:"route_id"`
	Source          string             `json:"source"`
	DistanceMeters  *int               `json:"distance_meters"`
	DurationSeconds *int               `json:"duration_seconds"`
	MapURL          string             `json:"map_url"`
	Stops           []PlanStopResponse `json:"stops"`
}

type PlanGroupResponse struct {
	DateFrom *string             `json:"date_from"`
	DateTo   *string             `json:"date_to"`
	Centroid *StartPoint         `json:"centroid"`
	Routes   []PlanRouteResponse `json:"routes"`
}

type PlanResponse struct {
	Params     PlanParamsResponse   `json:"params"`
	Stats      PlanStatsResponse    `json:"stats"`
	Unassigned []UnassignedResponse `json:"unassigned"`
	Groups     []PlanGroupResponse  `json:"groups"`
}
