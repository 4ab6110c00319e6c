package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"installation-route-service/internal/api/dto"
	"installation-route-service/internal/domain"
	"installation-route-service/internal/ports"
	"installation-route-service/internal/services"
)

type PlanHandler struct {
	Repo      ports.OrderRepository
	Resolver  *services.Resolver
	Sequencer ports.RouteSequencer
}

// Plan runs one installation-route planning pass over the candidate
// orders and returns groups, routes and the unassigned list. Orders
// that cannot be placed are part of a normal 200 response, not an
// error.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq, ok := buildPlanRequest(w, r, req)
	if !ok {
		return
	}

	result, err := services.PlanInstallationRoutes(r.Context(), svcReq, h.Repo, h.Resolver, h.Sequencer)
	if err != nil {
		log.Printf("plan routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, buildPlanResponse(result))
}

func buildPlanRequest(w http.ResponseWriter, r *http.Request, req dto.PlanRequest) (services.PlanRoutesRequest, bool) {
	var out services.PlanRoutesRequest

	if req.DateFrom != "" {
		d, err := time.ParseInLocation("2006-01-02", req.DateFrom, time.UTC)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "date_from must be an ISO date (YYYY-MM-DD)")
			return out, false
		}
		out.From = &d
	}
	if req.DateTo != "" {
		d, err := time.ParseInLocation("2006-01-02", req.DateTo, time.UTC)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "date_to must be an ISO date (YYYY-MM-DD)")
			return out, false
		}
		out.To = &d
	}
	if out.From != nil && out.To != nil && out.To.Before(*out.From) {
		writeError(w, r, http.StatusBadRequest, "date_to must not precede date_from")
		return out, false
	}

	out.WindowDays = req.WindowDays
	if out.WindowDays == 0 {
		out.WindowDays = 3
	}
	if out.WindowDays < 0 || out.WindowDays > 30 {
		writeError(w, r, http.StatusBadRequest, "window_days must be between 0 and 30")
		return out, false
	}

	out.RadiusKm = req.RadiusKm
	if out.RadiusKm == 0 {
		out.RadiusKm = 15
	}
	if out.RadiusKm < 0 || out.RadiusKm > 500 {
		writeError(w, r, http.StatusBadRequest, "radius_km must be between 0 and 500")
		return out, false
	}

	out.MaxStops = req.MaxStops
	if out.MaxStops == 0 {
		out.MaxStops = 10
	}
	if out.MaxStops < 1 || out.MaxStops > 50 {
		writeError(w, r, http.StatusBadRequest, "max_stops must be between 1 and 50")
		return out, false
	}

	if req.Start != nil {
		out.Start = &domain.Coordinates{Lon: req.Start.Lng, Lat: req.Start.Lat}
	}

	return out, true
}

func buildPlanResponse(result *services.PlanRoutesResult) dto.PlanResponse {
	res := dto.PlanResponse{
		Params: dto.PlanParamsResponse{
			DateFrom:   formatDate(result.Request.From),
			DateTo:     formatDate(result.Request.To),
			WindowDays: result.Request.WindowDays,
			RadiusKm:   result.Request.RadiusKm,
			MaxStops:   result.Request.MaxStops,
		},
		Stats: dto.PlanStatsResponse{
			Candidates: result.Stats.Candidates,
			Geocoded:   result.Stats.Geocoded,
			Unassigned: result.Stats.Unassigned,
			Groups:     result.Stats.Groups,
			Routes:     result.Stats.Routes,
		},
		Unassigned: make([]dto.UnassignedResponse, 0, len(result.Unassigned)),
		Groups:     make([]dto.PlanGroupResponse, 0, len(result.Groups)),
	}
	if result.Request.Start != nil {
		res.Params.Start = &dto.StartPoint{Lat: result.Request.Start.Lat, Lng: result.Request.Start.Lon}
	}

	for _, u := range result.Unassigned {
		res.Unassigned = append(res.Unassigned, dto.UnassignedResponse{
			OrderID:    u.Order.OrderID,
			SaleNumber: u.Order.SaleNumber,
			ClientName: u.Order.ClientName,
			Reason:     string(u.Reason),
		})
	}

	for _, g := range result.Groups {
		group := dto.PlanGroupResponse{
			DateFrom: formatDate(g.DateFrom),
			DateTo:   formatDate(g.DateTo),
			Routes:   make([]dto.PlanRouteResponse, 0, len(g.Routes)),
		}
		if g.DisplayCentroid != nil {
			group.Centroid = &dto.StartPoint{Lat: g.DisplayCentroid.Lat, Lng: g.DisplayCentroid.Lon}
		}

		for _, route := range g.Routes {
			item := dto.PlanRouteResponse{
				RouteID:         route.RouteID,
				Source:          string(route.Source),
				DistanceMeters:  route.DistanceMeters,
				DurationSeconds: route.DurationSeconds,
				MapURL:          route.MapURL,
				Stops:           make([]dto.PlanStopResponse, 0, len(route.Stops)),
			}
			for i, s := range route.Stops {
				item.Stops = append(item.Stops, dto.PlanStopResponse{
					Sequence:     i + 1,
					OrderID:      s.Order.OrderID,
					SaleNumber:   s.Order.SaleNumber,
					ClientName:   s.Order.ClientName,
					Address:      s.Order.Address,
					DeliveryDate: formatDate(s.Order.DeliveryDate),
					Lat:          s.Coords.Lat,
					Lng:          s.Coords.Lon,
				})
			}
			group.Routes = append(group.Routes, item)
		}

		res.Groups = append(res.Groups, group)
	}

	return res
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	d := t.Format("2006-01-02")
	return &d
}
