package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"installation-route-service/internal/domain"
	"installation-route-service/internal/ports"
	"installation-route-service/internal/services"
)

type stubRepo struct {
	orders []*domain.Order
}

func (s *stubRepo) ListCandidates(ctx context.Context, from, to *time.Time) ([]*domain.Order, error) {
	return s.orders, nil
}

func (s *stubRepo) SaveCoordinates(ctx context.Context, orderID int64, c domain.Coordinates) error {
	return nil
}

type stubGeocoder struct{}

func (stubGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	return domain.Coordinates{Lon: -46.6333, Lat: -23.5505}, nil
}

type stubSequencer struct{}

func (stubSequencer) Sequence(ctx context.Context, stops []domain.Stop, start *domain.Coordinates) (ports.SequenceResult, error) {
	order := make([]int, len(stops))
	for i := range stops {
		order[i] = i
	}
	return ports.SequenceResult{Order: order, DistanceMeters: 100, DurationSeconds: 60}, nil
}

func planHandler(orders []*domain.Order) *PlanHandler {
	repo := &stubRepo{orders: orders}
	return &PlanHandler{
		Repo:      repo,
		Resolver:  &services.Resolver{Geocoder: stubGeocoder{}, Repo: repo, Workers: 1},
		Sequencer: stubSequencer{},
	}
}

func TestPlanRejectsWrongMethod(t *testing.T) {
	h := planHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/routes/plan", nil)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestPlanRejectsMalformedDate(t *testing.T) {
	h := planHandler(nil)

	body := strings.NewReader(`{"date_from": "08/09/2025"}`)
	req := httptest.NewRequest(http.MethodPost, "/routes/plan", body)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlanRejectsInvertedDateRange(t *testing.T) {
	h := planHandler(nil)

	body := strings.NewReader(`{"date_from": "2025-09-10", "date_to": "2025-09-01"}`)
	req := httptest.NewRequest(http.MethodPost, "/routes/plan", body)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlanRejectsUnknownFields(t *testing.T) {
	h := planHandler(nil)

	body := strings.NewReader(`{"radius": 5}`)
	req := httptest.NewRequest(http.MethodPost, "/routes/plan", body)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlanHappyPath(t *testing.T) {
	orders := []*domain.Order{
		{OrderID: 1, SaleNumber: "V-001", ClientName: "Padaria", Address: "Av. Paulista, 1578"},
		{OrderID: 2, SaleNumber: "V-002", ClientName: "Otica", Address: ""},
	}
	h := planHandler(orders)

	body := strings.NewReader(`{}`)
	req := httptest.NewRequest(http.MethodPost, "/routes/plan", body)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var res struct {
		Params struct {
			WindowDays int     `json:"window_days"`
			RadiusKm   float64 `json:"radius_km"`
			MaxStops   int     `json:"max_stops"`
		} `json:"params"`
		Stats struct {
			Candidates int `json:"candidates"`
			Geocoded   int `json:"geocoded"`
			Unassigned int `json:"unassigned"`
			Routes     int `json:"routes"`
		} `json:"stats"`
		Unassigned []struct {
			OrderID int64  `json:"order_id"`
			Reason  string `json:"reason"`
		} `json:"unassigned"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Defaults are applied when the body leaves tunables unset.
	if res.Params.WindowDays != 3 || res.Params.RadiusKm != 15 || res.Params.MaxStops != 10 {
		t.Fatalf("params = %+v, want defaults 3/15/10", res.Params)
	}

	if res.Stats.Candidates != 2 || res.Stats.Geocoded != 1 || res.Stats.Unassigned != 1 || res.Stats.Routes != 1 {
		t.Fatalf("stats = %+v", res.Stats)
	}
	if len(res.Unassigned) != 1 || res.Unassigned[0].OrderID != 2 || res.Unassigned[0].Reason != "missing_address" {
		t.Fatalf("unassigned = %+v", res.Unassigned)
	}
}
