package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"installation-route-service/internal/domain"
	"installation-route-service/internal/platform/obs"
	"installation-route-service/internal/ports"
)

type optimizationJob struct {
	ID       int       `json:"id"`
	Location []float64 `json:"location"`
	Service  int       `json:"service"`
}

type optimizationVehicle struct {
	ID      int       `json:"id"`
	Profile string    `json:"profile"`
	Start   []float64 `json:"start,omitempty"`
	End     []float64 `json:"end,omitempty"`
}

type optimizationRequest struct {
	Jobs     []optimizationJob     `json:"jobs"`
	Vehicles []optimizationVehicle `json:"vehicles"`
}

type optimizationResponse struct {
	Summary struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"summary"`
	Routes []struct {
		Steps []struct {
			Type string `json:"type"`
			Job  int    `json:"job"`
		} `json:"steps"`
	} `json:"routes"`
}

// Sequence orders one route segment via the /optimization endpoint.
//
// Each stop becomes a job (1-based id, [lon, lat] location, fixed
// service time) for a single vehicle. A non-nil start pins the
// vehicle's start and end there (round trip); nil leaves both open so
// the optimizer chooses the endpoints. The returned order references
// input stop indexes recovered from the job ids of the first route's
// "job" steps.
func (c *Client) Sequence(
	ctx context.Context,
	stops []domain.Stop,
	start *domain.Coordinates,
) (_ ports.SequenceResult, err error) {
	defer obs.Time(ctx, "ors.Sequence")(&err)

	if len(stops) == 0 {
		return ports.SequenceResult{Order: []int{}}, nil
	}

	jobs := make([]optimizationJob, 0, len(stops))
	for i, s := range stops {
		jobs = append(jobs, optimizationJob{
			ID:       i + 1,
			Location: s.Coords.CoordsToList(),
			Service:  c.serviceSeconds,
		})
	}

	vehicle := optimizationVehicle{ID: 1, Profile: c.profile}
	if start != nil {
		vehicle.Start = start.CoordsToList()
		vehicle.End = start.CoordsToList()
	}

	payload, err := json.Marshal(optimizationRequest{
		Jobs:     jobs,
		Vehicles: []optimizationVehicle{vehicle},
	})
	if err != nil {
		return ports.SequenceResult{}, fmt.Errorf("marshal optimization request: %w", err)
	}

	endpoint := c.baseURL + "/optimization"
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return ports.SequenceResult{}, fmt.Errorf("optimization request: %w", err)
	}
	defer resp.Body.Close()

	var decoded optimizationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.SequenceResult{}, fmt.Errorf("decode optimization response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return ports.SequenceResult{}, errors.New("optimization returned no routes")
	}

	order := make([]int, 0, len(stops))
	for _, step := range decoded.Routes[0].Steps {
		if step.Type != "job" {
			continue
		}
		if step.Job < 1 || step.Job > len(stops) {
			return ports.SequenceResult{}, fmt.Errorf("optimization step references unknown job %d", step.Job)
		}
		order = append(order, step.Job-1)
	}

	if len(order) == 0 {
		return ports.SequenceResult{}, errors.New("optimization returned no job steps")
	}

	return ports.SequenceResult{
		Order:           order,
		DistanceMeters:  int(math.Round(decoded.Summary.Distance)),
		DurationSeconds: int(math.Round(decoded.Summary.Duration)),
	}, nil
}
