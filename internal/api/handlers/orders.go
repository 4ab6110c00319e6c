package handlers

import (
	"log"
	"net/http"
	"time"

	"installation-route-service/internal/api/dto"
	"installation-route-service/internal/ports"
)

// OrderHandler exposes read-only order retrieval endpoints.
type OrderHandler struct {
	Repo ports.OrderRepository
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	from, ok := parseDateParam(w, r, "date_from")
	if !ok {
		return
	}
	to, ok := parseDateParam(w, r, "date_to")
	if !ok {
		return
	}

	orders, err := h.Repo.ListCandidates(r.Context(), from, to)
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		item := dto.OrderResponse{
			OrderID:    o.OrderID,
			SaleNumber: o.SaleNumber,
			ClientName: o.ClientName,
			Address:    o.Address,
		}
		if o.DeliveryDate != nil {
			d := o.DeliveryDate.Format("2006-01-02")
			item.DeliveryDate = &d
		}
		if o.Coords != nil {
			lat, lng := o.Coords.Lat, o.Coords.Lon
			item.AddressLat = &lat
			item.AddressLng = &lng
		}
		res.Orders = append(res.Orders, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// parseDateParam reads an optional ISO-date query parameter, writing a
// 400 response and returning ok=false when the value is malformed.
func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}

	d, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, name+" must be an ISO date (YYYY-MM-DD)")
		return nil, false
	}

	return &d, true
}
