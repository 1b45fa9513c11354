package handlers

import (
	"log"
	"net/http"
	"strings"

	"order-grouping-service/internal/api/dto"
	"order-grouping-service/internal/ports"
)

// OrderHandler exposes read-only order retrieval endpoints.
type OrderHandler struct {
	Repo ports.OrderRepository
}

// List returns the ungrouped orders for one planning day.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	planDate := strings.TrimSpace(r.URL.Query().Get("plan_date"))
	if planDate == "" {
		writeError(w, r, http.StatusBadRequest, "plan_date is required")
		return
	}

	orders, err := h.Repo.ListUngrouped(r.Context(), planDate)
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderResponse{
			ID:             o.ID,
			OrderNumber:    o.OrderNumber,
			PickupTime:     o.PickupTime,
			PickupAddress:  o.PickupAddress,
			DropoffTime:    o.DropoffTime,
			DropoffAddress: o.DropoffAddress,
			TimeBucket:     string(o.Bucket),
			GroupID:        o.GroupID,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
