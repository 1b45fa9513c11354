package handlers

import (
	"log"
	"net/http"
	"strings"

	"order-grouping-service/internal/api/dto"
	"order-grouping-service/internal/ports"
	"order-grouping-service/internal/services"
)

// MergeHandler runs full grouping passes: compute suggestions, select a
// conflict-free set, and persist the group assignments.
type MergeHandler struct {
	Repo   ports.OrderRepository
	Engine *services.Engine
}

func (h *MergeHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanMergesRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	planDate := strings.TrimSpace(req.PlanDate)
	if planDate == "" {
		writeError(w, r, http.StatusBadRequest, "plan_date is required")
		return
	}

	result, err := services.PlanGroups(r.Context(), h.Engine, h.Repo, planDate)
	if err != nil {
		log.Printf("plan groups failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.PlanMergesResponse{
		Merges: make([]dto.SelectedMergeResponse, 0, len(result.Merges)),
	}
	for i, m := range result.Merges {
		res.Merges = append(res.Merges, dto.SelectedMergeResponse{
			GroupID:      result.GroupIDs[i],
			OrderIDs:     m.OrderIDs,
			OrderNumbers: m.OrderNumbers,
			Layer:        m.Layer,
			Score:        m.Score,
			AvgBufferMin: m.AvgBufferMin,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
