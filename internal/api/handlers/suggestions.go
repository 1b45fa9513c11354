package handlers

import (
	"log"
	"net/http"
	"strings"

	"order-grouping-service/internal/api/dto"
	"order-grouping-service/internal/domain"
	"order-grouping-service/internal/ports"
	"order-grouping-service/internal/services"
)

// SuggestionHandler computes layered merge suggestions without
// persisting anything, for operator review.
type SuggestionHandler struct {
	Repo   ports.OrderRepository
	Engine *services.Engine
}

func (h *SuggestionHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SuggestionsRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	planDate := strings.TrimSpace(req.PlanDate)
	if planDate == "" {
		writeError(w, r, http.StatusBadRequest, "plan_date is required")
		return
	}

	orders, err := h.Repo.ListUngrouped(r.Context(), planDate)
	if err != nil {
		log.Printf("list ungrouped orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	layered := h.Engine.ComputeLayeredSuggestions(r.Context(), orders)

	res := dto.LayeredSuggestionsResponse{
		Tight:  toSuggestionResponses(layered.Tight),
		Normal: toSuggestionResponses(layered.Normal),
		Loose:  toSuggestionResponses(layered.Loose),
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toSuggestionResponses(suggestions []domain.MergeSuggestion) []dto.SuggestionResponse {
	out := make([]dto.SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.SuggestionResponse{
			OrderIDs:     s.OrderIDs,
			OrderNumbers: s.OrderNumbers,
			Score:        s.Score,
			AvgBufferMin: s.AvgBufferMin,
			Reasons:      s.Reasons,
		})
	}
	return out
}
