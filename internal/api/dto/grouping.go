package dto

type SuggestionsRequest struct {
	PlanDate string `json:"plan_date"`
}

type SuggestionResponse struct {
	OrderIDs     []string `json:"order_ids"`
	OrderNumbers []string `json:"order_numbers"`
	Score        float64  `json:"score"`
	AvgBufferMin float64  `json:"avg_buffer_min"`
	Reasons      []string `json:"reasons"`
}

type LayeredSuggestionsResponse struct {
	Tight  []SuggestionResponse `json:"tight"`
	Normal []SuggestionResponse `json:"normal"`
	Loose  []SuggestionResponse `json:"loose"`
}

type PlanMergesRequest struct {
	PlanDate string `json:"plan_date"`
}

type SelectedMergeResponse struct {
	GroupID      string   `json:"group_id"`
	OrderIDs     []string `json:"order_ids"`
	OrderNumbers []string `json:"order_numbers"`
	Layer        string   `json:"layer"`
	Score        float64  `json:"score"`
	AvgBufferMin float64  `json:"avg_buffer_min"`
}

type PlanMergesResponse struct {
	Merges []SelectedMergeResponse `json:"merges"`
}
