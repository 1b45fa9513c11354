package domain

// Represents a proposed chain of 2+ orders to be served back-to-back by
// one driver. OrderIDs are listed in execution sequence (each order's
// dropoff precedes the next order's pickup). Suggestions are ephemeral
// planning data computed fresh on every grouping pass.
type MergeSuggestion struct {
	OrderIDs     []string
	OrderNumbers []string
	Score        float64
	AvgBufferMin float64
	Reasons      []string
}

// The output of one layered suggestion pass: three suggestion lists of
// decreasing strictness, each sorted by descending score.
type LayeredSuggestions struct {
	Tight  []MergeSuggestion
	Normal []MergeSuggestion
	Loose  []MergeSuggestion
}

// The terminal output of a selection pass. Across all SelectedMerges
// produced by one pass, every order id appears in at most one merge.
type SelectedMerge struct {
	OrderIDs     []string
	OrderNumbers []string
	Layer        string
	Score        float64
	AvgBufferMin float64
}
