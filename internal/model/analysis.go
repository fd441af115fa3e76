package model

// PartialAnalysis is the result of analyzing one transcript chunk.
// Items are normalized to plain strings at the analyzer boundary, so the
// merger never has to inspect provider-specific shapes.
type PartialAnalysis struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"key_points"`
	ActionItems []string `json:"action_items"`
	Decisions   []string `json:"decisions"`
}

// MergedAnalysis is the deduplicated consolidation of all chunk analyses
type MergedAnalysis struct {
	KeyPoints   []string `json:"key_points"`
	ActionItems []string `json:"action_items"`
	Decisions   []string `json:"decisions"`
	Summary     string   `json:"summary"`
}
