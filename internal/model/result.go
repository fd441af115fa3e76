package model

import "time"

// Result contains the complete analysis of one transcript
type Result struct {
	Meeting    MeetingData     `json:"meeting"`
	ChunkCount int             `json:"chunk_count"`
	Merged     MergedAnalysis  `json:"merged"`
	Summary    *MeetingSummary `json:"summary,omitempty"`
	Warnings   []string        `json:"warnings,omitempty"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
}
