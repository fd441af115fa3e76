package analyze

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hoangvan1410/Minumate/internal/llm"
	"github.com/hoangvan1410/Minumate/internal/merge"
	"github.com/hoangvan1410/Minumate/internal/model"
	"github.com/hoangvan1410/Minumate/internal/prompt"
)

type actionItemPayload struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
}

type summaryPayload struct {
	ExecutiveSummary string              `json:"executive_summary"`
	KeyDecisions     []string            `json:"key_decisions"`
	ActionItems      []actionItemPayload `json:"action_items"`
	NextSteps        []string            `json:"next_steps"`
	RisksConcerns    []string            `json:"risks_concerns"`
	FollowUpMeetings []string            `json:"follow_up_meetings"`
}

// Summarize performs the whole-transcript structured extraction, with
// few-shot examples anchoring the output format. List fields go through the
// same case-insensitive deduplication as the chunk merger.
func (a *Analyzer) Summarize(ctx context.Context, meeting model.MeetingData) (*model.MeetingSummary, error) {
	messages := append(prompt.AnalysisExamples(), llm.Message{
		Role:    llm.RoleUser,
		Content: prompt.Analysis(meeting),
	})

	content, err := a.complete(ctx, llm.CompletionRequest{
		System:      prompt.System,
		Messages:    messages,
		Temperature: a.cfg.SummaryTemperature,
		MaxTokens:   a.cfg.MaxSummaryTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize transcript: %w", err)
	}

	var payload summaryPayload
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}

	items := make([]model.ActionItem, 0, len(payload.ActionItems))
	for _, item := range payload.ActionItems {
		due := item.DueDate
		if due == "" || due == "null" {
			due = "TBD"
		}
		items = append(items, model.ActionItem{
			Task:     item.Task,
			Owner:    item.Owner,
			DueDate:  due,
			Priority: item.Priority,
			Status:   "pending",
		})
	}

	return &model.MeetingSummary{
		ExecutiveSummary: payload.ExecutiveSummary,
		KeyDecisions:     merge.Strings(payload.KeyDecisions),
		ActionItems:      items,
		NextSteps:        merge.Strings(payload.NextSteps),
		RisksConcerns:    merge.Strings(payload.RisksConcerns),
		FollowUpMeetings: merge.Strings(payload.FollowUpMeetings),
	}, nil
}
