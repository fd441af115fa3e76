package analyze

import (
	"encoding/json"
	"strings"

	"github.com/hoangvan1410/Minumate/internal/model"
)

// flexItem accepts either a plain string or a structured record, normalizing
// to a string so nothing downstream has to inspect provider-specific shapes.
type flexItem string

// Fields tried, in order, when an item arrives as an object
var itemTextFields = []string{"text", "task", "item", "description", "point", "decision"}

func (f *flexItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexItem(s)
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err == nil {
		for _, field := range itemTextFields {
			if v, ok := obj[field].(string); ok && v != "" {
				*f = flexItem(v)
				return nil
			}
		}
	}

	// Last resort: keep the raw JSON as the item text
	*f = flexItem(strings.TrimSpace(string(data)))
	return nil
}

type partialPayload struct {
	Summary     string     `json:"summary"`
	KeyPoints   []flexItem `json:"key_points"`
	ActionItems []flexItem `json:"action_items"`
	Decisions   []flexItem `json:"decisions"`
}

// parsePartial parses a chunk-analysis response. A response that is not
// valid JSON degrades to a free-text-only analysis rather than an error.
func parsePartial(content string) model.PartialAnalysis {
	var payload partialPayload
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return model.PartialAnalysis{
			Summary:     content,
			KeyPoints:   []string{},
			ActionItems: []string{},
			Decisions:   []string{},
		}
	}

	return model.PartialAnalysis{
		Summary:     payload.Summary,
		KeyPoints:   toStrings(payload.KeyPoints),
		ActionItems: toStrings(payload.ActionItems),
		Decisions:   toStrings(payload.Decisions),
	}
}

func toStrings(items []flexItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, string(item))
	}
	return out
}

// extractJSON strips a markdown code fence around a JSON response, if any
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if idx := strings.Index(content, "```json"); idx >= 0 {
		content = content[idx+len("```json"):]
		if end := strings.Index(content, "```"); end >= 0 {
			content = content[:end]
		}
		return strings.TrimSpace(content)
	}

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if end := strings.Index(content, "```"); end >= 0 {
			content = content[:end]
		}
		return strings.TrimSpace(content)
	}

	return content
}
