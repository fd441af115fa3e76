package analyze

import (
	"reflect"
	"testing"
)

func TestParsePartial_ValidJSON(t *testing.T) {
	content := `{
		"summary": "The team agreed on the rollout.",
		"key_points": ["staged rollout", "monitoring first"],
		"action_items": ["Bob: enable dashboards"],
		"decisions": ["roll out on Monday"]
	}`

	pa := parsePartial(content)

	if pa.Summary != "The team agreed on the rollout." {
		t.Errorf("Summary = %q", pa.Summary)
	}
	if want := []string{"staged rollout", "monitoring first"}; !reflect.DeepEqual(pa.KeyPoints, want) {
		t.Errorf("KeyPoints = %v, want %v", pa.KeyPoints, want)
	}
	if want := []string{"Bob: enable dashboards"}; !reflect.DeepEqual(pa.ActionItems, want) {
		t.Errorf("ActionItems = %v, want %v", pa.ActionItems, want)
	}
	if want := []string{"roll out on Monday"}; !reflect.DeepEqual(pa.Decisions, want) {
		t.Errorf("Decisions = %v, want %v", pa.Decisions, want)
	}
}

func TestParsePartial_FencedJSON(t *testing.T) {
	content := "Here is the analysis:\n```json\n{\"summary\": \"Short sync.\", \"key_points\": []}\n```"

	pa := parsePartial(content)
	if pa.Summary != "Short sync." {
		t.Errorf("Summary = %q, fence should be stripped", pa.Summary)
	}
}

func TestParsePartial_BareFence(t *testing.T) {
	content := "```\n{\"summary\": \"Short sync.\"}\n```"

	pa := parsePartial(content)
	if pa.Summary != "Short sync." {
		t.Errorf("Summary = %q, bare fence should be stripped", pa.Summary)
	}
}

func TestParsePartial_MalformedDegradesToFreeText(t *testing.T) {
	content := "The provider rambled instead of returning JSON."

	pa := parsePartial(content)

	if pa.Summary != content {
		t.Errorf("Summary = %q, want the raw content", pa.Summary)
	}
	if len(pa.KeyPoints) != 0 || len(pa.ActionItems) != 0 || len(pa.Decisions) != 0 {
		t.Errorf("expected empty lists on degraded parse, got %+v", pa)
	}
	if pa.KeyPoints == nil || pa.ActionItems == nil || pa.Decisions == nil {
		t.Error("degraded lists should be empty slices, not nil")
	}
}

func TestParsePartial_ObjectItems(t *testing.T) {
	content := `{
		"summary": "Planning.",
		"key_points": [{"point": "hiring freeze lifted"}],
		"action_items": [{"task": "post the req", "owner": "Ana"}],
		"decisions": [{"unexpected": 1}]
	}`

	pa := parsePartial(content)

	if want := []string{"hiring freeze lifted"}; !reflect.DeepEqual(pa.KeyPoints, want) {
		t.Errorf("KeyPoints = %v, want %v", pa.KeyPoints, want)
	}
	if want := []string{"post the req"}; !reflect.DeepEqual(pa.ActionItems, want) {
		t.Errorf("ActionItems = %v, want %v", pa.ActionItems, want)
	}
	// Unknown object shape falls back to its raw JSON
	if len(pa.Decisions) != 1 || pa.Decisions[0] != `{"unexpected": 1}` {
		t.Errorf("Decisions = %v, want the raw object text", pa.Decisions)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"json fence with preamble", "Sure!\n```json\n{\"a\": 1}\n```\nDone.", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"unterminated fence", "```json\n{\"a\": 1}", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.content); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("hello", 3); got != "hel" {
		t.Errorf("truncate = %q, want hel", got)
	}
	// Never splits a multi-byte rune
	if got := truncate("héllo", 2); got != "h" {
		t.Errorf("truncate on rune boundary = %q, want h", got)
	}
}
