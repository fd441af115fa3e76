package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hoangvan1410/Minumate/internal/prompt"
)

// Renderer writes analysis results as JSON, Markdown and a stdout digest
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full result as indented JSON
func (r *Renderer) RenderJSON(result *Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// RenderMarkdown writes a human-readable meeting report
func (r *Renderer) RenderMarkdown(result *Result, path string) error {
	var b strings.Builder

	title := result.Meeting.Title
	if title == "" {
		title = "Meeting Analysis"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if result.Meeting.Date != "" {
		fmt.Fprintf(&b, "**Date:** %s  \n", result.Meeting.Date)
	}
	if len(result.Meeting.Participants) > 0 {
		fmt.Fprintf(&b, "**Participants:** %s  \n", strings.Join(result.Meeting.Participants, ", "))
	}
	if result.Meeting.Duration != "" {
		fmt.Fprintf(&b, "**Duration:** %s  \n", result.Meeting.Duration)
	}
	fmt.Fprintf(&b, "\n")

	if result.Summary != nil {
		s := result.Summary

		if s.ExecutiveSummary != "" {
			fmt.Fprintf(&b, "## Executive Summary\n\n%s\n\n", s.ExecutiveSummary)
		}
		if len(s.KeyDecisions) > 0 {
			fmt.Fprintf(&b, "## Key Decisions\n\n%s\n\n", prompt.FormatBulletPoints(s.KeyDecisions))
		}
		if len(s.ActionItems) > 0 {
			fmt.Fprintf(&b, "## Action Items\n\n%s\n\n", prompt.FormatActionItems(s.ActionItems))
		}
		if len(s.NextSteps) > 0 {
			fmt.Fprintf(&b, "## Next Steps\n\n%s\n\n", prompt.FormatBulletPoints(s.NextSteps))
		}
		if len(s.RisksConcerns) > 0 {
			fmt.Fprintf(&b, "## Risks & Concerns\n\n%s\n\n", prompt.FormatBulletPoints(s.RisksConcerns))
		}
		if len(s.FollowUpMeetings) > 0 {
			fmt.Fprintf(&b, "## Follow-Up Meetings\n\n%s\n\n", prompt.FormatBulletPoints(s.FollowUpMeetings))
		}
	}

	if len(result.Merged.KeyPoints) > 0 {
		fmt.Fprintf(&b, "## Discussion Highlights\n\n%s\n\n", prompt.FormatBulletPoints(result.Merged.KeyPoints))
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(&b, "## Warnings\n\n%s\n\n", prompt.FormatBulletPoints(result.Warnings))
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n_Generated by Minumate from %d transcript chunk(s)._\n", result.ChunkCount)
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// RenderSummary prints a short digest to stdout
func (r *Renderer) RenderSummary(result *Result) {
	title := result.Meeting.Title
	if title == "" {
		title = "Meeting Analysis"
	}

	fmt.Printf("\n%s\n", title)
	fmt.Printf("Chunks analyzed: %d\n", result.ChunkCount)

	if result.Summary != nil {
		fmt.Printf("Key decisions:   %d\n", len(result.Summary.KeyDecisions))
		fmt.Printf("Action items:    %d\n", len(result.Summary.ActionItems))
		fmt.Printf("Risks/concerns:  %d\n", len(result.Summary.RisksConcerns))
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("Warnings:        %d\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
	fmt.Println()
}
