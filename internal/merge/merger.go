package merge

import (
	"regexp"
	"strings"

	"github.com/hoangvan1410/Minumate/internal/model"
)

// Boilerplate transition phrases stripped from the consolidated summary
var redundantPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)in this part of the meeting,`),
	regexp.MustCompile(`(?i)during this segment,`),
	regexp.MustCompile(`(?i)in this section,`),
	regexp.MustCompile(`(?i)moving on,`),
	regexp.MustCompile(`(?i)additionally,`),
}

// Analyses combines ordered per-chunk analyses into one deduplicated result.
// For each list field, the first occurrence of a case-insensitive-equal item
// wins and order of first appearance is preserved. Empty input yields an
// all-empty result.
func Analyses(analyses []model.PartialAnalysis) model.MergedAnalysis {
	merged := model.MergedAnalysis{
		KeyPoints:   []string{},
		ActionItems: []string{},
		Decisions:   []string{},
	}

	seenPoints := make(map[string]bool)
	seenActions := make(map[string]bool)
	seenDecisions := make(map[string]bool)
	var summaries []string

	for _, analysis := range analyses {
		merged.KeyPoints = appendNew(merged.KeyPoints, analysis.KeyPoints, seenPoints)
		merged.ActionItems = appendNew(merged.ActionItems, analysis.ActionItems, seenActions)
		merged.Decisions = appendNew(merged.Decisions, analysis.Decisions, seenDecisions)

		if analysis.Summary != "" {
			summaries = append(summaries, analysis.Summary)
		}
	}

	if len(summaries) > 0 {
		merged.Summary = ConsolidateSummaries(summaries)
	}

	return merged
}

// Strings deduplicates a list case-insensitively, first occurrence wins.
// Used on next_steps, risks_concerns and follow_up_meetings, which share the
// merger's deduplication contract.
func Strings(items []string) []string {
	out := []string{}
	return appendNew(out, items, make(map[string]bool))
}

func appendNew(dst, items []string, seen map[string]bool) []string {
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		dst = append(dst, item)
	}
	return dst
}

// ConsolidateSummaries joins chunk summaries into one narrative, stripping
// boilerplate transition phrases.
func ConsolidateSummaries(summaries []string) string {
	consolidated := strings.Join(summaries, " ")
	for _, phrase := range redundantPhrases {
		consolidated = phrase.ReplaceAllString(consolidated, "")
	}
	return strings.TrimSpace(consolidated)
}
