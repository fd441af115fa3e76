package segment

import (
	"regexp"
	"strings"
)

var (
	timestampPattern = regexp.MustCompile(`\[(\d{2}:\d{2}(?::\d{2})?)\]`)
	speakerPattern   = regexp.MustCompile(`^([^:]+):`)

	// Leading bracketed timestamp, stripped before looking for a speaker label
	timestampPrefixPattern = regexp.MustCompile(`^\s*\[\d{2}:\d{2}(?::\d{2})?\]\s*`)

	discussionStarterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`what (do|are|if|about)`),
		regexp.MustCompile(`how (should|do|would|can)`),
		regexp.MustCompile(`should we`),
		regexp.MustCompile(`could we`),
		regexp.MustCompile(`let'?s think about`),
	}
)

var topicTransitionPhrases = []string{
	"moving on to",
	"next item",
	"next topic",
	"regarding",
	"lets discuss",
	"let's discuss",
	"turning to",
	"speaking of",
	"about the",
	"on the topic of",
	"discussing",
	"new agenda item",
	"new topic",
}

var conclusionPhrases = []string{
	"in conclusion",
	"to summarize",
	"wrapping up",
	"finally",
	"in summary",
}

// ExtractTimestamp returns the bracketed HH:MM or HH:MM:SS timestamp in a
// line, or "" if none is present.
func ExtractTimestamp(line string) string {
	if m := timestampPattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// ExtractSpeaker returns the leading "Name:" speaker label of a line, trimmed,
// or "" if none is present. A leading bracketed timestamp is skipped so
// "[10:15] Alice: ..." yields "Alice".
func ExtractSpeaker(line string) string {
	line = timestampPrefixPattern.ReplaceAllString(line, "")
	if m := speakerPattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// Detector decides where discussion flow breaks. Phrase rules are checked
// first; if none fire it falls back to the classifier's major-shift test.
type Detector struct {
	classifier Classifier
}

// NewDetector creates a detector backed by the given topic classifier
func NewDetector(classifier Classifier) *Detector {
	return &Detector{classifier: classifier}
}

// IsBreak reports whether a segment boundary should be placed between the
// current context window and the next line.
func (d *Detector) IsBreak(currentContext, nextLine string) bool {
	lower := strings.ToLower(nextLine)

	for _, phrase := range topicTransitionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	for _, phrase := range conclusionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	for _, pattern := range discussionStarterPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}

	return d.classifier.MajorShift(currentContext, nextLine)
}
