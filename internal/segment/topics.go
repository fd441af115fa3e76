package segment

import "strings"

// Classifier maps text to coarse topic categories and detects topic shifts.
// It is an interface so a stronger classifier can replace the keyword one
// without touching the segmenter or chunk builder.
type Classifier interface {
	// Topics returns the topic categories a text belongs to
	Topics(text string) []string

	// MajorShift reports whether next belongs to topic categories
	// entirely disjoint from current's
	MajorShift(current, next string) bool
}

// KeywordClassifier classifies text against fixed keyword sets.
// Coarse and easily fooled, but cheap and deterministic.
type KeywordClassifier struct {
	keywords map[string][]string
}

// NewKeywordClassifier creates a classifier with the default keyword sets
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		keywords: map[string][]string{
			"technical": {"code", "bug", "feature", "development", "testing"},
			"business":  {"cost", "budget", "client", "revenue", "market"},
			"planning":  {"schedule", "timeline", "deadline", "plan", "milestone"},
			"design":    {"ui", "ux", "design", "layout", "interface"},
			"team":      {"team", "staff", "hire", "role", "responsibility"},
		},
	}
}

// Topics returns the categories whose keyword sets intersect the text's words
func (c *KeywordClassifier) Topics(text string) []string {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[w] = true
	}

	var topics []string
	for topic, keywords := range c.keywords {
		for _, kw := range keywords {
			if words[kw] {
				topics = append(topics, topic)
				break
			}
		}
	}
	return topics
}

// MajorShift reports a shift when next has at least one topic and shares
// none of them with current. Any shared topic suppresses the signal, which
// favors fewer, larger chunks over oversplitting.
func (c *KeywordClassifier) MajorShift(current, next string) bool {
	nextTopics := c.Topics(next)
	if len(nextTopics) == 0 {
		return false
	}

	currentTopics := make(map[string]bool)
	for _, t := range c.Topics(current) {
		currentTopics[t] = true
	}

	for _, t := range nextTopics {
		if currentTopics[t] {
			return false
		}
	}
	return true
}
