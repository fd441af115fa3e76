package segment

import "strings"

// contextWindow is how many trailing lines of the current segment are used
// as context when evaluating a break before the next line.
const contextWindow = 5

// Segmenter splits a transcript into semantically coherent segments
type Segmenter struct {
	detector *Detector
}

// NewSegmenter creates a segmenter with the default keyword classifier
func NewSegmenter() *Segmenter {
	return &Segmenter{detector: NewDetector(NewKeywordClassifier())}
}

// NewSegmenterWithClassifier creates a segmenter backed by a custom classifier
func NewSegmenterWithClassifier(classifier Classifier) *Segmenter {
	return &Segmenter{detector: NewDetector(classifier)}
}

// Split partitions the transcript into an ordered sequence of segments.
// The segments are contiguous and lossless: joining them with newlines
// reproduces the input. An empty transcript yields no segments.
func (s *Segmenter) Split(transcript string) []string {
	if strings.TrimSpace(transcript) == "" {
		return nil
	}

	lines := strings.Split(transcript, "\n")

	var segments []string
	var current []string

	for i, line := range lines {
		current = append(current, line)

		// The last line cannot start a new segment after it
		if i >= len(lines)-1 {
			continue
		}

		start := len(current) - contextWindow
		if start < 0 {
			start = 0
		}
		context := strings.Join(current[start:], " ")

		if s.detector.IsBreak(context, lines[i+1]) {
			segments = append(segments, strings.Join(current, "\n"))
			current = nil
		}
	}

	if len(current) > 0 {
		segments = append(segments, strings.Join(current, "\n"))
	}

	return segments
}
