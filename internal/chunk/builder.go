package chunk

import (
	"regexp"
	"strings"

	"github.com/hoangvan1410/Minumate/internal/segment"
)

// DefaultMaxChunkSize is the character threshold after which a chunk is closed
const DefaultMaxChunkSize = 6000

// Chunk is a size- and topic-bounded grouping of transcript lines, the unit
// submitted to the completion provider. Immutable once built.
type Chunk struct {
	// Text is the chunk's non-empty lines joined with newlines
	Text string

	// StartTime and EndTime are best-effort HH:MM(:SS) strings, may be empty
	StartTime string
	EndTime   string

	// Speakers observed in the chunk, in order of first appearance
	Speakers []string

	// Topic is the label of the segment the chunk opened on
	Topic string
}

var topicMarkerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`discussing (.+?)(\.|\n|$)`),
	regexp.MustCompile(`topic: (.+?)(\.|\n|$)`),
	regexp.MustCompile(`regarding (.+?)(\.|\n|$)`),
	regexp.MustCompile(`about (.+?)(\.|\n|$)`),
}

var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

// ExtractTopic returns a segment's topic label: the first explicit marker
// match, or the segment's first sentence when no marker is present.
func ExtractTopic(seg string) string {
	lower := strings.ToLower(seg)
	for _, pattern := range topicMarkerPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	sentences := sentenceSplitPattern.Split(seg, -1)
	if len(sentences) > 0 {
		return strings.TrimSpace(sentences[0])
	}
	return ""
}

// Builder repacks segments into size-bounded chunks
type Builder struct {
	maxChunkSize int
	segmenter    *segment.Segmenter
	classifier   segment.Classifier
}

// NewBuilder creates a builder with the given chunk size threshold.
// A non-positive threshold falls back to DefaultMaxChunkSize.
func NewBuilder(maxChunkSize int) *Builder {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}
	classifier := segment.NewKeywordClassifier()
	return &Builder{
		maxChunkSize: maxChunkSize,
		segmenter:    segment.NewSegmenterWithClassifier(classifier),
		classifier:   classifier,
	}
}

// accumulator carries the in-progress chunk state across lines
type accumulator struct {
	lines     []string
	size      int
	speakers  []string
	seen      map[string]bool
	startTime string
	topic     string
}

func (a *accumulator) reset() {
	a.lines = nil
	a.size = 0
	a.speakers = nil
	a.seen = make(map[string]bool)
	a.startTime = ""
	a.topic = ""
}

func (a *accumulator) addSpeaker(speaker string) {
	if speaker == "" || a.seen[speaker] {
		return
	}
	a.seen[speaker] = true
	a.speakers = append(a.speakers, speaker)
}

// Build splits the transcript into chunks. The ordered concatenation of all
// chunks' lines equals the transcript's non-blank lines, each exactly once.
func (b *Builder) Build(transcript string) []Chunk {
	segments := b.segmenter.Split(transcript)

	var chunks []Chunk
	acc := &accumulator{seen: make(map[string]bool)}

	for _, seg := range segments {
		segTopic := ExtractTopic(seg)

		for _, line := range strings.Split(seg, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			timestamp := segment.ExtractTimestamp(line)
			speaker := segment.ExtractSpeaker(line)

			// Split decision uses the size before this line is appended,
			// so a chunk may exceed the threshold by at most one line.
			shouldSplit := acc.size > b.maxChunkSize ||
				(acc.topic != "" && segTopic != acc.topic) ||
				(len(acc.lines) > 0 && b.classifier.MajorShift(acc.lines[len(acc.lines)-1], line))

			if shouldSplit && len(acc.lines) > 0 {
				endTime := timestamp
				if endTime == "" && len(chunks) > 0 {
					// Fall back to the previous chunk's end time. A stale
					// end time can propagate here; kept for compatibility.
					endTime = chunks[len(chunks)-1].EndTime
				}
				chunks = append(chunks, Chunk{
					Text:      strings.Join(acc.lines, "\n"),
					StartTime: acc.startTime,
					EndTime:   endTime,
					Speakers:  acc.speakers,
					Topic:     acc.topic,
				})
				acc.reset()
				acc.startTime = timestamp
				acc.topic = segTopic
			}

			acc.lines = append(acc.lines, line)
			acc.size += len(line)
			acc.addSpeaker(speaker)
			if timestamp != "" && acc.startTime == "" {
				acc.startTime = timestamp
			}
			if acc.topic == "" {
				acc.topic = segTopic
			}
		}
	}

	if len(acc.lines) > 0 {
		chunks = append(chunks, Chunk{
			Text:      strings.Join(acc.lines, "\n"),
			StartTime: acc.startTime,
			EndTime:   segment.ExtractTimestamp(acc.lines[len(acc.lines)-1]),
			Speakers:  acc.speakers,
			Topic:     acc.topic,
		})
	}

	return chunks
}
