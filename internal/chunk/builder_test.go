package chunk

import (
	"strings"
	"testing"
)

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func chunkLines(chunks []Chunk) []string {
	var lines []string
	for _, c := range chunks {
		lines = append(lines, strings.Split(c.Text, "\n")...)
	}
	return lines
}

func TestExtractTopic_ExplicitMarkers(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    string
	}{
		{"discussing", "We are discussing the Q3 roadmap. More detail follows.", "the q3 roadmap"},
		{"topic colon", "Topic: security review\nsome detail", "security review"},
		{"regarding", "Regarding hiring plans, we have news.", "hiring plans, we have news"},
		{"about", "Let me tell you about deployment windows.", "deployment windows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTopic(tt.segment); got != tt.want {
				t.Errorf("ExtractTopic(%q) = %q, want %q", tt.segment, got, tt.want)
			}
		})
	}
}

func TestExtractTopic_FirstSentenceFallback(t *testing.T) {
	got := ExtractTopic("The standup went quickly today. Everyone was prepared.")
	if got != "The standup went quickly today" {
		t.Errorf("ExtractTopic fallback = %q, want first sentence", got)
	}
}

func TestExtractTopic_Empty(t *testing.T) {
	if got := ExtractTopic(""); got != "" {
		t.Errorf("ExtractTopic(\"\") = %q, want \"\"", got)
	}
}

func TestBuilder_Build_Empty(t *testing.T) {
	b := NewBuilder(6000)

	if got := b.Build(""); len(got) != 0 {
		t.Errorf("Build(\"\") = %v, want no chunks", got)
	}
}

func TestBuilder_Build_SingleChunk(t *testing.T) {
	b := NewBuilder(6000)

	transcript := "[09:00] Alice: quick sync\n[09:01] Bob: nothing blocking\n[09:02] Alice: same here"
	chunks := b.Build(transcript)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}

	c := chunks[0]
	if c.StartTime != "09:00" {
		t.Errorf("StartTime = %q, want 09:00", c.StartTime)
	}
	if c.EndTime != "09:02" {
		t.Errorf("EndTime = %q, want 09:02", c.EndTime)
	}
	if len(c.Speakers) != 2 {
		t.Errorf("Speakers = %v, want Alice and Bob", c.Speakers)
	}
}

func TestBuilder_Build_Coverage(t *testing.T) {
	b := NewBuilder(200)

	transcript := strings.Join([]string{
		"[10:00] Alice: welcome to the quarterly review",
		"Bob: the budget came in under plan",
		"",
		"Alice: moving on to engineering",
		"Bob: we fixed the login bug and shipped the search feature",
		"Carol: testing coverage is up as well",
		"Alice: what do we do about the deadline?",
		"Bob: the timeline still holds",
		"Alice: in summary, a good quarter",
	}, "\n")

	chunks := b.Build(transcript)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}

	got := chunkLines(chunks)
	want := nonBlankLines(transcript)

	if len(got) != len(want) {
		t.Fatalf("got %d lines across chunks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuilder_Build_SizeBound(t *testing.T) {
	maxSize := 120
	b := NewBuilder(maxSize)

	// Uniform lines with no topic keywords, so only the size trigger fires
	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, "Alice: another routine remark that fills some space")
	}
	transcript := strings.Join(lines, "\n")

	chunks := b.Build(transcript)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i, c := range chunks {
		textLines := strings.Split(c.Text, "\n")
		lastLine := textLines[len(textLines)-1]

		size := 0
		for _, line := range textLines {
			size += len(line)
		}

		if size > maxSize+len(lastLine) {
			t.Errorf("chunk %d size %d exceeds max %d by more than its last line (%d)", i, size, maxSize, len(lastLine))
		}
	}
}

func TestBuilder_Build_SplitsOnTopicChange(t *testing.T) {
	b := NewBuilder(6000)

	transcript := strings.Join([]string{
		"Alice: the budget review went well",
		"Bob: revenue is within plan",
		"Alice: moving on to the interface design",
		"Bob: the new layout tested well",
	}, "\n")

	chunks := b.Build(transcript)
	if len(chunks) < 2 {
		t.Fatalf("expected a topic split, got %d chunk(s)", len(chunks))
	}

	if !strings.Contains(chunks[0].Text, "budget review") {
		t.Errorf("first chunk = %q, want the budget discussion", chunks[0].Text)
	}
	if !strings.Contains(chunks[len(chunks)-1].Text, "layout") {
		t.Errorf("last chunk = %q, want the design discussion", chunks[len(chunks)-1].Text)
	}
}

func TestBuilder_Build_EndTimeFallsBackToPreviousChunk(t *testing.T) {
	b := NewBuilder(40)

	// The second split is triggered by a timestamp-less line, so the chunk it
	// closes inherits the previous chunk's end time.
	transcript := strings.Join([]string{
		"[10:00] Alice: opening remark that runs long",
		"[10:05] Bob: second remark that also runs long",
		"Carol: a reply with no timestamp marker",
		"Dave: short",
	}, "\n")

	chunks := b.Build(transcript)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}

	if chunks[0].EndTime != "10:05" {
		t.Errorf("chunk 0 EndTime = %q, want 10:05 from the triggering line", chunks[0].EndTime)
	}
	if chunks[1].EndTime != "10:05" {
		t.Errorf("chunk 1 EndTime = %q, want 10:05 inherited from chunk 0", chunks[1].EndTime)
	}
	if chunks[2].EndTime != "" {
		t.Errorf("chunk 2 EndTime = %q, want empty (no timestamp on its last line)", chunks[2].EndTime)
	}
}

func TestBuilder_Build_SkipsBlankLines(t *testing.T) {
	b := NewBuilder(6000)

	chunks := b.Build("Alice: hello\n\n\nBob: hi")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "Alice: hello\nBob: hi" {
		t.Errorf("Text = %q, blank lines should be dropped", chunks[0].Text)
	}
}
