package ingest

import (
	"regexp"
	"strings"
)

// 00:10:15.000 --> 00:10:18.500
var vttTimingPattern = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2})[.,]\d{3}\s+-->\s+\d{2}:\d{2}:\d{2}[.,]\d{3}`)

// <v Alice>text</v>
var vttVoicePattern = regexp.MustCompile(`<v\s+([^>]+)>(.*?)(</v>)?$`)

var vttCueIDPattern = regexp.MustCompile(`^\d+$`)

// FromVTT converts a WebVTT transcript into bracketed-timestamp lines.
// Each cue's text becomes one "[HH:MM:SS] Speaker: text" line; cues without
// a voice tag keep their text as-is after the timestamp.
func FromVTT(content string) string {
	var out []string
	currentTime := ""

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))

		if line == "" || line == "WEBVTT" || strings.HasPrefix(line, "NOTE") || vttCueIDPattern.MatchString(line) {
			continue
		}

		if m := vttTimingPattern.FindStringSubmatch(line); m != nil {
			currentTime = m[1]
			continue
		}

		text := line
		if m := vttVoicePattern.FindStringSubmatch(line); m != nil {
			text = strings.TrimSpace(m[1]) + ": " + strings.TrimSpace(m[2])
		}

		if currentTime != "" {
			out = append(out, "["+currentTime+"] "+text)
		} else {
			out = append(out, text)
		}
	}

	return strings.Join(out, "\n")
}
