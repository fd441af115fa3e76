package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a transcript file, converting it to plain annotated text.
// WebVTT files (Zoom cloud transcripts) become "[HH:MM:SS] Speaker: text"
// lines; HTML exports are reduced to their visible text; anything else is
// read verbatim.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return FromVTT(string(data)), nil
	case ".html", ".htm":
		return FromHTML(string(data))
	default:
		return string(data), nil
	}
}
