package analyze

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hoangvan1410/Minumate/internal/llm"
	"github.com/hoangvan1410/Minumate/internal/model"
	"github.com/hoangvan1410/Minumate/internal/prompt"
)

// metadataHead is how much of the transcript's opening is used for metadata
// extraction. Title, date and participants almost always appear early.
const metadataHead = 2000

// ExtractMetadata infers title, date, participants, duration and meeting
// type from the transcript's opening. It never fails: on any transport or
// parse error the returned metadata is the static fallback, with the error
// reported alongside for logging.
func (a *Analyzer) ExtractMetadata(ctx context.Context, transcript string) (model.MeetingMetadata, error) {
	content, err := a.complete(ctx, llm.CompletionRequest{
		System:      prompt.MetadataSystem,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt.Metadata(truncate(transcript, metadataHead))}},
		Temperature: a.cfg.MetadataTemperature,
		MaxTokens:   a.cfg.MaxMetadataTokens,
	})
	if err != nil {
		return model.DefaultMetadata(), fmt.Errorf("extract metadata: %w", err)
	}

	var meta model.MeetingMetadata
	if err := json.Unmarshal([]byte(extractJSON(content)), &meta); err != nil {
		return model.DefaultMetadata(), fmt.Errorf("parse metadata response: %w", err)
	}

	fillMetadataDefaults(&meta)
	return meta, nil
}

func fillMetadataDefaults(meta *model.MeetingMetadata) {
	fallback := model.DefaultMetadata()
	if meta.Title == "" {
		meta.Title = fallback.Title
	}
	if meta.Date == "" {
		meta.Date = fallback.Date
	}
	if len(meta.Participants) == 0 {
		meta.Participants = fallback.Participants
	}
	if meta.Duration == "" {
		meta.Duration = fallback.Duration
	}
	if meta.SuggestedEmailType == "" {
		meta.SuggestedEmailType = fallback.SuggestedEmailType
	}
	if meta.MeetingType == "" {
		meta.MeetingType = fallback.MeetingType
	}
}
