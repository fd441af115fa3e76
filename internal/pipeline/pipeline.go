package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hoangvan1410/Minumate/internal/analyze"
	"github.com/hoangvan1410/Minumate/internal/cache"
	"github.com/hoangvan1410/Minumate/internal/chunk"
	"github.com/hoangvan1410/Minumate/internal/ingest"
	"github.com/hoangvan1410/Minumate/internal/llm"
	"github.com/hoangvan1410/Minumate/internal/merge"
	"github.com/hoangvan1410/Minumate/internal/model"
	"github.com/hoangvan1410/Minumate/internal/prompt"
	"github.com/hoangvan1410/Minumate/internal/worker"
)

// Pipeline orchestrates the complete transcript analysis:
// segment, chunk, analyze each chunk sequentially, merge, then run the
// whole-transcript structured extraction.
type Pipeline struct {
	cfg      *model.Config
	builder  *chunk.Builder
	analyzer *analyze.Analyzer
	renderer *Renderer
}

// Result contains the complete analysis of one transcript.
// It lives in model so that worker can reference it without importing
// this package, which would create an import cycle.
type Result = model.Result

// New creates a pipeline from configuration
func New(cfg *model.Config) (*Pipeline, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("initialize provider: %w", err)
	}

	var analysisCache cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if base, err := os.UserCacheDir(); err == nil {
				dir = filepath.Join(base, "minumate")
			}
		}
		if dir != "" {
			analysisCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		} else {
			analysisCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	limiter := worker.NewLimiter(cfg.LLM.RequestsPerSecond, 1)

	return &Pipeline{
		cfg:      cfg,
		builder:  chunk.NewBuilder(cfg.Chunking.MaxChunkSize),
		analyzer: analyze.NewAnalyzer(provider, cfg.LLM, analysisCache, limiter),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
	}, nil
}

// AnalyzeFile loads a transcript file and analyzes it
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*Result, error) {
	transcript, err := ingest.Load(path)
	if err != nil {
		return nil, err
	}
	return p.AnalyzeTranscript(ctx, model.MeetingData{Transcript: transcript})
}

// AnalyzeTranscript runs the full analysis. It is best-effort throughout:
// a failed chunk contributes an empty partial analysis, and a failed final
// extraction falls back to a summary derived from the merged chunk
// analyses. Only context cancellation aborts the run.
func (p *Pipeline) AnalyzeTranscript(ctx context.Context, meeting model.MeetingData) (*Result, error) {
	result := &Result{
		Meeting:    meeting,
		AnalyzedAt: time.Now().UTC(),
	}

	if strings.TrimSpace(meeting.Transcript) == "" {
		result.Merged = merge.Analyses(nil)
		return result, nil
	}

	// 1. Fill in missing metadata from the transcript's opening
	if meeting.Title == "" || len(meeting.Participants) == 0 {
		meta, err := p.analyzer.ExtractMetadata(ctx, meeting.Transcript)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			warn(result, "metadata extraction fell back to defaults: %v", err)
		}
		applyMetadata(&meeting, meta)
		result.Meeting = meeting
	}

	// 2. Chunk the transcript
	chunks := p.builder.Build(meeting.Transcript)
	result.ChunkCount = len(chunks)
	p.progress("Split transcript into %d chunks\n", len(chunks))

	// 3. Analyze chunks strictly in order; each prompt carries the previous
	// chunk's summary, so chunk i+1 cannot be built before chunk i returns.
	partials := make([]model.PartialAnalysis, 0, len(chunks))
	previousSummary := ""
	for i, c := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.progress("Analyzing chunk %d/%d...\n", i+1, len(chunks))

		pa, err := p.analyzer.AnalyzeChunk(ctx, c, prompt.ChunkEnrichment{
			PreviousSummary: previousSummary,
			MeetingTitle:    meeting.Title,
			MeetingType:     meeting.MeetingType,
			Participants:    meeting.Participants,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// A permanently failed chunk must not block the ones that
			// succeeded; it contributes an empty analysis instead.
			warn(result, "chunk %d/%d failed, continuing without it: %v", i+1, len(chunks), err)
			pa = model.PartialAnalysis{}
		}
		partials = append(partials, pa)
		previousSummary = pa.Summary
	}

	// 4. Merge the partial analyses
	result.Merged = merge.Analyses(partials)

	// 5. Whole-transcript structured extraction
	summary, err := p.analyzer.Summarize(ctx, meeting)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		warn(result, "structured extraction failed, deriving summary from chunk analyses: %v", err)
		summary = summaryFromMerged(result.Merged)
	}
	result.Summary = summary

	return result, nil
}

// RenderResult writes the requested outputs and prints the stdout summary
func (p *Pipeline) RenderResult(result *Result, jsonPath, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		p.progress("Wrote JSON: %s\n", jsonPath)
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		p.progress("Wrote Markdown: %s\n", mdPath)
	}

	p.renderer.RenderSummary(result)
	return nil
}

func (p *Pipeline) progress(format string, args ...any) {
	if p.cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func warn(r *Result, format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// applyMetadata fills only the fields the caller did not supply
func applyMetadata(meeting *model.MeetingData, meta model.MeetingMetadata) {
	if meeting.Title == "" {
		meeting.Title = meta.Title
	}
	if meeting.Date == "" {
		meeting.Date = meta.Date
	}
	if len(meeting.Participants) == 0 {
		for _, p := range meta.Participants {
			meeting.Participants = append(meeting.Participants, p.Name)
		}
	}
	if meeting.Duration == "" {
		meeting.Duration = meta.Duration
	}
	if meeting.MeetingType == "" {
		meeting.MeetingType = meta.MeetingType
	}
}

// summaryFromMerged builds a best-effort MeetingSummary when the structured
// extraction is unavailable. Partial information beats none.
func summaryFromMerged(merged model.MergedAnalysis) *model.MeetingSummary {
	items := make([]model.ActionItem, 0, len(merged.ActionItems))
	for _, task := range merged.ActionItems {
		items = append(items, model.ActionItem{
			Task:    task,
			DueDate: "TBD",
			Status:  "pending",
		})
	}

	return &model.MeetingSummary{
		ExecutiveSummary: merged.Summary,
		KeyDecisions:     merged.Decisions,
		ActionItems:      items,
		NextSteps:        []string{},
		RisksConcerns:    []string{},
		FollowUpMeetings: []string{},
	}
}
