package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hoangvan1410/Minumate/internal/ingest"
	"github.com/hoangvan1410/Minumate/internal/model"
	"github.com/hoangvan1410/Minumate/internal/pipeline"
)

var (
	outJSON      string
	outMD        string
	timeout      time.Duration
	maxChunkSize int
	noCache      bool
	noFooter     bool
	llmProvider  string
	llmModel     string
	meetingTitle string
	meetingDate  string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <transcript>",
	Short: "Analyze a single meeting transcript",
	Long: `Analyze splits a meeting transcript into semantic chunks, analyzes each
chunk in sequence (carrying the previous chunk's summary as context), and
merges the results into one structured meeting summary.

Accepted inputs: plain text (.txt), WebVTT (.vtt), HTML export (.html).

Example:
  minumate analyze standup.txt
  minumate analyze meeting.vtt --json summary.json --md summary.md
  minumate analyze all-hands.txt --provider anthropic --model claude-3-5-haiku-latest`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "summary.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Analysis flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "overall analysis timeout (long transcripts make many provider calls)")
	analyzeCmd.Flags().IntVar(&maxChunkSize, "max-chunk-size", 6000, "chunk size threshold in characters")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the chunk analysis cache")
	analyzeCmd.Flags().StringVar(&meetingTitle, "title", "", "meeting title (inferred from the transcript if omitted)")
	analyzeCmd.Flags().StringVar(&meetingDate, "date", "", "meeting date (inferred from the transcript if omitted)")

	// Provider flags
	analyzeCmd.Flags().StringVar(&llmProvider, "provider", "openai", "completion provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "model", "gpt-4o-mini", "model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Provider:  %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		fmt.Fprintf(os.Stderr, "Chunking:  %d chars max\n\n", cfg.Chunking.MaxChunkSize)
	}

	transcript, err := ingest.Load(path)
	if err != nil {
		return err
	}

	// Caller-supplied metadata wins; extraction only fills what is missing
	result, err := p.AnalyzeTranscript(ctx, model.MeetingData{
		Transcript: transcript,
		Title:      meetingTitle,
		Date:       meetingDate,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := p.RenderResult(result, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the effective configuration from defaults, config
// file, environment, and flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	cfg.Chunking.MaxChunkSize = maxChunkSize
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
