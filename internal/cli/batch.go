package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hoangvan1410/Minumate/internal/pipeline"
	"github.com/hoangvan1410/Minumate/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// Transcript extensions picked up when batch is given a directory
var transcriptExtensions = map[string]bool{
	".txt": true, ".vtt": true, ".html": true, ".htm": true,
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-list>",
	Short: "Analyze multiple transcripts in parallel",
	Long: `Batch analyzes many transcripts concurrently:
- Given a directory, every .txt/.vtt/.html file in it is analyzed
- Given a list file, each line names one transcript path
- Transcripts run in parallel; chunks within one transcript stay sequential
- A JSON and Markdown report is written per transcript

Example:
  minumate batch ./transcripts
  minumate batch transcripts.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of transcripts analyzed in parallel")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./minumate-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")

	// Inherit analysis flags from the analyze command
	batchCmd.Flags().IntVar(&maxChunkSize, "max-chunk-size", 6000, "chunk size threshold in characters")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the chunk analysis cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().StringVar(&llmProvider, "provider", "openai", "completion provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "model", "gpt-4o-mini", "model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	paths, err := collectPaths(input)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no transcripts found in %s", input)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = concurrency

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Analyzing %d transcripts with %d workers\n", len(paths), concurrency)

	processor := worker.NewBatchProcessor(p, concurrency)
	results := processor.ProcessPaths(ctx, paths)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Err)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path))
		jsonPath := filepath.Join(outputDir, base+".json")
		mdPath := filepath.Join(outputDir, base+".md")
		if err := p.RenderResult(res.Result, jsonPath, mdPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s\n", res.Path)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d transcripts failed", failed, len(results))
	}
	return nil
}

// collectPaths resolves the batch input to transcript file paths
func collectPaths(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if !info.IsDir() {
		return worker.ReadPathsFromFile(input)
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if transcriptExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(input, entry.Name()))
		}
	}
	return paths, nil
}
