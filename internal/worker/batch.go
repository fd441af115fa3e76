package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hoangvan1410/Minumate/internal/model"
)

// TranscriptAnalyzer analyzes one transcript file end to end
type TranscriptAnalyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.Result, error)
}

// AnalyzeJob is one transcript file to analyze
type AnalyzeJob struct {
	Path     string
	Analyzer TranscriptAnalyzer
}

// Execute runs the analysis for one file
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	return &AnalyzeResult{
		Path:   j.Path,
		Result: result,
		Err:    err,
	}
}

// AnalyzeResult is the outcome of analyzing one transcript file
type AnalyzeResult struct {
	Path   string
	Result *model.Result
	Err    error
}

// GetError returns the job's error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Err
}

// BatchProcessor analyzes multiple transcript files concurrently.
// Parallelism is across files only; each file's chunk sequence is
// processed in order.
type BatchProcessor struct {
	analyzer    TranscriptAnalyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer TranscriptAnalyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given transcript files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPoolWithQueue(b.concurrency, len(paths))
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{Path: path, Analyzer: b.analyzer})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}
	return analyzeResults
}

// ReadPathsFromFile reads transcript paths from a list file, one per line.
// Blank lines and #-comments are skipped; duplicates are dropped.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
