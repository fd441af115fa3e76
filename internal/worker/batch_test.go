package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hoangvan1410/Minumate/internal/model"
)

// stubAnalyzer records which files it saw and fails the ones listed in fail
type stubAnalyzer struct {
	fail map[string]bool
}

func (s *stubAnalyzer) AnalyzeFile(ctx context.Context, path string) (*model.Result, error) {
	if s.fail[path] {
		return nil, errors.New("analysis failed")
	}
	return &model.Result{ChunkCount: 1}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	analyzer := &stubAnalyzer{fail: map[string]bool{"b.txt": true}}
	bp := NewBatchProcessor(analyzer, 2)

	paths := make([]string, 0, 12)
	for i := 0; i < 10; i++ {
		paths = append(paths, fmt.Sprintf("meeting-%d.txt", i))
	}
	paths = append(paths, "a.txt", "b.txt")

	results := bp.ProcessPaths(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}

	seen := make(map[string]bool)
	failed := 0
	for _, r := range results {
		seen[r.Path] = true
		if r.Err != nil {
			failed++
			if r.Path != "b.txt" {
				t.Errorf("unexpected failure for %s: %v", r.Path, r.Err)
			}
		} else if r.Result == nil {
			t.Errorf("missing result for %s", r.Path)
		}
	}

	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	for _, p := range paths {
		if !seen[p] {
			t.Errorf("no result for %s", p)
		}
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	bp := NewBatchProcessor(&stubAnalyzer{}, 2)

	results := bp.ProcessPaths(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	listPath := filepath.Join(t.TempDir(), "transcripts.txt")
	content := "a.txt\n\n# weekly exports\nb.vtt\na.txt\n  c.html  \n"
	if err := os.WriteFile(listPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		t.Fatalf("ReadPathsFromFile: %v", err)
	}

	if want := []string{"a.txt", "b.vtt", "c.html"}; !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	if _, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected an error for a missing list file")
	}
}
