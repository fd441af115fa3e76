package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/hoangvan1410/Minumate/internal/cache"
	"github.com/hoangvan1410/Minumate/internal/chunk"
	"github.com/hoangvan1410/Minumate/internal/llm"
	"github.com/hoangvan1410/Minumate/internal/model"
	"github.com/hoangvan1410/Minumate/internal/prompt"
	"github.com/hoangvan1410/Minumate/internal/worker"
)

// Analyzer is the only component that talks to the completion provider.
// Everything upstream and downstream of it is pure and deterministic.
type Analyzer struct {
	provider llm.Provider
	cfg      model.LLMConfig
	cache    cache.Cache
	limiter  *worker.Limiter
}

// NewAnalyzer creates an analyzer. cache and limiter may be nil to disable
// caching and throttling respectively.
func NewAnalyzer(provider llm.Provider, cfg model.LLMConfig, c cache.Cache, limiter *worker.Limiter) *Analyzer {
	return &Analyzer{
		provider: provider,
		cfg:      cfg,
		cache:    c,
		limiter:  limiter,
	}
}

// AnalyzeChunk analyzes one transcript chunk in its running context. The
// returned PartialAnalysis is always usable: a malformed provider response
// degrades to a free-text-only analysis instead of failing. A transport
// error after retries is returned to the caller, who decides whether to
// degrade that chunk or abort.
func (a *Analyzer) AnalyzeChunk(ctx context.Context, c chunk.Chunk, enr prompt.ChunkEnrichment) (model.PartialAnalysis, error) {
	chunkPrompt := prompt.Chunk(c, enr)

	key := cache.Key(a.cfg.Model, chunkPrompt)
	if a.cache != nil {
		if data, found := a.cache.Get(key); found {
			var pa model.PartialAnalysis
			if err := json.Unmarshal(data, &pa); err == nil {
				return pa, nil
			}
		}
	}

	content, err := a.complete(ctx, llm.CompletionRequest{
		System:      prompt.System,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: chunkPrompt}},
		Temperature: a.cfg.ChunkTemperature,
		MaxTokens:   a.cfg.MaxChunkTokens,
	})
	if err != nil {
		return model.PartialAnalysis{}, fmt.Errorf("analyze chunk: %w", err)
	}

	pa := parsePartial(content)

	if a.cache != nil {
		if data, err := json.Marshal(pa); err == nil {
			_ = a.cache.Set(key, data, 0)
		}
	}

	return pa, nil
}

// complete wraps the provider call with rate limiting and exponential
// backoff on transient failures.
func (a *Analyzer) complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx, a.provider.Name()); err != nil {
			return "", err
		}
	}

	var content string
	op := func() error {
		var err error
		content, err = a.provider.Complete(ctx, req)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return content, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
