package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_UnlimitedWhenNonPositive(t *testing.T) {
	l := NewLimiter(0, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 100; i++ {
		if err := l.Wait(ctx, "openai"); err != nil {
			t.Fatalf("Wait %d: %v", i, err)
		}
	}
}

func TestLimiter_AllowThrottles(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("openai") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("openai") {
		t.Fatal("second immediate request should be throttled")
	}
}

func TestLimiter_PerProviderIsolation(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("openai") {
		t.Fatal("openai should be allowed")
	}
	// Exhausting openai's budget must not affect ollama
	if !l.Allow("ollama") {
		t.Fatal("ollama should have its own budget")
	}
}

func TestLimiter_SetProviderRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetProviderRate("ollama", 100, 10)

	for i := 0; i < 10; i++ {
		if !l.Allow("ollama") {
			t.Fatalf("request %d should fit the raised burst", i)
		}
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.01, 1)

	// Drain the single token
	if !l.Allow("openai") {
		t.Fatal("first request should be allowed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "openai"); err == nil {
		t.Fatal("Wait should fail when the context expires before a token is available")
	}
}
