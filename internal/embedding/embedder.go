// Package embedding adapts external embedding providers to the engine's
// narrow embed(text) -> vector contract.
package embedding

import (
	"context"
	"time"
)

// Embedder maps texts to fixed-dimension vectors. Implementations must be
// deterministic for identical input within a run and must return a typed
// *EmbeddingError on failure, never silent zero vectors.
type Embedder interface {
	// EmbedTexts returns one vector per input text, in input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)
	// Close releases any resources held by the embedder.
	Close() error
}

// EmbedWithRetry invokes the embedder under a per-call timeout and retries
// once on failure. The embedding call is the pipeline's only suspension
// point; a second failure is surfaced to the caller as-is.
func EmbedWithRetry(ctx context.Context, embedder Embedder, texts []string, timeout time.Duration) ([][]float64, error) {
	vectors, err := embedOnce(ctx, embedder, texts, timeout)
	if err == nil {
		return vectors, nil
	}
	// Don't retry when the parent context is already done.
	if ctx.Err() != nil {
		return nil, err
	}
	return embedOnce(ctx, embedder, texts, timeout)
}

func embedOnce(ctx context.Context, embedder Embedder, texts []string, timeout time.Duration) ([][]float64, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return embedder.EmbedTexts(callCtx, texts)
}
