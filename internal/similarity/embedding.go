package similarity

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/resume-matcher/internal/llm"
)

// EmbeddingScorer scores texts by the cosine of their model embeddings.
// The client is shared read-only across concurrent analyses.
type EmbeddingScorer struct {
	client llm.Client
}

// NewEmbeddingScorer creates an EmbeddingScorer backed by client
func NewEmbeddingScorer(client llm.Client) (*EmbeddingScorer, error) {
	if client == nil {
		return nil, fmt.Errorf("LLM client is required")
	}
	return &EmbeddingScorer{client: client}, nil
}

// Score embeds both texts and returns their cosine clamped to [0, 1].
// Backend failures are returned to the caller.
func (s *EmbeddingScorer) Score(ctx context.Context, resumeText, jobDescription string) (float64, error) {
	if resumeText == "" || jobDescription == "" {
		return 0, nil
	}

	resumeVec, err := s.client.Embed(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("failed to embed resume: %w", err)
	}
	jobVec, err := s.client.Embed(ctx, jobDescription)
	if err != nil {
		return 0, fmt.Errorf("failed to embed job description: %w", err)
	}

	raw, err := denseCosine(resumeVec, jobVec)
	if err != nil {
		return 0, err
	}
	return finalize(resumeText, jobDescription, raw), nil
}

func denseCosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimensions differ: %d vs %d", len(a), len(b))
	}

	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}
