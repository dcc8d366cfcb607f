// Package ranking turns keyword coverage and semantic similarity into a match percentage,
// labels it, and orders analyzed resumes by it.
package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Default weights for scoring components
const (
	keywordCoverageWeight    = 0.6
	semanticSimilarityWeight = 0.4
)

// Weights blends keyword coverage and semantic similarity. They sum to 1.
type Weights struct {
	Keyword  float64
	Semantic float64
}

// DefaultWeights returns the 60/40 keyword/semantic blend
func DefaultWeights() Weights {
	return Weights{Keyword: keywordCoverageWeight, Semantic: semanticSimilarityWeight}
}

// NewWeights builds weights from the keyword share; the semantic share is the remainder
func NewWeights(keyword float64) (Weights, error) {
	if math.IsNaN(keyword) || keyword < 0 || keyword > 1 {
		return Weights{}, fmt.Errorf("keyword weight must be in [0, 1], got %v", keyword)
	}
	return Weights{Keyword: keyword, Semantic: 1 - keyword}, nil
}

// Aggregate scores with the default weights
func Aggregate(matches types.KeywordMatches, similarity float64) int {
	return DefaultWeights().Aggregate(matches, similarity)
}

// Aggregate returns round(100 * (Keyword*coverage + Semantic*similarity)) clamped to [0, 100].
// Coverage is 0 when the job description has no recognised skills.
func (w Weights) Aggregate(matches types.KeywordMatches, similarity float64) int {
	blended := w.Keyword*matches.Coverage() + w.Semantic*clampUnit(similarity)

	pct := int(math.Round(100 * blended))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
