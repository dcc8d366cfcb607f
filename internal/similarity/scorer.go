// Package similarity scores how close a resume's text is to a job description,
// independent of exact skill-keyword overlap.
package similarity

import (
	"context"
	"math"
	"strings"
)

const (
	// maxNonIdentical keeps 1.0 reserved for identical normalized text
	maxNonIdentical = 0.9999
	scorePrecision  = 1e4
)

// Scorer computes a similarity in [0, 1] between normalized resume text and a job description.
// Implementations are shared by concurrent analyses and must not mutate state per call.
type Scorer interface {
	Score(ctx context.Context, resumeText, jobDescription string) (float64, error)
}

// finalize maps a raw cosine onto the score contract: 1.0 only for identical text,
// 0.0 when either side is empty, rounded to 4 decimals otherwise.
func finalize(resumeText, jobDescription string, raw float64) float64 {
	a := strings.Join(strings.Fields(resumeText), " ")
	b := strings.Join(strings.Fields(jobDescription), " ")
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	if math.IsNaN(raw) || raw <= 0 {
		return 0
	}
	if raw > maxNonIdentical {
		raw = maxNonIdentical
	}
	return math.Round(raw*scorePrecision) / scorePrecision
}
