package extraction

import (
	"context"
	"io"
	"log/slog"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Extractor builds candidate profiles. The zero value is not usable; call NewExtractor.
// An Extractor is safe for concurrent use when its NameSpanner is.
type Extractor struct {
	spanner NameSpanner
	logger  *slog.Logger
}

// NewExtractor creates an Extractor. spanner may be nil, which disables the entity-recognition layer.
func NewExtractor(spanner NameSpanner, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{spanner: spanner, logger: logger}
}

// Profile runs all four extractions over the raw resume text
func (e *Extractor) Profile(ctx context.Context, text string) types.CandidateProfile {
	return types.CandidateProfile{
		Name:            e.Name(ctx, text),
		YearsExperience: ExtractYearsOfExperience(text),
		CurrentPosition: ExtractCurrentPosition(text),
		Education:       ExtractEducation(text),
	}
}
