// Package pipeline runs the resume analysis stages for one resume (Analyzer)
// or for a batch of resumes against one job description (BatchRunner).
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/pipeline/steps"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Options configures an Analyzer. Zero values select the defaults.
type Options struct {
	Extractor *extraction.Extractor
	Lexicon   *skills.Lexicon
	Scorer    similarity.Scorer
	// Weights defaults to ranking.DefaultWeights when both shares are zero
	Weights ranking.Weights
	// TokenBudget defaults to ingestion.DefaultTokenBudget; negative keeps every token
	TokenBudget int
	Logger      *slog.Logger
}

// Analyzer runs the analysis stages over one (resume, job description) pair.
// It holds only read-only collaborators and is safe for concurrent use.
type Analyzer struct {
	extractor   *extraction.Extractor
	keywords    *skills.Analyzer
	scorer      similarity.Scorer
	weights     ranking.Weights
	tokenBudget int
	logger      *slog.Logger
}

// NewAnalyzer creates an Analyzer after checking that the stage registry is consistent
func NewAnalyzer(opts Options) (*Analyzer, error) {
	if err := steps.ValidateRegistry(steps.StepRegistry, steps.DefaultOrder); err != nil {
		return nil, fmt.Errorf("invalid stage registry: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	lexicon := opts.Lexicon
	if lexicon == nil {
		var err error
		lexicon, err = skills.DefaultLexicon()
		if err != nil {
			return nil, err
		}
	}

	extractor := opts.Extractor
	if extractor == nil {
		extractor = extraction.NewExtractor(nil, logger)
	}

	scorer := opts.Scorer
	if scorer == nil {
		scorer = similarity.NewTermVectorScorer()
	}

	weights := opts.Weights
	if weights.Keyword == 0 && weights.Semantic == 0 {
		weights = ranking.DefaultWeights()
	}

	budget := opts.TokenBudget
	if budget == 0 {
		budget = ingestion.DefaultTokenBudget
	}

	return &Analyzer{
		extractor:   extractor,
		keywords:    skills.NewAnalyzer(lexicon),
		scorer:      scorer,
		weights:     weights,
		tokenBudget: budget,
		logger:      logger,
	}, nil
}

// stageTracker records completed stages of one invocation
type stageTracker struct {
	mu        sync.Mutex
	completed map[string]bool
}

func newStageTracker() *stageTracker {
	return &stageTracker{completed: make(map[string]bool)}
}

func (t *stageTracker) start(stage string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return steps.ValidateDependencies(stage, t.completed)
}

func (t *stageTracker) finish(stage string) {
	t.mu.Lock()
	t.completed[stage] = true
	t.mu.Unlock()
}

// Analyze evaluates one resume against a job description and returns a fresh state.
// Short or empty text is not rejected here; callers apply ingestion.CheckResumeText.
// The only failure is a stage fault (*StageError) or cancellation.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (*types.AnalysisState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracker := newStageTracker()
	state := &types.AnalysisState{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	}

	// Stage 1: normalize
	if err := tracker.start(steps.StageNormalize); err != nil {
		return nil, err
	}
	normalizedResume := ingestion.NormalizeWithBudget(resumeText, a.tokenBudget)
	normalizedJob := ingestion.NormalizeWithBudget(jobDescription, a.tokenBudget)
	tracker.finish(steps.StageNormalize)

	// Stages 2-4 are independent and run in parallel; each writes only its own output
	var (
		profile  types.CandidateProfile
		matches  types.KeywordMatches
		semantic float64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := tracker.start(steps.StageExtractProfile); err != nil {
			return err
		}
		profile = a.extractor.Profile(gCtx, resumeText)
		tracker.finish(steps.StageExtractProfile)
		return nil
	})

	g.Go(func() error {
		if err := tracker.start(steps.StageKeywordGap); err != nil {
			return err
		}
		matches = a.keywords.Analyze(normalizedResume, normalizedJob)
		tracker.finish(steps.StageKeywordGap)
		return nil
	})

	g.Go(func() error {
		if err := tracker.start(steps.StageSimilarity); err != nil {
			return err
		}
		score, err := a.scorer.Score(gCtx, normalizedResume, normalizedJob)
		if err != nil {
			return &StageError{Stage: steps.StageSimilarity, Cause: err}
		}
		semantic = score
		tracker.finish(steps.StageSimilarity)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	state.CandidateProfile = profile
	state.KeywordMatches = matches
	state.SemanticSimilarity = semantic

	// Stage 5: aggregate
	if err := tracker.start(steps.StageAggregate); err != nil {
		return nil, err
	}
	state.MatchPercentage = a.weights.Aggregate(state.KeywordMatches, state.SemanticSimilarity)
	tracker.finish(steps.StageAggregate)

	// Stage 6: suggest
	if err := tracker.start(steps.StageSuggest); err != nil {
		return nil, err
	}
	suggestions := ranking.Suggest(state.MatchPercentage, state.KeywordMatches.MissingSkills)
	state.SuggestedChanges = suggestions.SuggestedChanges
	state.GeneralFeedback = suggestions.GeneralFeedback
	tracker.finish(steps.StageSuggest)

	a.logger.Debug("analysis complete",
		"match_percentage", state.MatchPercentage,
		"semantic_similarity", state.SemanticSimilarity,
		"missing_skills", len(state.KeywordMatches.MissingSkills))

	return state, nil
}

// Profile runs only the entity extraction stage
func (a *Analyzer) Profile(ctx context.Context, resumeText string) types.CandidateProfile {
	return a.extractor.Profile(ctx, resumeText)
}

// Vocabulary returns the known skills of a job description in order of appearance
func (a *Analyzer) Vocabulary(jobDescription string) []string {
	return a.keywords.Vocabulary(ingestion.NormalizeWithBudget(jobDescription, a.tokenBudget))
}

// Keywords runs only the keyword gap stage over normalized text
func (a *Analyzer) Keywords(resumeText, jobDescription string) types.KeywordMatches {
	return a.keywords.Analyze(
		ingestion.NormalizeWithBudget(resumeText, a.tokenBudget),
		ingestion.NormalizeWithBudget(jobDescription, a.tokenBudget),
	)
}
