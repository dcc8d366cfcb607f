package pipeline

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

// MaxWorkers caps batch concurrency
const MaxWorkers = 64

// ProcessedAtLayout formats AnalysisResult.ProcessedAt
const ProcessedAtLayout = "2006-01-02 15:04"

// SkipReasonDuplicate marks a document whose filename already appeared in the batch
const SkipReasonDuplicate = "duplicate"

// Progress statuses
const (
	StatusAnalyzing = "analyzing"
	StatusDone      = "done"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
)

// ProgressEvent represents a progress update during a batch run
type ProgressEvent struct {
	Index    int    `json:"index"` // 1-based position in the submitted documents
	Total    int    `json:"total"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

// ProgressCallback is called when batch progress occurs. Calls are serialized.
type ProgressCallback func(event ProgressEvent)

// Document is a decoded resume
type Document struct {
	Filename string
	Text     string
}

// BatchReport collects the outcome of every submitted document
type BatchReport struct {
	BatchID   string                  `json:"batch_id"`
	StartedAt time.Time               `json:"started_at"`
	Results   []types.AnalysisResult  `json:"results"`
	Failures  []types.AnalysisFailure `json:"failures"`
	Skipped   []types.SkippedDocument `json:"skipped"`
	Summary   ranking.Summary         `json:"summary"`
}

// BatchOptions configures a BatchRunner. Zero values select the defaults.
type BatchOptions struct {
	// Workers defaults to runtime.NumCPU() and is capped at MaxWorkers
	Workers        int
	MinResumeChars int
	Logger         *slog.Logger
	OnProgress     ProgressCallback
}

// BatchRunner analyzes many resumes against one job description
type BatchRunner struct {
	analyzer   *Analyzer
	workers    int
	minChars   int
	logger     *slog.Logger
	onProgress ProgressCallback
	progressMu sync.Mutex
	now        func() time.Time
}

// NewBatchRunner creates a BatchRunner around analyzer
func NewBatchRunner(analyzer *Analyzer, opts BatchOptions) *BatchRunner {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &BatchRunner{
		analyzer:   analyzer,
		workers:    workers,
		minChars:   opts.MinResumeChars,
		logger:     logger,
		onProgress: opts.OnProgress,
		now:        time.Now,
	}
}

// Workers returns the effective concurrency
func (r *BatchRunner) Workers() int {
	return r.workers
}

type pendingDocument struct {
	index int
	doc   Document
}

type outcome struct {
	result *types.AnalysisResult
	err    error
}

// Run analyzes docs concurrently. A failing document is reported in Failures and never
// stops its siblings; cancelling ctx reports the documents not yet analyzed as failures.
// Results are sorted by match percentage, highest first.
func (r *BatchRunner) Run(ctx context.Context, jobDescription string, docs []Document) *BatchReport {
	report := &BatchReport{
		BatchID:   uuid.NewString(),
		StartedAt: r.now(),
		Results:   []types.AnalysisResult{},
		Failures:  []types.AnalysisFailure{},
		Skipped:   []types.SkippedDocument{},
	}
	total := len(docs)

	seen := make(map[string]bool, len(docs))
	var pending []pendingDocument
	for i, doc := range docs {
		reason := ""
		if seen[doc.Filename] {
			reason = SkipReasonDuplicate
		} else if err := ingestion.CheckResumeText(doc.Text, r.minChars); err != nil {
			reason = err.Error()
		}

		if reason != "" {
			r.logger.Info("skipping resume", "resume", doc.Filename, "reason", reason)
			report.Skipped = append(report.Skipped, types.SkippedDocument{Filename: doc.Filename, Reason: reason})
			r.emit(ProgressEvent{Index: i + 1, Total: total, Filename: doc.Filename, Status: StatusSkipped, Message: reason})
			continue
		}
		// only a document that goes on to analysis claims its filename
		seen[doc.Filename] = true
		pending = append(pending, pendingDocument{index: i, doc: doc})
	}

	outcomes := make([]outcome, len(pending))
	g := new(errgroup.Group)
	g.SetLimit(r.workers)

	for i, p := range pending {
		if err := ctx.Err(); err != nil {
			outcomes[i].err = err
			continue
		}

		i, p := i, p // per-iteration copies; module targets go 1.21 loop semantics
		g.Go(func() error {
			outcomes[i] = r.analyze(ctx, jobDescription, p, total)
			return nil
		})
	}
	_ = g.Wait()

	for i, p := range pending {
		o := outcomes[i]
		if o.err != nil {
			report.Failures = append(report.Failures, types.AnalysisFailure{
				Filename: p.doc.Filename,
				Error:    o.err.Error(),
			})
			continue
		}
		report.Results = append(report.Results, *o.result)
	}

	ranking.SortByMatch(report.Results)
	report.Summary = ranking.Summarize(report.Results)
	return report
}

func (r *BatchRunner) analyze(ctx context.Context, jobDescription string, p pendingDocument, total int) outcome {
	event := ProgressEvent{Index: p.index + 1, Total: total, Filename: p.doc.Filename}

	if err := ctx.Err(); err != nil {
		return outcome{err: err}
	}

	event.Status = StatusAnalyzing
	r.emit(event)

	state, err := r.analyzer.Analyze(ctx, p.doc.Text, jobDescription)
	if err != nil {
		r.logger.Warn("resume analysis failed", "resume", p.doc.Filename, "error", err)
		event.Status = StatusFailed
		event.Message = err.Error()
		r.emit(event)
		return outcome{err: err}
	}

	event.Status = StatusDone
	r.emit(event)
	return outcome{result: &types.AnalysisResult{
		Filename:    p.doc.Filename,
		ProcessedAt: r.now().Format(ProcessedAtLayout),
		State:       state,
	}}
}

func (r *BatchRunner) emit(event ProgressEvent) {
	if r.onProgress == nil {
		return
	}
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.onProgress(event)
}
