package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/report"
	"github.com/jonathan/resume-matcher/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank many resumes against one job description",
	Long: `Analyzes every resume concurrently, then prints the candidates ranked by match score with summary metrics.
Directories are scanned non-recursively for .pdf, .docx, .txt, .md, .html, and .htm files.
A resume that fails or is too short is reported individually and never stops the batch.`,
	RunE: runBatch,
}

var (
	batchJob     string
	batchResumes []string
	batchWorkers int
	batchOutput  string
	batchCSV     string
)

func init() {
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description file (required unless set in config)")
	batchCmd.Flags().StringSliceVarP(&batchResumes, "resumes", "r", nil, "Resume files or directories (required unless set in config)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent analyses (0 = number of CPUs, max 64)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to write the JSON batch report")
	batchCmd.Flags().StringVar(&batchCSV, "csv", "", "Path to write the comparison table as CSV")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("job") {
		cfg.Job = batchJob
	}
	if flags.Changed("resumes") {
		cfg.Resumes = batchResumes
	}
	if flags.Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if flags.Changed("out") {
		cfg.Output = batchOutput
	}
	if flags.Changed("csv") {
		cfg.CSV = batchCSV
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}
	if len(cfg.Resumes) == 0 {
		return fmt.Errorf("--resumes is required (via flag or config)")
	}

	jobText, err := readText(cfg.Job)
	if err != nil {
		return err
	}
	paths, err := expandResumePaths(cfg.Resumes)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no resume files found in %v", cfg.Resumes)
	}

	docs, decodeFailures := loadDocuments(paths)

	logger := newLogger(os.Stderr, cfg.Verbose)
	analyzer, closeClient, err := buildAnalyzer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeClient()

	runner := pipeline.NewBatchRunner(analyzer, pipeline.BatchOptions{
		Workers:        cfg.Workers,
		MinResumeChars: cfg.MinResumeChars,
		Logger:         logger,
		OnProgress:     progressPrinter(os.Stdout),
	})
	if cfg.Verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Analyzing %d resumes with %d workers\n", len(docs), runner.Workers())
	}

	rep := runner.Run(ctx, jobText, docs)
	rep.Failures = append(decodeFailures, rep.Failures...)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRankedCandidates(rep.Results)
	printer.PrintSummary(rep.Summary)
	printer.PrintProblems(rep.Failures, rep.Skipped)

	if cfg.Output != "" {
		if err := writeFile(cfg.Output, func(w io.Writer) error { return report.WriteJSON(w, rep) }); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote batch report to %s\n", cfg.Output)
	}
	if cfg.CSV != "" {
		rows := report.BuildRows(rep.Results)
		if err := writeFile(cfg.CSV, func(w io.Writer) error { return report.WriteCSV(w, rows) }); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote comparison table to %s\n", cfg.CSV)
	}

	if len(rep.Results) == 0 {
		return fmt.Errorf("no resumes were analyzed successfully")
	}
	return nil
}

// loadDocuments decodes every path. Files that cannot be decoded are reported as failures.
func loadDocuments(paths []string) ([]pipeline.Document, []types.AnalysisFailure) {
	docs := make([]pipeline.Document, 0, len(paths))
	failures := []types.AnalysisFailure{}
	for _, p := range paths {
		name := filepath.Base(p)
		text, err := readText(p)
		if err != nil {
			failures = append(failures, types.AnalysisFailure{Filename: name, Error: err.Error()})
			continue
		}
		docs = append(docs, pipeline.Document{Filename: name, Text: text})
	}
	return docs, failures
}

// progressPrinter reports each analysis start as a numbered step line
func progressPrinter(w io.Writer) pipeline.ProgressCallback {
	return func(e pipeline.ProgressEvent) {
		switch e.Status {
		case pipeline.StatusAnalyzing:
			_, _ = fmt.Fprintf(w, "Analyzing %d/%d: %s...\n", e.Index, e.Total, e.Filename)
		case pipeline.StatusFailed:
			_, _ = fmt.Fprintf(w, "Failed %d/%d: %s: %s\n", e.Index, e.Total, e.Filename, e.Message)
		case pipeline.StatusSkipped:
			_, _ = fmt.Fprintf(w, "Skipped %d/%d: %s: %s\n", e.Index, e.Total, e.Filename, e.Message)
		}
	}
}

// writeFile creates path (and its directory) and renders into it
func writeFile(path string, render func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
