package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score one resume against a job description",
	Long:  "Extracts the candidate profile, keyword gaps, and semantic similarity for a single resume and prints the match score with suggestions.",
	RunE:  runAnalyze,
}

var (
	analyzeJob    string
	analyzeResume string
	analyzeJSON   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description file (required unless set in config)")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file: .pdf, .docx, .html, or text (required)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis state as JSON")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}

	jobText, err := readText(cfg.Job)
	if err != nil {
		return err
	}
	resumeText, err := readText(analyzeResume)
	if err != nil {
		return err
	}
	if err := ingestion.CheckResumeText(resumeText, cfg.MinResumeChars); err != nil {
		return fmt.Errorf("cannot analyze %s: %w", analyzeResume, err)
	}

	logger := newLogger(os.Stderr, cfg.Verbose)
	analyzer, closeClient, err := buildAnalyzer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeClient()

	state, err := analyzer.Analyze(ctx, resumeText, jobText)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", analyzeResume, err)
	}

	if analyzeJSON {
		return report.WriteStateJSON(os.Stdout, state)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(state.CandidateProfile)
	printer.PrintKeywordMatches(state.KeywordMatches)
	printer.PrintAnalysis(state)
	_, _ = fmt.Fprintf(os.Stdout, "\n%s\n", state.GeneralFeedback)
	return nil
}
