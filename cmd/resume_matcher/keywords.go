package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

// keywordsOutput is the --json shape of the keywords command
type keywordsOutput struct {
	Vocabulary []string `json:"vocabulary"`
	types.KeywordMatches
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List matched and missing skills",
	Long:  "Runs only the keyword gap analyzer: the job description's known skills, split into those the resume mentions and those it lacks.",
	RunE:  runKeywords,
}

var (
	keywordsJob    string
	keywordsResume string
	keywordsJSON   bool
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsJob, "job", "j", "", "Path to job description file (required unless set in config)")
	keywordsCmd.Flags().StringVarP(&keywordsResume, "resume", "r", "", "Path to resume file (required)")
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "Print the keyword matches as JSON")

	if err := keywordsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = keywordsJob
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}

	jobText, err := readText(cfg.Job)
	if err != nil {
		return err
	}
	resumeText, err := readText(keywordsResume)
	if err != nil {
		return err
	}

	// Keyword analysis is local; the LLM collaborators are never used here.
	cfg.UseNER = false
	cfg.Similarity = ""
	analyzer, closeClient, err := buildAnalyzer(context.Background(), cfg, newLogger(os.Stderr, cfg.Verbose))
	if err != nil {
		return err
	}
	defer closeClient()

	vocabulary := analyzer.Vocabulary(jobText)
	matches := analyzer.Keywords(resumeText, jobText)

	if keywordsJSON {
		if vocabulary == nil {
			vocabulary = []string{}
		}
		data, err := json.MarshalIndent(keywordsOutput{Vocabulary: vocabulary, KeywordMatches: matches}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal keyword matches: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintVocabulary(vocabulary)
	printer.PrintKeywordMatches(matches)
	return nil
}
