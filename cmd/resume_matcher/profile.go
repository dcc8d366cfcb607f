package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Extract the candidate profile from a resume",
	Long:  "Runs only the entity extractor: name, years of experience, current position, and education.",
	RunE:  runProfile,
}

var (
	profileResume string
	profileJSON   bool
)

func init() {
	profileCmd.Flags().StringVarP(&profileResume, "resume", "r", "", "Path to resume file (required)")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "Print the profile as JSON")

	if err := profileCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	resumeText, err := readText(profileResume)
	if err != nil {
		return err
	}

	analyzer, closeClient, err := buildAnalyzer(ctx, cfg, newLogger(os.Stderr, cfg.Verbose))
	if err != nil {
		return err
	}
	defer closeClient()

	profile := analyzer.Profile(ctx, resumeText)

	if profileJSON {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintProfile(profile)
	return nil
}
