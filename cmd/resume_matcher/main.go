// Package main implements the resume_matcher CLI, which scores resumes against a job description.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume to job description matcher",
	Long: `Resume Matcher extracts a candidate profile from each resume, compares its skills and
wording with a job description, and produces a 0-100 match score with improvement suggestions.

Configuration can be loaded from a JSON file using --config. Command-line flags override config file values.`,
	SilenceUsage: true,
}

var (
	rootConfigPath    string
	rootAPIKey        string
	rootSimilarity    string
	rootUseNER        bool
	rootLexicon       string
	rootKeywordWeight float64
	rootVerbose       bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	flags.StringVar(&rootAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	flags.StringVar(&rootSimilarity, "similarity", "", "Similarity backend: tfidf (local, default) or embedding (Gemini)")
	flags.BoolVar(&rootUseNER, "use-ner", false, "Ask Gemini for person names before scanning resume lines")
	flags.StringVar(&rootLexicon, "lexicon", "", "Path to an extra skill lexicon JSON file")
	flags.Float64Var(&rootKeywordWeight, "keyword-weight", 0.6, "Weight of keyword coverage in the match score (0-1)")
	flags.BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
