package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/skills"
)

// resolveConfig merges the config file, explicitly set flags, and defaults, in that order of precedence
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.APIKey = rootAPIKey
	}
	if flags.Changed("similarity") {
		cfg.Similarity = rootSimilarity
	}
	if flags.Changed("use-ner") {
		cfg.UseNER = rootUseNER
	}
	if flags.Changed("lexicon") {
		cfg.Lexicon = rootLexicon
	}
	if flags.Changed("keyword-weight") {
		weight := rootKeywordWeight
		cfg.KeywordWeight = &weight
	}
	if flags.Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the machine log written to w: Debug with verbose, Info otherwise
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildAnalyzer wires the analyzer's collaborators from cfg. The returned closer releases the LLM client, if any.
func buildAnalyzer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*pipeline.Analyzer, func(), error) {
	noop := func() {}

	lexicon, err := skills.DefaultLexicon()
	if cfg.Lexicon != "" {
		lexicon, err = skills.LoadLexicon(cfg.Lexicon)
	}
	if err != nil {
		return nil, noop, fmt.Errorf("failed to load skill lexicon: %w", err)
	}

	weights, err := ranking.NewWeights(cfg.Weight())
	if err != nil {
		return nil, noop, err
	}

	needsLLM := cfg.UseNER || cfg.Similarity == config.SimilarityEmbedding
	var client llm.Client
	closer := noop
	if needsLLM {
		apiKey := cfg.ResolveAPIKey()
		if apiKey == "" {
			return nil, noop, fmt.Errorf("%s environment variable or --api-key flag is required for --use-ner and --similarity=embedding", config.APIKeyEnv)
		}
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create LLM client: %w", err)
		}
		closer = func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close LLM client", "error", err)
			}
		}
	}

	var spanner extraction.NameSpanner
	if cfg.UseNER {
		s, err := extraction.NewLLMNameSpanner(client)
		if err != nil {
			closer()
			return nil, noop, err
		}
		spanner = s
	}

	var scorer similarity.Scorer = similarity.NewTermVectorScorer()
	if cfg.Similarity == config.SimilarityEmbedding {
		s, err := similarity.NewEmbeddingScorer(client)
		if err != nil {
			closer()
			return nil, noop, err
		}
		scorer = s
	}

	analyzer, err := pipeline.NewAnalyzer(pipeline.Options{
		Extractor:   extraction.NewExtractor(spanner, logger),
		Lexicon:     lexicon,
		Scorer:      scorer,
		Weights:     weights,
		TokenBudget: cfg.TokenBudget,
		Logger:      logger,
	})
	if err != nil {
		closer()
		return nil, noop, err
	}
	return analyzer, closer, nil
}

// readText decodes a job description or resume file to plain text
func readText(path string) (string, error) {
	text, err := ingestion.DecodeFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return text, nil
}

// expandResumePaths replaces each directory with its supported files (non-recursive, sorted).
// Plain file paths are kept as given.
func expandResumePaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to list directory %s: %w", p, err)
		}
		var found []string
		for _, e := range entries {
			if e.IsDir() || !ingestion.IsSupported(e.Name()) {
				continue
			}
			found = append(found, filepath.Join(p, e.Name()))
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}
