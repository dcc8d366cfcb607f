// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Similarity backends
const (
	SimilarityTermVector = "tfidf"
	SimilarityEmbedding  = "embedding"
)

// APIKeyEnv is consulted when neither the flag nor the config file supplies a key
const APIKeyEnv = "GEMINI_API_KEY"

// Defaults applied by MergeWithDefaults
const (
	DefaultTokenBudget    = 500
	DefaultMinResumeChars = 50
	DefaultKeywordWeight  = 0.6
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Job     string   `json:"job,omitempty"`     // Path to job description file
	Resumes []string `json:"resumes,omitempty"` // Resume files or directories
	Lexicon string   `json:"lexicon,omitempty"` // Extra skill lexicon JSON

	// Outputs
	Output string `json:"output,omitempty"` // JSON report path
	CSV    string `json:"csv,omitempty"`    // Comparison table CSV path

	// Limits
	Workers        int `json:"workers,omitempty" validate:"gte=0,lte=64"`   // 0 selects NumCPU
	TokenBudget    int `json:"token_budget,omitempty" validate:"gte=0"`     // Tokens kept by normalization
	MinResumeChars int `json:"min_resume_chars,omitempty" validate:"gte=0"` // Shorter resumes are skipped

	// Behavior
	KeywordWeight *float64 `json:"keyword_weight,omitempty" validate:"omitempty,gte=0,lte=1"` // Semantic weight is 1 - keyword_weight
	Similarity    string   `json:"similarity,omitempty" validate:"omitempty,oneof=tfidf embedding"`
	UseNER        bool     `json:"use_ner,omitempty"` // Ask the LLM for person names before the line scan
	APIKey        string   `json:"api_key,omitempty"` // Gemini API key
	Verbose       bool     `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the configuration used when neither flags nor a config file set a value
func Defaults() Config {
	weight := DefaultKeywordWeight
	return Config{
		TokenBudget:    DefaultTokenBudget,
		MinResumeChars: DefaultMinResumeChars,
		KeywordWeight:  &weight,
		Similarity:     SimilarityTermVector,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("config error: %w", err)
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, describe(fe))
		}
		return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Lexicon != "" {
		if _, err := os.Stat(c.Lexicon); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.Lexicon)
		}
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("'%s' must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("'%s' must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("'%s' failed '%s' check", fe.Field(), fe.Tag())
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Lexicon == "" {
		result.Lexicon = defaults.Lexicon
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.CSV == "" {
		result.CSV = defaults.CSV
	}
	if result.Similarity == "" {
		result.Similarity = defaults.Similarity
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if len(result.Resumes) == 0 {
		result.Resumes = append([]string(nil), defaults.Resumes...)
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.TokenBudget == 0 {
		result.TokenBudget = defaults.TokenBudget
	}
	if result.MinResumeChars == 0 {
		result.MinResumeChars = defaults.MinResumeChars
	}

	// Pointer fields distinguish an explicit zero from unset
	if result.KeywordWeight == nil && defaults.KeywordWeight != nil {
		weight := *defaults.KeywordWeight
		result.KeywordWeight = &weight
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Weight returns the keyword weight, or DefaultKeywordWeight when unset
func (c *Config) Weight() float64 {
	if c.KeywordWeight == nil {
		return DefaultKeywordWeight
	}
	return *c.KeywordWeight
}

// ResolveAPIKey returns the configured API key, falling back to the GEMINI_API_KEY environment variable
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(APIKeyEnv)
}
