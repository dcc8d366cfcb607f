// Package steps provides stage definitions and dependency validation
// for the resume analysis pipeline.
package steps

import (
	"fmt"
	"sort"
	"strings"
)

// Stage names
const (
	StageNormalize      = "normalize"
	StageExtractProfile = "extract_profile"
	StageKeywordGap     = "keyword_gap"
	StageSimilarity     = "semantic_similarity"
	StageAggregate      = "aggregate_score"
	StageSuggest        = "suggest"
)

// Stage categories
const (
	CategoryPreparation = "preparation"
	CategoryExtraction  = "extraction"
	CategoryScoring     = "scoring"
	CategoryFeedback    = "feedback"
)

// State fields read and written by stages. The normalized texts are intermediate
// values that never reach the final record.
const (
	FieldResumeText         = "resume_text"
	FieldJobDescription     = "job_description"
	FieldNormalizedResume   = "normalized_resume"
	FieldNormalizedJob      = "normalized_job"
	FieldCandidateProfile   = "candidate_profile"
	FieldKeywordMatches     = "keyword_matches"
	FieldSemanticSimilarity = "semantic_similarity"
	FieldMatchPercentage    = "match_percentage"
	FieldSuggestedChanges   = "suggested_changes"
	FieldGeneralFeedback    = "general_feedback"
)

// PipelineInputs are the fields set by the caller before any stage runs
var PipelineInputs = []string{FieldResumeText, FieldJobDescription}

// StepDefinition defines metadata for a pipeline stage
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
	Inputs       []string
	Outputs      []string
}

// StepRegistry holds all stage definitions
var StepRegistry = map[string]StepDefinition{
	StageNormalize: {
		Name:         StageNormalize,
		Category:     CategoryPreparation,
		Dependencies: []string{},
		Inputs:       []string{FieldResumeText, FieldJobDescription},
		Outputs:      []string{FieldNormalizedResume, FieldNormalizedJob},
	},
	StageExtractProfile: {
		Name:         StageExtractProfile,
		Category:     CategoryExtraction,
		Dependencies: []string{},
		Inputs:       []string{FieldResumeText},
		Outputs:      []string{FieldCandidateProfile},
	},
	StageKeywordGap: {
		Name:         StageKeywordGap,
		Category:     CategoryExtraction,
		Dependencies: []string{StageNormalize},
		Inputs:       []string{FieldNormalizedResume, FieldNormalizedJob},
		Outputs:      []string{FieldKeywordMatches},
	},
	StageSimilarity: {
		Name:         StageSimilarity,
		Category:     CategoryScoring,
		Dependencies: []string{StageNormalize},
		Inputs:       []string{FieldNormalizedResume, FieldNormalizedJob},
		Outputs:      []string{FieldSemanticSimilarity},
	},
	StageAggregate: {
		Name:         StageAggregate,
		Category:     CategoryScoring,
		Dependencies: []string{StageKeywordGap, StageSimilarity},
		Inputs:       []string{FieldKeywordMatches, FieldSemanticSimilarity},
		Outputs:      []string{FieldMatchPercentage},
	},
	StageSuggest: {
		Name:         StageSuggest,
		Category:     CategoryFeedback,
		Dependencies: []string{StageAggregate, StageKeywordGap},
		Inputs:       []string{FieldMatchPercentage, FieldKeywordMatches},
		Outputs:      []string{FieldSuggestedChanges, FieldGeneralFeedback},
	},
}

// DefaultOrder is a topological order of StepRegistry
var DefaultOrder = []string{
	StageNormalize,
	StageExtractProfile,
	StageKeywordGap,
	StageSimilarity,
	StageAggregate,
	StageSuggest,
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
	// Field and Writers are set when a state field has more than one writer
	Field   string
	Writers []string
}

func (e *DependencyError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field %s has multiple writers: %s", e.Field, strings.Join(e.Writers, ", "))
	}
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks if all required dependencies for a step are completed
func ValidateDependencies(stepName string, completed map[string]bool) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// ValidateRegistry checks a stage order against a registry: every state field has
// exactly one writer, and every stage reads only pipeline inputs or fields written
// by an earlier stage, after its dependencies.
func ValidateRegistry(registry map[string]StepDefinition, order []string) error {
	writers := make(map[string][]string)
	for _, name := range order {
		def, ok := registry[name]
		if !ok {
			return fmt.Errorf("unknown step: %s", name)
		}
		for _, field := range def.Outputs {
			writers[field] = append(writers[field], name)
		}
	}

	fields := make([]string, 0, len(writers))
	for field := range writers {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		w := writers[field]
		if isPipelineInput(field) {
			w = append([]string{"caller"}, w...)
		}
		if len(w) > 1 {
			return &DependencyError{Field: field, Writers: w}
		}
	}

	available := make(map[string]bool)
	for _, field := range PipelineInputs {
		available[field] = true
	}
	completed := make(map[string]bool)

	for _, name := range order {
		def := registry[name]

		var missing []string
		for _, dep := range def.Dependencies {
			if !completed[dep] {
				missing = append(missing, dep)
			}
		}
		for _, field := range def.Inputs {
			if !available[field] {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return &DependencyError{Step: name, MissingDependencies: missing}
		}

		for _, field := range def.Outputs {
			available[field] = true
		}
		completed[name] = true
	}

	return nil
}

func isPipelineInput(field string) bool {
	for _, in := range PipelineInputs {
		if in == field {
			return true
		}
	}
	return false
}
