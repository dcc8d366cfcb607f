// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AnalysisResult pairs a finished AnalysisState with the document it came from
type AnalysisResult struct {
	Filename    string         `json:"resume_filename"`
	ProcessedAt string         `json:"processed_date"` // "2006-01-02 15:04"
	State       *AnalysisState `json:"analysis"`
}

// AnalysisFailure reports a single resume that could not be analyzed
type AnalysisFailure struct {
	Filename string `json:"resume_filename"`
	Error    string `json:"error"`
}

// SkippedDocument reports a resume rejected before the pipeline was invoked
type SkippedDocument struct {
	Filename string `json:"resume_filename"`
	Reason   string `json:"reason"`
}
