// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Sentinels returned when an extractor finds no signal. They are valid outputs, not errors.
const (
	NameNotFound          = "Candidate Name Not Found"
	PositionNotSpecified  = "Position Not Specified"
	EducationNotSpecified = "Education Not Specified"
)

// AnalysisState is the per-resume record threaded through the analysis pipeline.
// Each field below the inputs is written by exactly one stage.
type AnalysisState struct {
	// Inputs
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`

	// Stage outputs
	CandidateProfile   CandidateProfile `json:"candidate_profile"`   // entity extractor
	KeywordMatches     KeywordMatches   `json:"keyword_matches"`     // keyword gap analyzer
	SemanticSimilarity float64          `json:"semantic_similarity"` // similarity scorer, 0.0-1.0
	MatchPercentage    int              `json:"match_percentage"`    // score aggregator, 0-100
	SuggestedChanges   []string         `json:"suggested_changes"`   // suggestion generator, at most 10
	GeneralFeedback    string           `json:"general_feedback"`    // suggestion generator
}

// CandidateProfile holds the structured facts extracted from resume text
type CandidateProfile struct {
	Name            string   `json:"name"`
	YearsExperience int      `json:"years_experience"`
	CurrentPosition string   `json:"current_position"`
	Education       []string `json:"education"`
}

// KeywordMatches partitions the job description's skill vocabulary by presence in the resume.
// Both slices follow the job description's first-occurrence order.
type KeywordMatches struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// Coverage returns |matched| / (|matched| + |missing|), or 0 when the vocabulary is empty.
func (k KeywordMatches) Coverage() float64 {
	total := len(k.MatchedSkills) + len(k.MissingSkills)
	if total == 0 {
		return 0
	}
	return float64(len(k.MatchedSkills)) / float64(total)
}

// HasSentinels reports whether any profile field fell back to its "not found" placeholder.
func (p CandidateProfile) HasSentinels() bool {
	if p.Name == NameNotFound || p.CurrentPosition == PositionNotSpecified {
		return true
	}
	return len(p.Education) == 1 && p.Education[0] == EducationNotSpecified
}
