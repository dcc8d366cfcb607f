package ingestion

import "strings"

// DefaultMinResumeChars is the shortest trimmed resume accepted for analysis.
const DefaultMinResumeChars = 50

// CheckResumeText rejects resumes whose trimmed text is shorter than minChars.
// It runs before the pipeline; the pipeline itself never rejects input.
func CheckResumeText(text string, minChars int) error {
	if minChars <= 0 {
		minChars = DefaultMinResumeChars
	}
	length := len([]rune(strings.TrimSpace(text)))
	if length < minChars {
		return &InsufficientTextError{Length: length, Min: minChars}
	}
	return nil
}
