package ingestion

import "fmt"

// InsufficientTextError is returned when a resume has too little text to analyze
type InsufficientTextError struct {
	Length int
	Min    int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("insufficient text content: %d characters (minimum %d)", e.Length, e.Min)
}

// DecodeError represents a failure to extract text from a document
type DecodeError struct {
	Filename string
	Format   string
	Cause    error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode %s as %s: %v", e.Filename, e.Format, e.Cause)
	}
	return fmt.Sprintf("failed to decode %s as %s", e.Filename, e.Format)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
