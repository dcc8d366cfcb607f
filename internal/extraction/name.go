package extraction

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// nameScanLines bounds the line-scan layer to the resume header
	nameScanLines = 10
	// nerPrefixChars bounds the text handed to the entity recognizer
	nerPrefixChars = 2000
	maxNameLength  = 50
)

// nameExcludedWords are document-metadata words that never appear in a person's name
var nameExcludedWords = wordSet(
	"resume", "cv", "curriculum", "vitae", "linkedin", "email", "phone", "mobile",
	"objective", "summary", "experience", "education", "skills", "profile",
	"contact", "address", "references", "projects",
	// function words keep lower-case prose lines out
	"the", "and", "for", "with", "from", "to", "of", "in", "on", "at", "by",
	"my", "your", "our", "is", "am", "are", "seeking", "looking",
)

// Name returns the candidate's name, or types.NameNotFound.
// When the extractor has a NameSpanner, its spans are tried before the line scan;
// a spanner failure only drops that layer.
func (e *Extractor) Name(ctx context.Context, text string) string {
	lines := ingestion.Lines(text)

	name, ok := firstMatch(lines, e.nerStrategy(ctx, text), scanNameLines)
	if !ok {
		return types.NameNotFound
	}
	return name
}

// scanName runs the line-scan layer only
func scanName(text string) string {
	if name, ok := scanNameLines(ingestion.Lines(text)); ok {
		return name
	}
	return types.NameNotFound
}

func (e *Extractor) nerStrategy(ctx context.Context, text string) strategy {
	return func([]string) (string, bool) {
		if e == nil || e.spanner == nil {
			return "", false
		}

		spans, err := e.spanner.NameSpans(ctx, namePrefix(text))
		if err != nil {
			e.logger.Debug("name recognizer unavailable, using line scan", "error", err)
			return "", false
		}

		for _, span := range spans {
			span = strings.Join(strings.Fields(span), " ")
			if isPlausibleName(span) {
				return span, true
			}
		}
		return "", false
	}
}

func scanNameLines(lines []string) (string, bool) {
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if isPlausibleName(line) {
			return line, true
		}
	}
	return "", false
}

// isPlausibleName accepts 2 to 4 words made of letters (plus inner '-', '.', '\'')
// that contain no metadata or function word. Case is not checked.
func isPlausibleName(candidate string) bool {
	if candidate == "" || len(candidate) >= maxNameLength || strings.Contains(candidate, "@") {
		return false
	}

	words := strings.Fields(candidate)
	if len(words) < 2 || len(words) > 4 {
		return false
	}

	for _, word := range words {
		if utf8.RuneCountInString(word) < 2 || !isNameWord(word) {
			return false
		}
		if nameExcludedWords[strings.ToLower(strings.Trim(word, ".-'"))] {
			return false
		}
	}
	return true
}

func isNameWord(word string) bool {
	first, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsLetter(first) {
		return false
	}
	for _, r := range word {
		if unicode.IsLetter(r) || r == '-' || r == '.' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

// namePrefix returns the first nerPrefixChars runes of text with punctuation replaced by spaces
func namePrefix(text string) string {
	var sb strings.Builder
	count := 0
	for _, r := range text {
		if count == nerPrefixChars {
			break
		}
		count++
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
