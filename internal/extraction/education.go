package extraction

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	maxEducationEntries = 2
	// institutionLookahead counts the keyword line itself
	institutionLookahead = 3
)

var institutionWords = wordSet("university", "college", "institute", "school", "academy", "polytechnic")

var degreeWords = wordSet(
	"bachelor", "bachelors", "bsc", "btech", "ba", "bba", "bcom",
	"master", "masters", "msc", "mtech", "mba", "ma", "mca",
	"phd", "doctorate", "diploma",
)

// shortDegreeWords collide with ordinary words ("be", "me") and count only when
// written as an abbreviation: "BE", "B.E.", "M.S."
var shortDegreeWords = wordSet("be", "bs", "me", "ms")

// educationHintWords flag a line as education-related without naming a degree
var educationHintWords = wordSet("degree", "graduated", "graduate")

// headingWords make up section headings such as "EDUCATION" or "Academic Qualifications"
var headingWords = wordSet("education", "academic", "academics", "qualification", "qualifications", "background", "and", "details")

// officeProducts follow "MS" when it means Microsoft rather than a degree
var officeProducts = wordSet("excel", "office", "word", "powerpoint", "access", "project", "teams", "outlook", "sql", "visio")

// ExtractEducation returns up to two education entries in resume order, or
// the single-element types.EducationNotSpecified sequence.
func ExtractEducation(text string) []string {
	lines := ingestion.Lines(text)
	consumed := make([]bool, len(lines))
	seen := make(map[string]bool)
	var entries []string

	for i, line := range lines {
		if len(entries) == maxEducationEntries {
			break
		}
		if consumed[i] || !isEducationLine(line) || isEducationHeading(line) {
			continue
		}

		entry, ok := withInstitution(lines, i, consumed)
		if !ok {
			entry, ok = bareDegree(line)
		}
		if !ok || seen[entry] {
			continue
		}
		seen[entry] = true
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return []string{types.EducationNotSpecified}
	}
	return entries
}

// withInstitution merges the keyword line with the first institution line at or below it
func withInstitution(lines []string, i int, consumed []bool) (string, bool) {
	end := i + institutionLookahead
	if end > len(lines) {
		end = len(lines)
	}
	for j := i; j < end; j++ {
		if consumed[j] || !hasToken(lines[j], institutionWords) {
			continue
		}
		if j == i {
			return lines[i], true
		}
		consumed[j] = true
		return lines[i] + " | " + lines[j], true
	}
	return "", false
}

// bareDegree accepts a line that names a degree even without an institution
func bareDegree(line string) (string, bool) {
	if hasDegree(line) {
		return line, true
	}
	return "", false
}

func isEducationLine(line string) bool {
	return hasDegree(line) || hasToken(line, institutionWords) || hasToken(line, educationHintWords)
}

func isEducationHeading(line string) bool {
	toks := tokens(line)
	if len(toks) == 0 {
		return false
	}
	for _, tok := range toks {
		if !headingWords[tok] {
			return false
		}
	}
	return true
}

// hasDegree reports whether line names a degree. Dots are ignored, so "B.Tech" and "Ph.D." match.
func hasDegree(line string) bool {
	words := degreeTokens(line)
	for i, word := range words {
		lower := strings.ToLower(strings.ReplaceAll(word, ".", ""))
		if degreeWords[lower] {
			return true
		}
		if !shortDegreeWords[lower] || !isAbbreviation(word, line) {
			continue
		}
		if lower == "ms" && i+1 < len(words) && officeProducts[strings.ToLower(words[i+1])] {
			continue
		}
		return true
	}
	return false
}

// degreeTokens splits line into words, keeping the dots of abbreviations
func degreeTokens(line string) []string {
	words := strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	})
	for i, w := range words {
		words[i] = strings.TrimSuffix(w, ".")
	}
	return words
}

// isAbbreviation reports a dotted form like "B.E" / "M.S", or an upper-case "BE" / "MS"
// on a line that is not itself all upper case ("ABOUT ME")
func isAbbreviation(word, line string) bool {
	if len(word) > 2 && word[1] == '.' {
		return true
	}
	return word == strings.ToUpper(word) && line != strings.ToUpper(line)
}
