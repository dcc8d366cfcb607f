package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// maxStatedYears drops numbers that are too large to be a stated experience, such as ages
	maxStatedYears = 50
	maxSpanYears   = 40
	minYear        = 1900
	maxYear        = 2030
)

// yearsPatterns are tried in order over case-folded text. Each pattern's last
// capture group holds the number of years.
var yearsPatterns = []*regexp.Regexp{
	// "5+ years of professional experience"
	regexp.MustCompile(`\b(\d+)\s*\+?\s*years?[\s\w]*?experience`),
	// "experience of 8 years"
	regexp.MustCompile(`experience[\s\w]*?\bof\b[\s\w]*?\b(\d+)\s*\+?\s*years?`),
	// "3-5 years", "3 to 5 years": upper bound
	regexp.MustCompile(`\b\d+\s*(?:-|–|to)\s*(\d+)\s*\+?\s*years?`),
	// "10 years"
	regexp.MustCompile(`\b(\d+)\s*\+?\s*years?\b`),
}

var calendarYear = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// ExtractYearsOfExperience returns the candidate's years of experience, or 0.
// Stated durations win over the span between the earliest and latest calendar years.
func ExtractYearsOfExperience(text string) int {
	folded := strings.ToLower(text)

	for _, pattern := range yearsPatterns {
		if years, ok := maxCapture(pattern, folded); ok {
			return years
		}
	}

	return yearSpan(text)
}

// maxCapture returns the largest plausible number captured by pattern
func maxCapture(pattern *regexp.Regexp, text string) (int, bool) {
	best, found := 0, false
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[len(m)-1])
		if err != nil || n > maxStatedYears {
			continue
		}
		if !found || n > best {
			best, found = n, true
		}
	}
	return best, found
}

// yearSpan returns max(year) - min(year) over calendar years in text, clamped to [0, 40]
func yearSpan(text string) int {
	lo, hi := 0, 0
	for _, m := range calendarYear.FindAllString(text, -1) {
		year, err := strconv.Atoi(m)
		if err != nil || year < minYear || year > maxYear {
			continue
		}
		if lo == 0 || year < lo {
			lo = year
		}
		if year > hi {
			hi = year
		}
	}

	span := hi - lo
	if span < 0 {
		return 0
	}
	if span > maxSpanYears {
		return maxSpanYears
	}
	return span
}
