package extraction

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// companyWindow is how many lines above and below a title are searched for the employer
	companyWindow = 2
	// maxTitleWords bounds a line that reads as a job title rather than a sentence
	maxTitleWords = 10
	minCompanyLen = 4
)

var titleWords = wordSet(
	"manager", "engineer", "developer", "analyst", "specialist", "consultant",
	"director", "head", "lead", "architect", "officer", "executive",
	"president", "ceo", "cto", "cfo", "coo", "vp", "assistant", "coordinator",
	"administrator", "associate", "supervisor", "scientist", "designer", "intern",
)

var companyWords = wordSet(
	"ltd", "limited", "inc", "corporation", "corp", "company", "group",
	"technologies", "solutions", "systems", "international", "global",
	"llc", "llp", "pvt", "plc", "gmbh",
)

// ExtractCurrentPosition returns "<title line> | <company line>", the title line alone,
// or types.PositionNotSpecified.
func ExtractCurrentPosition(text string) string {
	lines := ingestion.Lines(text)

	position, ok := firstMatch(lines, titleHeadingPosition, anyTitlePosition)
	if !ok {
		return types.PositionNotSpecified
	}
	return position
}

// titleHeadingPosition looks for a short, non-bullet line that names a title
func titleHeadingPosition(lines []string) (string, bool) {
	return positionAt(lines, func(line string) bool {
		return len(strings.Fields(line)) <= maxTitleWords &&
			!ingestion.IsBulletLine(line) &&
			!isContactLine(line) &&
			isTitleLine(line)
	})
}

// anyTitlePosition accepts the first line with a title word anywhere
func anyTitlePosition(lines []string) (string, bool) {
	return positionAt(lines, isTitleLine)
}

func positionAt(lines []string, accept func(string) bool) (string, bool) {
	for i, line := range lines {
		if !accept(line) {
			continue
		}
		if hasToken(line, companyWords) {
			return line, true
		}
		if company, ok := nearestCompany(lines, i); ok {
			return line + " | " + company, true
		}
		return line, true
	}
	return "", false
}

// nearestCompany searches lines around i, closest first; above wins over below at equal distance
func nearestCompany(lines []string, i int) (string, bool) {
	for d := 1; d <= companyWindow; d++ {
		for _, j := range []int{i - d, i + d} {
			if j < 0 || j >= len(lines) {
				continue
			}
			if isCompanyLine(lines[j]) {
				return lines[j], true
			}
		}
	}
	return "", false
}

func isCompanyLine(line string) bool {
	return len(line) >= minCompanyLen &&
		hasToken(line, companyWords) &&
		!isTitleLine(line) &&
		!isContactLine(line)
}

// isTitleLine matches title words and their plurals ("engineers")
func isTitleLine(line string) bool {
	for _, tok := range tokens(line) {
		if titleWords[tok] || (len(tok) > 3 && titleWords[strings.TrimSuffix(tok, "s")]) {
			return true
		}
	}
	return false
}
