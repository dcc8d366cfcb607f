// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most limit runes, ending in "..." when cut
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to maxItemsToShow bullet items followed by an overflow line
func writeList(sb *strings.Builder, items []string, width int) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(items[i], width)))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintProfile outputs the entities extracted from a resume.
func (p *Printer) PrintProfile(profile types.CandidateProfile) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.YearsExperience))
	sb.WriteString(fmt.Sprintf("Position:   %s\n", profile.CurrentPosition))
	if len(profile.Education) > 0 {
		sb.WriteString("Education:\n")
		writeList(&sb, profile.Education, 50)
	}
	if profile.HasSentinels() {
		sb.WriteString("\n⚠ Partially extracted: some fields were not found\n")
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywordMatches outputs the matched and missing skills.
func (p *Printer) PrintKeywordMatches(matches types.KeywordMatches) {
	var sb strings.Builder
	total := len(matches.MatchedSkills) + len(matches.MissingSkills)
	if total == 0 {
		p.printBox("KEYWORD MATCHES", "No known skills found in the job description")
		return
	}

	sb.WriteString(fmt.Sprintf("Coverage: %d/%d skills\n\n", len(matches.MatchedSkills), total))
	if len(matches.MatchedSkills) > 0 {
		sb.WriteString("Matched:\n")
		writeList(&sb, matches.MatchedSkills, 40)
	}
	if len(matches.MissingSkills) > 0 {
		if len(matches.MatchedSkills) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Missing:\n")
		writeList(&sb, matches.MissingSkills, 40)
	}

	p.printBox("KEYWORD MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVocabulary outputs the job description's known skills in order of appearance.
func (p *Printer) PrintVocabulary(vocabulary []string) {
	if len(vocabulary) == 0 {
		return
	}
	var sb strings.Builder
	for i, skill := range vocabulary {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(skill)
	}
	p.printBox("JOB SKILLS", wrapWords(sb.String(), boxWidth-4))
}

// wrapWords breaks s at spaces into lines of at most width runes
func wrapWords(s string, width int) string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// PrintAnalysis outputs the scores and feedback of a finished analysis.
func (p *Printer) PrintAnalysis(state *types.AnalysisState) {
	if state == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", state.CandidateProfile.Name))
	sb.WriteString(fmt.Sprintf("Match:      %d%%", state.MatchPercentage))
	if ranking.IsStrongMatch(state.MatchPercentage) {
		sb.WriteString(" ✓ strong")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Similarity: %.4f\n", state.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("Fit:        %s\n", ranking.FeedbackLabel(state.MatchPercentage)))

	if len(state.SuggestedChanges) > 0 {
		sb.WriteString("\nSuggestions:\n")
		writeList(&sb, state.SuggestedChanges, 50)
	}

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedCandidates outputs the top candidates of a batch, best first.
func (p *Printer) PrintRankedCandidates(results []types.AnalysisResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		pct := 0
		name := types.NameNotFound
		if r.State != nil {
			pct = r.State.MatchPercentage
			name = r.State.CandidateProfile.Name
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, truncate(r.Filename, 45)))
		sb.WriteString(fmt.Sprintf("    Match: %d%%", pct))
		if ranking.IsStrongMatch(pct) {
			sb.WriteString(" ✓")
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Name:  %s\n", truncate(name, 40)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("TOP RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the aggregate batch metrics.
func (p *Printer) PrintSummary(summary ranking.Summary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total Candidates: %d\n", summary.Total))
	sb.WriteString(fmt.Sprintf("Average Match:    %.1f%%\n", summary.Average))
	sb.WriteString(fmt.Sprintf("Strong Matches:   %d\n", summary.Strong))
	sb.WriteString(fmt.Sprintf("Weak Matches:     %d", summary.Weak))

	p.printBox("BATCH SUMMARY", sb.String())
}

// PrintProblems outputs the resumes that failed or were skipped.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProblems(failures []types.AnalysisFailure, skipped []types.SkippedDocument) {
	if len(failures) == 0 && len(skipped) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL RESUMES ANALYZED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for _, f := range failures {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", f.Filename))
		sb.WriteString(fmt.Sprintf("  failed: %s\n", truncate(f.Error, 45)))
	}
	for _, s := range skipped {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", s.Filename))
		sb.WriteString(fmt.Sprintf("  skipped: %s\n", truncate(s.Reason, 45)))
	}

	p.printBox(fmt.Sprintf("UNANALYZED RESUMES (%d)", len(failures)+len(skipped)), strings.TrimSuffix(sb.String(), "\n"))
}
