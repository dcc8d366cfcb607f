package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(types.CandidateProfile{
		Name:            "Jane Doe",
		YearsExperience: 5,
		CurrentPosition: "Data Engineer | Acme Solutions Ltd",
		Education:       []string{"BSc Computer Science | University of Leeds"},
	})
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "5 years")
	assert.Contains(t, output, "Acme Solutions Ltd")
	assert.Contains(t, output, "University of Leeds")
	assert.NotContains(t, output, "Partially extracted")
}

func TestPrintProfile_MarksSentinels(t *testing.T) {
	tests := []struct {
		name    string
		profile types.CandidateProfile
		marked  bool
	}{
		{
			name: "name not found",
			profile: types.CandidateProfile{
				Name:            types.NameNotFound,
				CurrentPosition: "Analyst",
				Education:       []string{"BA Economics"},
			},
			marked: true,
		},
		{
			name: "education not specified",
			profile: types.CandidateProfile{
				Name:            "Jane Doe",
				CurrentPosition: "Analyst",
				Education:       []string{types.EducationNotSpecified},
			},
			marked: true,
		},
		{
			name: "complete",
			profile: types.CandidateProfile{
				Name:            "Jane Doe",
				CurrentPosition: "Analyst",
				Education:       []string{"BA Economics"},
			},
			marked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintProfile(tt.profile)
			assert.Equal(t, tt.marked, strings.Contains(buf.String(), "Partially extracted"))
		})
	}
}

func TestPrintVocabulary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVocabulary([]string{"Python", "SQL", "Docker", "Kubernetes", "Terraform", "Machine Learning", "Supply Chain", "Tableau"})
	output := buf.String()

	assert.Contains(t, output, "JOB SKILLS")
	assert.Contains(t, output, "Python, SQL, Docker")
	assert.Contains(t, output, "Tableau")
	assert.NotContains(t, output, "...")

	buf.Reset()
	p.PrintVocabulary(nil)
	assert.Empty(t, buf.String())
}

func TestWrapWords(t *testing.T) {
	assert.Equal(t, "a bb\nccc", wrapWords("a bb ccc", 5))
	assert.Equal(t, "", wrapWords("", 5))
	assert.Equal(t, "toolongword", wrapWords("toolongword", 4))
}

func TestPrintKeywordMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywordMatches(types.KeywordMatches{
		MatchedSkills: []string{"Python"},
		MissingSkills: []string{"SQL", "Docker"},
	})
	output := buf.String()

	assert.Contains(t, output, "KEYWORD MATCHES")
	assert.Contains(t, output, "Coverage: 1/3 skills")
	assert.Contains(t, output, "Matched:")
	assert.Contains(t, output, "Missing:")
	assert.Contains(t, output, "Docker")
}

func TestPrintKeywordMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywordMatches(types.KeywordMatches{})

	assert.Contains(t, buf.String(), "No known skills")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.AnalysisState{
		CandidateProfile:   types.CandidateProfile{Name: "Jane Doe"},
		SemanticSimilarity: 0.5123,
		MatchPercentage:    72,
		SuggestedChanges:   []string{"Consider adding experience with: SQL"},
		GeneralFeedback:    ranking.FeedbackGoodFit,
	})
	output := buf.String()

	assert.Contains(t, output, "MATCH ANALYSIS")
	assert.Contains(t, output, "72%")
	assert.Contains(t, output, "✓ strong")
	assert.Contains(t, output, "0.5123")
	assert.Contains(t, output, "Suggestions:")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRankedCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]types.AnalysisResult, 7)
	for i := range results {
		results[i] = types.AnalysisResult{
			Filename: fmt.Sprintf("resume-%d.pdf", i),
			State: &types.AnalysisState{
				CandidateProfile: types.CandidateProfile{Name: fmt.Sprintf("Candidate %d", i)},
				MatchPercentage:  90 - i*10,
			},
		}
	}
	results[6].State = nil

	p.PrintRankedCandidates(results)
	output := buf.String()

	assert.Contains(t, output, "TOP RANKED CANDIDATES")
	assert.Contains(t, output, "Total candidates ranked: 7")
	assert.Contains(t, output, "#1  resume-0.pdf")
	assert.Contains(t, output, "Match: 90% ✓")
	assert.Contains(t, output, "... and 2 more candidates")
	assert.NotContains(t, output, "resume-5.pdf")
}

func TestPrintRankedCandidates_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedCandidates(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(ranking.Summary{Total: 3, Average: 76.3, Strong: 2, Weak: 1})
	output := buf.String()

	assert.Contains(t, output, "BATCH SUMMARY")
	assert.Contains(t, output, "76.3%")
	assert.Contains(t, output, "Strong Matches:   2")
	assert.Contains(t, output, "Weak Matches:     1")
}

func TestPrintProblems(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProblems(
		[]types.AnalysisFailure{{Filename: "broken.pdf", Error: "stage semantic_similarity failed"}},
		[]types.SkippedDocument{{Filename: "empty.txt", Reason: "insufficient text content"}},
	)
	output := buf.String()

	assert.Contains(t, output, "UNANALYZED RESUMES (2)")
	assert.Contains(t, output, "broken.pdf")
	assert.Contains(t, output, "skipped: insufficient text content")
}

func TestPrintProblems_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProblems(nil, nil)

	assert.Contains(t, buf.String(), "ALL RESUMES ANALYZED")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TEST", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line))
	}
	assert.Contains(t, buf.String(), "...")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"ééééééééééé", 5, "éé..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.limit))
	}
}
