package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	lex, err := DefaultLexicon()
	require.NoError(t, err)
	return NewAnalyzer(lex)
}

func TestAnalyze_MissingSkillsKeepJobOrder(t *testing.T) {
	a := newTestAnalyzer(t)
	jd := "We need a data engineer with Python, SQL and Docker experience."
	resume := "Data engineer. Built ETL jobs in Python for three years."

	got := a.Analyze(resume, jd)

	assert.Equal(t, []string{"Python"}, got.MatchedSkills)
	assert.Equal(t, []string{"SQL", "Docker"}, got.MissingSkills)
}

func TestAnalyze_PartitionsVocabulary(t *testing.T) {
	a := newTestAnalyzer(t)
	jd := "Kubernetes, AWS, Terraform, Java, React and Agile delivery. Kafka is a plus."
	resume := "Deployed services on k8s in Amazon Web Services; frontend in React."

	got := a.Analyze(resume, jd)
	vocab := a.Vocabulary(jd)

	combined := append(append([]string{}, got.MatchedSkills...), got.MissingSkills...)
	assert.ElementsMatch(t, vocab, combined)
	for _, m := range got.MatchedSkills {
		assert.NotContains(t, got.MissingSkills, m)
	}
	assert.Equal(t, []string{"Kubernetes", "AWS", "React"}, got.MatchedSkills)
	assert.Equal(t, []string{"Terraform", "Java", "Agile", "Kafka"}, got.MissingSkills)
}

func TestAnalyze_ResumePresenceIgnoresCase(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		name        string
		resume      string
		jd          string
		wantMatched []string
		wantMissing []string
	}{
		{
			name:        "upper case skills section",
			resume:      "SKILLS: GO, RUST, SWIFT, DOCKER, SPARK",
			jd:          "Requirements: Go, Rust, Swift, Docker, Spark",
			wantMatched: []string{"Go", "Rust", "Swift", "Docker", "Spark"},
			wantMissing: []string{},
		},
		{
			name:        "lower case strict names",
			resume:      "wrote services in go and rust",
			jd:          "Go, Rust",
			wantMatched: []string{"Go", "Rust"},
			wantMissing: []string{},
		},
		{
			name:        "upper case alias",
			resume:      "GOLANG microservices",
			jd:          "Go and Kafka",
			wantMatched: []string{"Go"},
			wantMissing: []string{"Kafka"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.resume, tt.jd)
			assert.Equal(t, tt.wantMatched, got.MatchedSkills)
			assert.Equal(t, tt.wantMissing, got.MissingSkills)
		})
	}
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	a := newTestAnalyzer(t)

	got := a.Analyze("Python developer", "")
	assert.NotNil(t, got.MatchedSkills)
	assert.NotNil(t, got.MissingSkills)
	assert.Empty(t, got.MatchedSkills)
	assert.Empty(t, got.MissingSkills)

	got = a.Analyze("", "Python and SQL")
	assert.Empty(t, got.MatchedSkills)
	assert.Equal(t, []string{"Python", "SQL"}, got.MissingSkills)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer(t)
	jd := "Python, SQL, Docker, Excel, Tableau, Power BI, forecasting and budgeting"
	resume := "Excel and Tableau dashboards, budget management"

	first := a.Analyze(resume, jd)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, a.Analyze(resume, jd))
	}
}

func TestVocabulary_TermBoundaries(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		name string
		jd   string
		want []string
	}{
		{
			name: "javascript is not java",
			jd:   "Strong JavaScript skills",
			want: []string{"JavaScript"},
		},
		{
			name: "postgresql is not sql",
			jd:   "Experience with PostgreSQL and MySQL",
			want: []string{"PostgreSQL", "MySQL"},
		},
		{
			name: "alias maps to canonical name",
			jd:   "golang services on k8s",
			want: []string{"Go", "Kubernetes"},
		},
		{
			name: "symbols in names",
			jd:   "C++ or C# developers, CI/CD pipelines",
			want: []string{"C++", "C#", "CI/CD"},
		},
		{
			name: "multi word skill",
			jd:   "background in machine learning and supply chain management",
			want: []string{"Machine Learning", "Supply Chain"},
		},
		{
			name: "no skills",
			jd:   "Friendly team, great office",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Vocabulary(tt.jd)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVocabulary_StrictNames(t *testing.T) {
	a := newTestAnalyzer(t)

	assert.Empty(t, a.Vocabulary("you will go the extra mile to excel"))
	assert.Equal(t, []string{"Go", "Excel"}, a.Vocabulary("Go backend work, reporting in Excel"))
	assert.Equal(t, []string{"Excel"}, a.Vocabulary("advanced microsoft excel"))
}

func TestVocabulary_NilAnalyzer(t *testing.T) {
	var a *Analyzer
	assert.Empty(t, a.Vocabulary("Python"))
	got := a.Analyze("Python", "Python")
	assert.Empty(t, got.MatchedSkills)
	assert.Empty(t, got.MissingSkills)
}
