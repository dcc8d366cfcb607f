package ranking

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func result(filename string, pct int) types.AnalysisResult {
	return types.AnalysisResult{
		Filename: filename,
		State:    &types.AnalysisState{MatchPercentage: pct},
	}
}

func TestIsStrongMatch(t *testing.T) {
	assert.True(t, IsStrongMatch(70))
	assert.True(t, IsStrongMatch(100))
	assert.False(t, IsStrongMatch(69))
	assert.False(t, IsStrongMatch(0))
}

func TestSortByMatch(t *testing.T) {
	results := []types.AnalysisResult{
		result("b.pdf", 55),
		result("c.pdf", 81),
		result("a.pdf", 55),
		{Filename: "broken.txt"},
		result("d.docx", 70),
	}

	SortByMatch(results)

	var order []string
	for _, r := range results {
		order = append(order, r.Filename)
	}
	assert.Equal(t, []string{"c.pdf", "d.docx", "a.pdf", "b.pdf", "broken.txt"}, order)
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]types.AnalysisResult{
		result("a", 70),
		result("b", 69),
		result("c", 90),
	})

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Strong)
	assert.Equal(t, 1, summary.Weak)
	assert.Equal(t, 76.3, summary.Average)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
