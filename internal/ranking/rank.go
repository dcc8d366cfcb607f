package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// strongMatchThreshold is the downstream shortlist cut, separate from the feedback bands
const strongMatchThreshold = 70

// Summary aggregates a batch of analyses
type Summary struct {
	Total   int     `json:"total"`
	Average float64 `json:"average_match"`
	Strong  int     `json:"strong_matches"`
	Weak    int     `json:"weak_matches"`
}

// IsStrongMatch reports whether a match percentage makes the shortlist
func IsStrongMatch(matchPercentage int) bool {
	return matchPercentage >= strongMatchThreshold
}

// SortByMatch orders results by match percentage, highest first; ties keep filename order
func SortByMatch(results []types.AnalysisResult) {
	sort.SliceStable(results, func(i, j int) bool {
		mi, mj := matchOf(results[i]), matchOf(results[j])
		if mi != mj {
			return mi > mj
		}
		return results[i].Filename < results[j].Filename
	})
}

// Summarize counts strong and weak matches and averages the match percentage to one decimal
func Summarize(results []types.AnalysisResult) Summary {
	summary := Summary{Total: len(results)}
	if len(results) == 0 {
		return summary
	}

	total := 0
	for _, r := range results {
		pct := matchOf(r)
		total += pct
		if IsStrongMatch(pct) {
			summary.Strong++
		} else {
			summary.Weak++
		}
	}

	summary.Average = math.Round(float64(total)/float64(len(results))*10) / 10
	return summary
}

func matchOf(r types.AnalysisResult) int {
	if r.State == nil {
		return 0
	}
	return r.State.MatchPercentage
}
