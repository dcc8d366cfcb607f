package skills

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Analyzer partitions a job description's skill vocabulary by presence in a resume.
// It holds only the read-only lexicon and is safe for concurrent use.
type Analyzer struct {
	lexicon *Lexicon
}

// NewAnalyzer creates an Analyzer over the given lexicon
func NewAnalyzer(lexicon *Lexicon) *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

type mention struct {
	skill  compiledSkill
	offset int
	rank   int
}

// Vocabulary returns the lexicon skills mentioned in the job description,
// ordered by first occurrence (lexicon order breaks ties).
func (a *Analyzer) Vocabulary(jobDescription string) []string {
	mentions := a.mentions(jobDescription)
	names := make([]string, len(mentions))
	for i, m := range mentions {
		names[i] = m.skill.name
	}
	return names
}

// Analyze returns the matched and missing skills of the job description's vocabulary.
// A skill is matched when it is mentioned anywhere in the resume, ignoring case.
// Both lists keep job description order.
func (a *Analyzer) Analyze(resumeText, jobDescription string) types.KeywordMatches {
	result := types.KeywordMatches{
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}

	foldedResume := foldASCII(resumeText)
	for _, m := range a.mentions(jobDescription) {
		if m.skill.firstIndexFolded(foldedResume) >= 0 {
			result.MatchedSkills = append(result.MatchedSkills, m.skill.name)
		} else {
			result.MissingSkills = append(result.MissingSkills, m.skill.name)
		}
	}

	return result
}

func (a *Analyzer) mentions(jobDescription string) []mention {
	if a == nil || a.lexicon == nil || jobDescription == "" {
		return nil
	}

	folded := foldASCII(jobDescription)
	var found []mention
	for rank, skill := range a.lexicon.skills {
		if offset := skill.firstIndex(jobDescription, folded); offset >= 0 {
			found = append(found, mention{skill: skill, offset: offset, rank: rank})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].offset != found[j].offset {
			return found[i].offset < found[j].offset
		}
		return found[i].rank < found[j].rank
	})
	return found
}
