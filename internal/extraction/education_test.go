package extraction

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractEducation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "degree merged with institution below",
			text: "Education\nBachelor of Commerce\nUniversity of Mumbai\n2014 - 2017",
			want: []string{"Bachelor of Commerce | University of Mumbai"},
		},
		{
			name: "institution on the same line",
			text: "MSc Statistics, University of Leeds",
			want: []string{"MSc Statistics, University of Leeds"},
		},
		{
			name: "bare degree without institution",
			text: "EDUCATION\nPh.D. in Chemistry",
			want: []string{"Ph.D. in Chemistry"},
		},
		{
			name: "dotted short degree",
			text: "B.E. Mechanical\nPune 2012",
			want: []string{"B.E. Mechanical"},
		},
		{
			name: "at most two entries",
			text: "MBA\nHarvard Business School\nB.Tech\nDelhi College of Engineering\nDiploma in Design",
			want: []string{"MBA | Harvard Business School", "B.Tech | Delhi College of Engineering"},
		},
		{
			name: "institution beyond lookahead",
			text: "Master of Arts\nMajor: History\nMinor: Politics\nYale University",
			want: []string{"Master of Arts", "Yale University"},
		},
		{
			name: "graduated hint without degree or institution",
			text: "Graduated with honors",
			want: []string{types.EducationNotSpecified},
		},
		{
			name: "office product is not a degree",
			text: "Skills: MS Excel, MS Office, Tableau",
			want: []string{types.EducationNotSpecified},
		},
		{
			name: "shouted heading is not a degree",
			text: "ABOUT ME\nI like to be helpful",
			want: []string{types.EducationNotSpecified},
		},
		{
			name: "upper case abbreviation in mixed case line",
			text: "BS in Computer Science",
			want: []string{"BS in Computer Science"},
		},
		{
			name: "duplicates collapse",
			text: "MBA\nMBA",
			want: []string{"MBA"},
		},
		{
			name: "empty",
			text: "",
			want: []string{types.EducationNotSpecified},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEducation(tt.text))
		})
	}
}

func TestHasDegree(t *testing.T) {
	assert.True(t, hasDegree("M.Tech (Computer Science)"))
	assert.True(t, hasDegree("Masters in Supply Chain"))
	assert.True(t, hasDegree("M.S. Physics"))
	assert.False(t, hasDegree("Let me know"))
	assert.False(t, hasDegree("It will be done."))
}
