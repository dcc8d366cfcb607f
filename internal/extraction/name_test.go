package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScanName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "first line",
			text: "John Smith\nSoftware Engineer\n",
			want: "John Smith",
		},
		{
			name: "skips document heading",
			text: "RESUME\nCurriculum Vitae\nJohn Smith\n",
			want: "John Smith",
		},
		{
			name: "skips contact line",
			text: "Email Me Now\njohn@example.com\nMaria Elena Cruz\n",
			want: "Maria Elena Cruz",
		},
		{
			name: "hyphenated and initial",
			text: "Anne-Marie J. O'Neil\n",
			want: "Anne-Marie J. O'Neil",
		},
		{
			name: "collapses inner whitespace",
			text: "  John    Smith  \n",
			want: "John Smith",
		},
		{
			name: "rejects digits",
			text: "John Smith 2\n",
			want: types.NameNotFound,
		},
		{
			name: "rejects single word",
			text: "John\n",
			want: types.NameNotFound,
		},
		{
			name: "rejects five words",
			text: "John Paul George Ringo Pete\n",
			want: types.NameNotFound,
		},
		{
			name: "lower case name",
			text: "john smith\ndata analyst\n",
			want: "john smith",
		},
		{
			name: "upper case name",
			text: "JANE DOE\n",
			want: "JANE DOE",
		},
		{
			name: "rejects prose with function words",
			text: "seeking new opportunities now\nworked on the platform\n",
			want: types.NameNotFound,
		},
		{
			name: "rejects lower case prose",
			text: "looking for a role\n",
			want: types.NameNotFound,
		},
		{
			name: "rejects section heading",
			text: "Professional Summary\nWork Experience\n",
			want: types.NameNotFound,
		},
		{
			name: "empty",
			text: "",
			want: types.NameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanName(tt.text))
		})
	}
}

func TestScanName_ScansOnlyHeader(t *testing.T) {
	header := strings.Repeat("x\n", nameScanLines)
	assert.Equal(t, types.NameNotFound, scanName(header+"John Smith\n"))

	header = strings.Repeat("x\n", nameScanLines-1)
	assert.Equal(t, "John Smith", scanName(header+"John Smith\n"))
}

func TestExtractor_Name_SpannerFirst(t *testing.T) {
	spanner := &fakeSpanner{spans: []string{"Acme", "Priya  Raman"}}
	e := NewExtractor(spanner, nil)

	got := e.Name(context.Background(), "Resume of P. Raman\nJohn Smith\n")

	assert.Equal(t, "Priya Raman", got)
	assert.Equal(t, "Resume of P  Raman\nJohn Smith\n", spanner.prefix)
}

func TestExtractor_Name_SpannerSpansMustValidate(t *testing.T) {
	spanner := &fakeSpanner{spans: []string{"Curriculum Vitae", "j smith", "Doe"}}
	e := NewExtractor(spanner, nil)

	assert.Equal(t, "John Smith", e.Name(context.Background(), "John Smith\n"))
}

func TestExtractor_Name_SpannerFailureFallsBack(t *testing.T) {
	spanner := &fakeSpanner{err: errors.New("backend unavailable")}
	e := NewExtractor(spanner, nil)

	assert.Equal(t, "John Smith", e.Name(context.Background(), "John Smith\nAnalyst\n"))
}

func TestExtractor_Name_NoSpans(t *testing.T) {
	e := NewExtractor(&fakeSpanner{}, nil)

	assert.Equal(t, "John Smith", e.Name(context.Background(), "John Smith\n"))
	assert.Equal(t, types.NameNotFound, e.Name(context.Background(), "12345\n"))
}

func TestNamePrefix(t *testing.T) {
	assert.Equal(t, "Jane Doe   jane doe example com", namePrefix("Jane Doe | jane.doe@example.com"))

	long := strings.Repeat("a", nerPrefixChars+100)
	assert.Len(t, namePrefix(long), nerPrefixChars)

	multibyte := strings.Repeat("é", nerPrefixChars+1)
	assert.Equal(t, nerPrefixChars, len([]rune(namePrefix(multibyte))))
}

func TestIsPlausibleName(t *testing.T) {
	assert.True(t, isPlausibleName("Jane Doe"))
	assert.True(t, isPlausibleName("José Álvarez"))
	assert.True(t, isPlausibleName("jane doe"))
	assert.False(t, isPlausibleName("-jane doe"))
	assert.False(t, isPlausibleName("Jane"))
	assert.False(t, isPlausibleName("Jane Doe Linkedin"))
	assert.False(t, isPlausibleName("Jane D"))
	assert.False(t, isPlausibleName("Jane@Doe Smith"))
	assert.False(t, isPlausibleName("Bartholomew Maximilian Fitzgerald Worthington-Smythe"))
}
