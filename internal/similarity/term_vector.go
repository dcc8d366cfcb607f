package similarity

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode"
)

// stopWords carry no signal about a role and are dropped before vectorizing
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true, "be": true,
	"by": true, "for": true, "from": true, "has": true, "have": true, "in": true, "is": true,
	"it": true, "its": true, "of": true, "on": true, "or": true, "our": true, "that": true,
	"the": true, "their": true, "this": true, "to": true, "was": true, "we": true, "were": true,
	"will": true, "with": true, "you": true, "your": true, "i": true, "my": true, "me": true,
}

// TermVectorScorer is the local similarity backend: cosine similarity of sublinear
// term-frequency vectors over unigrams and adjacent-word bigrams. It has no state.
type TermVectorScorer struct{}

// NewTermVectorScorer creates a TermVectorScorer
func NewTermVectorScorer() *TermVectorScorer {
	return &TermVectorScorer{}
}

// Score returns the cosine similarity of the two texts' term vectors
func (s *TermVectorScorer) Score(_ context.Context, resumeText, jobDescription string) (float64, error) {
	raw := cosine(termVector(resumeText), termVector(jobDescription))
	return finalize(resumeText, jobDescription, raw), nil
}

// terms lower-cases text and splits it into words. '+', '#' and '.' stay inside a word
// so "c++", "c#" and "node.js" survive; trailing sentence dots are dropped.
func terms(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#' && r != '.'
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".")
		if f == "" || stopWords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// termVector weights each unigram and bigram by 1 + ln(tf)
func termVector(text string) map[string]float64 {
	words := terms(text)
	counts := make(map[string]int, len(words)*2)
	for i, w := range words {
		counts[w]++
		if i > 0 {
			counts[words[i-1]+" "+w]++
		}
	}

	vec := make(map[string]float64, len(counts))
	for term, tf := range counts {
		vec[term] = 1 + math.Log(float64(tf))
	}
	return vec
}

// cosine sums in sorted key order so equal inputs always give bit-identical results
func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot float64
	for _, k := range sortedKeys(a) {
		if w, ok := b[k]; ok {
			dot += a[k] * w
		}
	}
	if dot == 0 {
		return 0
	}

	return dot / (norm(a) * norm(b))
}

func norm(v map[string]float64) float64 {
	var sum float64
	for _, k := range sortedKeys(v) {
		sum += v[k] * v[k]
	}
	return math.Sqrt(sum)
}

func sortedKeys(v map[string]float64) []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
