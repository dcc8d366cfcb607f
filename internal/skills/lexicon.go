// Package skills derives a job description's skill vocabulary and compares it with resume text.
package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

//go:embed lexicon.json
var builtinLexicon []byte

// Skill is a lexicon entry: a canonical name plus the aliases that also count as a mention
type Skill struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	// Strict requires the canonical name to appear with exact case in a job description
	// (e.g. "Go", "Excel"). Resume presence and aliases ignore case.
	Strict bool `json:"strict,omitempty"`
}

// Lexicon is an ordered, read-only list of skills. It is safe for concurrent use.
type Lexicon struct {
	skills []compiledSkill
}

type lexiconFile struct {
	Skills []Skill `json:"skills"`
}

type compiledSkill struct {
	name  string
	terms []term
}

type term struct {
	text          string
	folded        string
	caseSensitive bool
}

var (
	defaultOnce    sync.Once
	defaultLexicon *Lexicon
	defaultErr     error
)

// DefaultLexicon returns the built-in skill lexicon
func DefaultLexicon() (*Lexicon, error) {
	defaultOnce.Do(func() {
		var file lexiconFile
		if err := json.Unmarshal(builtinLexicon, &file); err != nil {
			defaultErr = fmt.Errorf("failed to parse built-in lexicon: %w", err)
			return
		}
		defaultLexicon, defaultErr = NewLexicon(file.Skills)
	})
	return defaultLexicon, defaultErr
}

// LoadLexicon returns the built-in lexicon extended with the skills in a JSON file.
// An empty path returns the built-in lexicon. Skills already defined are not overridden.
func LoadLexicon(path string) (*Lexicon, error) {
	base, err := DefaultLexicon()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	var file lexiconFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon JSON: %w", err)
	}

	return NewLexicon(append(base.Skills(), file.Skills...))
}

// NewLexicon builds a lexicon from skills in priority order.
// Names are canonicalized; the first definition of a name wins.
func NewLexicon(skills []Skill) (*Lexicon, error) {
	lex := &Lexicon{skills: make([]compiledSkill, 0, len(skills))}
	seen := make(map[string]bool, len(skills))

	for i, skill := range skills {
		name := NormalizeSkillName(skill.Name)
		if name == "" {
			return nil, fmt.Errorf("lexicon entry %d has an empty name", i)
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		// a strict name keeps its exact spelling, so prose like "go" or "excel" is not a mention
		primary := term{text: name, folded: foldASCII(name), caseSensitive: skill.Strict}
		if !skill.Strict {
			primary.text = primary.folded
		}
		compiled := compiledSkill{name: name, terms: []term{primary}}
		for _, alias := range skill.Aliases {
			alias = strings.Join(strings.Fields(alias), " ")
			if alias == "" {
				continue
			}
			folded := foldASCII(alias)
			compiled.terms = append(compiled.terms, term{text: folded, folded: folded})
		}
		lex.skills = append(lex.skills, compiled)
	}

	return lex, nil
}

// Len returns the number of skills in the lexicon
func (l *Lexicon) Len() int {
	return len(l.skills)
}

// Names returns the canonical skill names in lexicon order
func (l *Lexicon) Names() []string {
	names := make([]string, len(l.skills))
	for i, s := range l.skills {
		names[i] = s.name
	}
	return names
}

// Skills returns the lexicon entries in a form accepted by NewLexicon
func (l *Lexicon) Skills() []Skill {
	out := make([]Skill, 0, len(l.skills))
	for _, s := range l.skills {
		skill := Skill{Name: s.name, Strict: s.terms[0].caseSensitive}
		for _, t := range s.terms[1:] {
			skill.Aliases = append(skill.Aliases, t.text)
		}
		out = append(out, skill)
	}
	return out
}

// firstIndex returns the byte offset of the skill's earliest mention in text, or -1.
// folded must be foldASCII(text).
func (s compiledSkill) firstIndex(text, folded string) int {
	first := -1
	for _, t := range s.terms {
		haystack := folded
		if t.caseSensitive {
			haystack = text
		}
		if idx := indexTerm(haystack, t.text); idx >= 0 && (first < 0 || idx < first) {
			first = idx
		}
	}
	return first
}

// firstIndexFolded is firstIndex with every term compared case-insensitively.
// folded must be foldASCII of the searched text.
func (s compiledSkill) firstIndexFolded(folded string) int {
	first := -1
	for _, t := range s.terms {
		if idx := indexTerm(folded, t.folded); idx >= 0 && (first < 0 || idx < first) {
			first = idx
		}
	}
	return first
}

// indexTerm finds needle in haystack where it is not glued to neighbouring letters or digits
func indexTerm(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	from := 0
	for from <= len(haystack)-len(needle) {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return -1
		}
		start := from + i
		end := start + len(needle)
		if boundaryBefore(haystack, start) && boundaryAfter(haystack, end) {
			return start
		}
		from = start + 1
	}
	return -1
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
