// Package prompts holds the LLM prompt templates used by the optional name recognizer.
// Templates live in extraction.json, embedded at compile time and parsed on first use.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

// PersonNamesKey is the template for the person-name recognizer
const PersonNamesKey = "extract-person-names"

//go:embed extraction.json
var extractionJSON []byte

var (
	loadOnce  sync.Once
	templates map[string]string
	loadErr   error
)

var placeholderRe = regexp.MustCompile(`\{\{\.(\w+)\}\}`)

func load() (map[string]string, error) {
	loadOnce.Do(func() {
		loadErr = json.Unmarshal(extractionJSON, &templates)
		if loadErr != nil {
			loadErr = fmt.Errorf("failed to parse prompt templates: %w", loadErr)
		}
	})
	return templates, loadErr
}

// Get returns the raw template stored under key
func Get(key string) (string, error) {
	all, err := load()
	if err != nil {
		return "", err
	}
	template, ok := all[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return template, nil
}

// Render fills the {{.Key}} placeholders of the template under key.
// Every placeholder must have a value.
func Render(key string, data map[string]string) (string, error) {
	template, err := Get(key)
	if err != nil {
		return "", err
	}

	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		value, ok := data[name]
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("prompt %q is missing values for %v", key, missing)
	}
	return out, nil
}

// PersonNames renders the name recognizer instructions for at most maxNames names
func PersonNames(maxNames int) (string, error) {
	if maxNames <= 0 {
		return "", fmt.Errorf("maxNames must be positive, got %d", maxNames)
	}
	return Render(PersonNamesKey, map[string]string{"MaxNames": strconv.Itoa(maxNames)})
}
