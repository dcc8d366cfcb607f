package ingestion

import "strings"

// DefaultTokenBudget is the number of whitespace-delimited tokens kept by Normalize.
const DefaultTokenBudget = 500

// Normalize keeps the first DefaultTokenBudget whitespace-delimited tokens of text
// and joins them with single spaces. Empty input yields empty output.
func Normalize(text string) string {
	return NormalizeWithBudget(text, DefaultTokenBudget)
}

// NormalizeWithBudget is Normalize with an explicit token budget.
// A budget of zero or less keeps every token.
func NormalizeWithBudget(text string, budget int) string {
	tokens := strings.Fields(text)
	if budget > 0 && len(tokens) > budget {
		tokens = tokens[:budget]
	}
	return strings.Join(tokens, " ")
}
