package extraction

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
)

const maxNameSpans = 5

// NameSpanner produces candidate person-name spans for a text prefix.
// Implementations must be safe for concurrent use.
type NameSpanner interface {
	NameSpans(ctx context.Context, prefix string) ([]string, error)
}

// LLMNameSpanner recognizes person names with an LLM
type LLMNameSpanner struct {
	client llm.Client
	prompt string
}

type personNamesResponse struct {
	PersonNames []string `json:"person_names"`
}

// NewLLMNameSpanner creates a spanner backed by client
func NewLLMNameSpanner(client llm.Client) (*LLMNameSpanner, error) {
	if client == nil {
		return nil, fmt.Errorf("LLM client is required")
	}

	description, err := prompts.PersonNames(maxNameSpans)
	if err != nil {
		return nil, err
	}

	return &LLMNameSpanner{client: client, prompt: description}, nil
}

// NameSpans returns the person names the model finds in prefix, in order of appearance
func (s *LLMNameSpanner) NameSpans(ctx context.Context, prefix string) ([]string, error) {
	prompt := llm.BuildExtractionPrompt(llm.PersonNamesSchema(s.prompt), prefix)

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("name recognition failed: %w", err)
	}

	var resp personNamesResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse name recognition response: %w", err)
	}

	if len(resp.PersonNames) > maxNameSpans {
		resp.PersonNames = resp.PersonNames[:maxNameSpans]
	}
	return resp.PersonNames, nil
}
