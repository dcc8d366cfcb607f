package extraction

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/llm"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateJSONFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return `{"person_names": []}`, nil
}

func (m *MockLLMClient) Embed(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string {
	return "mock-model"
}

func (m *MockLLMClient) Close() error {
	return nil
}

// fakeSpanner returns fixed spans
type fakeSpanner struct {
	spans  []string
	err    error
	prefix string
}

func (f *fakeSpanner) NameSpans(_ context.Context, prefix string) ([]string, error) {
	f.prefix = prefix
	return f.spans, f.err
}
