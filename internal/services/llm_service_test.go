package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// fakeModel answers every prompt with a canned reply and keeps the prompt.
type fakeModel struct {
	reply  string
	err    error
	prompt string
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompt += text.Text
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func newTestLLM(model llms.Model) *LLMService {
	return &LLMService{Client: model, log: zap.NewNop()}
}

func TestExtractJobDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("fenced json", func(t *testing.T) {
		model := &fakeModel{reply: "Here you go:\n```json\n{\"title_c\":\"Go Engineer\",\"company_c\":\"Acme\",\"salary_range_c\":null}\n```"}
		svc := newTestLLM(model)

		draft, err := svc.ExtractJobDetails(ctx, "<h1>Go Engineer</h1>")
		require.NoError(t, err)
		assert.Equal(t, "Go Engineer", draft.TitleC)
		assert.Equal(t, "Go Engineer", draft.Name)
		assert.Equal(t, "Acme", draft.CompanyC)
		assert.Empty(t, draft.SalaryRangeC)
		assert.Contains(t, model.prompt, "<h1>Go Engineer</h1>")
	})

	t.Run("long postings are truncated", func(t *testing.T) {
		model := &fakeModel{reply: `{"title_c":"x"}`}
		svc := newTestLLM(model)

		_, err := svc.ExtractJobDetails(ctx, strings.Repeat("~", maxPostingLength+500))
		require.NoError(t, err)
		assert.Equal(t, maxPostingLength, strings.Count(model.prompt, "~"))
	})

	t.Run("garbage output", func(t *testing.T) {
		svc := newTestLLM(&fakeModel{reply: "I cannot help with that"})
		_, err := svc.ExtractJobDetails(ctx, "posting")
		assert.ErrorContains(t, err, "parse extraction output")
	})

	t.Run("model error", func(t *testing.T) {
		svc := newTestLLM(&fakeModel{err: errors.New("quota")})
		_, err := svc.ExtractJobDetails(ctx, "posting")
		assert.ErrorContains(t, err, "quota")
	})
}

func TestNewLLMService_Disabled(t *testing.T) {
	svc, err := NewLLMService(context.Background(), config.LLMConfig{}, nil)
	require.NoError(t, err)

	_, err = svc.ExtractJobDetails(context.Background(), "posting")
	assert.ErrorIs(t, err, ErrExtractionDisabled)
}

func TestTruncatePosting(t *testing.T) {
	assert.Equal(t, "short", truncatePosting("short", 10))
	assert.Equal(t, "ab", truncatePosting("abcd", 2))

	// "é" is two bytes; cutting at 2 would split it.
	got := truncatePosting("aé", 2)
	assert.Equal(t, "a", got)
	assert.True(t, utf8.ValidString(truncatePosting(strings.Repeat("日本", 10), 7)))
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"Sure! {\"a\":{\"b\":2}} Thanks", `{"a":{"b":2}}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripCodeFence(tt.in))
	}
}
