package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// Postings longer than this are cut before prompting.
const maxPostingLength = 20000

// ErrExtractionDisabled is returned when no model is configured.
var ErrExtractionDisabled = errors.New("job extraction is not configured")

type LLMService struct {
	Client llms.Model
	log    *zap.Logger
}

// NewLLMService connects to Gemini. With no API key it returns a service whose
// calls fail with ErrExtractionDisabled.
func NewLLMService(ctx context.Context, cfg config.LLMConfig, log *zap.Logger) (*LLMService, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.APIKey == "" {
		log.Warn("LLM API key is empty, job extraction disabled")
		return &LLMService{log: log}, nil
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LLMService{Client: llm, log: log}, nil
}

const jobExtractionPrompt = `
You are an expert Job Data Extraction Agent. Your task is to analyze the provided raw HTML/Text from a job posting and extract structured data for a job board.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "title_c": "Job title (e.g., Senior Backend Engineer)",
    "company_c": "Name of the company (e.g., Google, StartupInc)",
    "location_c": "Job location or 'Remote'",
    "description_c": "A clean summary of the job. Remove HTML tags.",
    "requirements_c": "Requirements and tech stack as one comma separated string",
    "salary_range_c": "The salary string if explicitly mentioned (e.g., '$100k - $150k'), otherwise null",
    "type_c": "Full-time, Part-time, Contract or Internship, otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

// ExtractJobDetails turns a raw job posting into a job draft.
func (s *LLMService) ExtractJobDetails(ctx context.Context, rawHTML string) (*dtos.JobInput, error) {
	if s.Client == nil {
		return nil, ErrExtractionDisabled
	}
	rawHTML = truncatePosting(rawHTML, maxPostingLength)

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, fmt.Sprintf(jobExtractionPrompt, rawHTML))
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	var draft dtos.JobInput
	if err := json.Unmarshal([]byte(stripCodeFence(resp)), &draft); err != nil {
		s.log.Error("Unparseable extraction output", zap.String("raw", resp), zap.Error(err))
		return nil, fmt.Errorf("parse extraction output: %w", err)
	}
	if draft.Name == "" {
		draft.Name = draft.TitleC
	}
	return &draft, nil
}

// truncatePosting cuts s to at most n bytes, backing off to a rune boundary.
func truncatePosting(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// stripCodeFence removes a ```json fence and any text around the JSON object.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := strings.TrimPrefix(s[idx+3:], "json")
		if j := strings.Index(rest, "```"); j >= 0 {
			s = strings.TrimSpace(rest[:j])
		}
	}
	if i := strings.Index(s, "{"); i >= 0 {
		if j := strings.LastIndex(s, "}"); j > i {
			s = s[i : j+1]
		}
	}
	return s
}
