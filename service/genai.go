package service

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Abhishekjeyakumar/Contract-Analysis-and-Risk-Assessment-Bot/config"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// SummaryProvider produces prose about a contract. Implementations must
// always return usable text: when the generative backend is disabled or
// failing the canned fallback strings are returned instead, never an
// error.
type SummaryProvider interface {
	Summarize(ctx context.Context, fullText string) string
	ExplainClause(ctx context.Context, clauseText string) string
	SuggestAlternative(ctx context.Context, clauseText string) string
}

// Deterministic offline responses, used when the backend is disabled.
const (
	fallbackSummary = "This contract defines obligations, rights, and termination conditions " +
		"between parties. Certain clauses may pose legal or financial risks " +
		"to small businesses and should be carefully reviewed."
	fallbackExplanation = "This clause explains a specific obligation or restriction. " +
		"Business owners should ensure the terms are reasonable and balanced."
	fallbackSuggestion = "Consider revising this clause to limit liability, add notice periods, " +
		"and ensure obligations are mutual."
)

// Degraded responses, used when the backend was attempted but failed.
const (
	unavailableSummary     = "GenAI summary unavailable. Please review key clauses manually."
	unavailableExplanation = "GenAI explanation unavailable."
	unavailableSuggestion  = "Suggested alternative unavailable."
)

// summaryInputLimit bounds how much contract text is sent per request.
const summaryInputLimit = 6000

// FallbackProvider is the offline SummaryProvider. Its answers are
// fixed strings, which keeps the whole pipeline deterministic in tests
// and in fallback mode.
type FallbackProvider struct{}

func (FallbackProvider) Summarize(_ context.Context, _ string) string { return fallbackSummary }

func (FallbackProvider) ExplainClause(_ context.Context, _ string) string {
	return fallbackExplanation
}

func (FallbackProvider) SuggestAlternative(_ context.Context, _ string) string {
	return fallbackSuggestion
}

// GeminiProvider calls the Gemini API with a bounded timeout and
// degrades to canned text on any failure.
type GeminiProvider struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

// NewSummaryProvider builds the provider selected by configuration.
// Disabled config, a missing API key, or a client construction failure
// all yield the offline FallbackProvider; the pipeline never crashes
// over backend credentials.
func NewSummaryProvider(cfg *config.GenAIConfig) SummaryProvider {
	if !cfg.Enabled || cfg.APIKey == "" {
		slog.Info("genai disabled, using offline summary provider")
		return FallbackProvider{}
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		slog.Warn("failed to create genai client, using offline summary provider", "error", err)
		return FallbackProvider{}
	}

	return &GeminiProvider{
		model:   client.GenerativeModel(cfg.Model),
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

func (p *GeminiProvider) Summarize(ctx context.Context, fullText string) string {
	prompt := "Summarize this contract in plain language for a small business owner:\n\n" +
		truncateText(fullText, summaryInputLimit)
	return p.generate(ctx, prompt, unavailableSummary)
}

func (p *GeminiProvider) ExplainClause(ctx context.Context, clauseText string) string {
	prompt := "Explain this contract clause in plain language, including any obligations or restrictions it creates:\n\n" +
		clauseText
	return p.generate(ctx, prompt, unavailableExplanation)
}

func (p *GeminiProvider) SuggestAlternative(ctx context.Context, clauseText string) string {
	prompt := "Suggest a fairer alternative wording for this contract clause:\n\n" + clauseText
	return p.generate(ctx, prompt, unavailableSuggestion)
}

// generate runs one prompt and collapses every failure mode (timeout,
// quota, auth, empty candidates) into the degraded fallback string.
func (p *GeminiProvider) generate(ctx context.Context, prompt, fallback string) string {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		slog.Warn("genai request failed", "error", err)
		return fallback
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
		break
	}

	result := strings.TrimSpace(b.String())
	if result == "" {
		slog.Warn("genai returned no text")
		return fallback
	}
	return result
}

// truncateText cuts s to at most limit bytes without splitting a rune.
func truncateText(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
