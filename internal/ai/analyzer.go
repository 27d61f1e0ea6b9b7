package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/reflectlabs/feedback-analyzer/internal/config"
	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

// Method records how a classification was produced.
type Method string

const (
	// MethodAI means the inference endpoint produced the label.
	MethodAI Method = "ai"
	// MethodFallback means keyword rules produced the label after an
	// inference call or parse failure.
	MethodFallback Method = "fallback"
)

// Classification is the structured label assigned to one feedback message.
type Classification struct {
	Sentiment domain.Sentiment
	Theme     domain.Theme
	Urgency   domain.Urgency
	Summary   string
	Method    Method
}

// completionClient is the minimal inference surface used by the Analyzer.
type completionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Analyzer classifies and summarizes feedback via the inference endpoint,
// degrading to deterministic fallbacks on any failure.
type Analyzer struct {
	llm          completionClient
	maxTokens    int64
	classifyTemp float64
	summaryTemp  float64
	timeout      time.Duration
	log          *slog.Logger
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(llm completionClient, cfg config.AIConfig, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		llm:          llm,
		maxTokens:    cfg.MaxTokens,
		classifyTemp: cfg.ClassifyTemperature,
		summaryTemp:  cfg.SummaryTemperature,
		timeout:      cfg.Timeout,
		log:          logger.With("component", "analyzer"),
	}
}

const classifySystem = "You are a feedback analysis assistant. Respond only with valid JSON."

// summaryLength caps the fallback summary at the first N characters of the message.
const summaryLength = 100

func classifyPrompt(message string) string {
	return fmt.Sprintf(`Analyze this customer feedback and respond with ONLY a JSON object (no markdown, no code blocks):

Feedback: %q

Provide:
1. sentiment: "positive", "negative", or "neutral"
2. theme: "bug", "feature_request", "praise", "complaint", or "question"
3. urgency: "low", "medium", or "high"
4. summary: brief one-sentence summary

Format: {"sentiment":"...","theme":"...","urgency":"...","summary":"..."}`, message)
}

// Classify assigns sentiment, theme, urgency, and a one-line summary to a
// feedback message. It never fails: inference or parse errors switch to the
// keyword fallback, recorded in the result's Method field.
func (a *Analyzer) Classify(ctx context.Context, message string) Classification {
	cls, err := a.classifyLLM(ctx, message)
	if err != nil {
		a.log.WarnContext(ctx, "inference classification failed, using fallback",
			slog.String("error", err.Error()),
		)
		return fallbackClassification(message)
	}
	return cls
}

// rawClassification is the untrusted shape of the model's JSON output.
type rawClassification struct {
	Sentiment string `json:"sentiment"`
	Theme     string `json:"theme"`
	Urgency   string `json:"urgency"`
	Summary   string `json:"summary"`
}

func (a *Analyzer) classifyLLM(ctx context.Context, message string) (Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.llm.Complete(ctx, CompletionRequest{
		System:      classifySystem,
		Prompt:      classifyPrompt(message),
		MaxTokens:   a.maxTokens,
		Temperature: a.classifyTemp,
	})
	if err != nil {
		return Classification{}, err
	}

	var out rawClassification
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		// The model sometimes wraps the object in prose or markdown fences.
		jsonStr, exErr := extractJSON(raw)
		if exErr != nil {
			return Classification{}, exErr
		}
		if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
			return Classification{}, fmt.Errorf("parse inference response: %w", err)
		}
	}

	// Enumeration membership checks: out-of-domain values get safe defaults.
	cls := Classification{
		Sentiment: domain.SentimentNeutral,
		Theme:     domain.ThemeQuestion,
		Urgency:   domain.UrgencyLow,
		Summary:   strings.TrimSpace(out.Summary),
		Method:    MethodAI,
	}
	if s := domain.Sentiment(out.Sentiment); s.IsValid() {
		cls.Sentiment = s
	}
	if t := domain.Theme(out.Theme); t.IsValid() {
		cls.Theme = t
	}
	if u := domain.Urgency(out.Urgency); u.IsValid() {
		cls.Urgency = u
	}
	if cls.Summary == "" {
		cls.Summary = truncate(message, summaryLength)
	}

	return cls, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	candidate := s[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}
	return candidate, nil
}

// truncate cuts s to at most n characters, never splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
