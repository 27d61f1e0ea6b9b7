package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const summarySystem = "You are a product manager assistant. Provide concise summaries."

// NoFeedbackSummary is returned when the analysis window contains no records.
const NoFeedbackSummary = "No feedback available for this period."

// maxSummaryItems caps how many messages are sent to the model.
const maxSummaryItems = 20

// Summarize produces a 2-3 sentence executive summary of the given messages.
// It never fails: an empty input yields NoFeedbackSummary, and any inference
// failure yields a generic count-based sentence.
func (a *Analyzer) Summarize(ctx context.Context, messages []string) string {
	if len(messages) == 0 {
		return NoFeedbackSummary
	}

	text, err := a.summarizeLLM(ctx, messages)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			a.log.WarnContext(ctx, "inference summarization failed, using fallback",
				slog.String("error", err.Error()),
			)
		}
		return fmt.Sprintf("Analyzed %d feedback items. Review individual items for details.", len(messages))
	}

	return strings.TrimSpace(text)
}

func (a *Analyzer) summarizeLLM(ctx context.Context, messages []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	items := messages
	if len(items) > maxSummaryItems {
		items = items[:maxSummaryItems]
	}

	prompt := fmt.Sprintf(`Summarize these customer feedback items in 2-3 sentences, highlighting key trends and priorities:

- %s

Be concise and actionable.`, strings.Join(items, "\n- "))

	return a.llm.Complete(ctx, CompletionRequest{
		System:      summarySystem,
		Prompt:      prompt,
		MaxTokens:   a.maxTokens,
		Temperature: a.summaryTemp,
	})
}
