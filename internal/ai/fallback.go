package ai

import (
	"strings"

	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

// Keyword lexicons for the deterministic fallback classifier.
var (
	positiveWords = []string{"love", "great", "amazing", "excellent", "thank", "perfect", "awesome"}
	negativeWords = []string{"broken", "error", "crash", "bug", "fail", "slow", "hate", "terrible"}

	bugCues     = []string{"bug", "error", "crash"}
	featureCues = []string{"feature", "would", "add"}
	praiseCues  = []string{"love", "thank", "great"}

	highUrgencyCues   = []string{"critical", "urgent", "broken"}
	mediumUrgencyCues = []string{"important", "need"}
)

// fallbackClassification labels a message with keyword rules.
//
// Theme cues apply in strict precedence: bug > feature > praise > question
// mark > (negative sentiment implies complaint) > question. Urgency cues for
// "high" win regardless of other content.
func fallbackClassification(message string) Classification {
	lower := strings.ToLower(message)

	sentiment := domain.SentimentNeutral
	switch {
	case containsAny(lower, positiveWords):
		sentiment = domain.SentimentPositive
	case containsAny(lower, negativeWords):
		sentiment = domain.SentimentNegative
	}

	theme := domain.ThemeQuestion
	switch {
	case containsAny(lower, bugCues):
		theme = domain.ThemeBug
	case containsAny(lower, featureCues):
		theme = domain.ThemeFeatureRequest
	case containsAny(lower, praiseCues):
		theme = domain.ThemePraise
	case strings.Contains(lower, "?"):
		theme = domain.ThemeQuestion
	case sentiment == domain.SentimentNegative:
		theme = domain.ThemeComplaint
	}

	urgency := domain.UrgencyLow
	switch {
	case containsAny(lower, highUrgencyCues):
		urgency = domain.UrgencyHigh
	case containsAny(lower, mediumUrgencyCues):
		urgency = domain.UrgencyMedium
	}

	return Classification{
		Sentiment: sentiment,
		Theme:     theme,
		Urgency:   urgency,
		Summary:   truncate(message, summaryLength),
		Method:    MethodFallback,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
