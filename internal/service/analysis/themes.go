package analysis

import (
	"sort"
	"strings"

	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

// themeVocabulary is the fixed keyword set matched against problem reports.
var themeVocabulary = []string{
	"login", "upload", "dashboard", "api",
	"export", "search", "performance", "mobile",
}

// maxCommonThemes caps the ranked keyword list.
const maxCommonThemes = 5

// extractCommonThemes returns up to five vocabulary keywords ranked by how
// many problem records mention them. Only records with negative sentiment or
// high urgency contribute; each record increments a keyword at most once.
// Ties keep first-seen order.
func extractCommonThemes(records []*domain.Feedback) []string {
	counts := make(map[string]int)
	var order []string

	for _, fb := range records {
		if fb.Sentiment != domain.SentimentNegative && fb.Urgency != domain.UrgencyHigh {
			continue
		}

		words := strings.Fields(strings.ToLower(fb.Message))
		for _, keyword := range themeVocabulary {
			if !tokenContains(words, keyword) {
				continue
			}
			if _, seen := counts[keyword]; !seen {
				order = append(order, keyword)
			}
			counts[keyword]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxCommonThemes {
		order = order[:maxCommonThemes]
	}
	return order
}

// tokenContains reports whether any whitespace token contains keyword as a
// substring ("logins" matches "login").
func tokenContains(words []string, keyword string) bool {
	for _, w := range words {
		if strings.Contains(w, keyword) {
			return true
		}
	}
	return false
}
