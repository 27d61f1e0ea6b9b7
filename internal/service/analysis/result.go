package analysis

import "github.com/reflectlabs/feedback-analyzer/internal/domain"

// SentimentBreakdown holds record counts per sentiment. All keys are always
// serialized, even at zero.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// ThemeBreakdown holds record counts per theme. All keys are always
// serialized, even at zero.
type ThemeBreakdown struct {
	Bug            int `json:"bug"`
	FeatureRequest int `json:"feature_request"`
	Praise         int `json:"praise"`
	Complaint      int `json:"complaint"`
	Question       int `json:"question"`
}

// Result is the aggregated analysis view over a queried window. It is
// derived and ephemeral: it lives only for the cache TTL and has no identity
// beyond its cache key.
type Result struct {
	TotalFeedback      int                `json:"total_feedback"`
	Period             string             `json:"period"`
	SentimentBreakdown SentimentBreakdown `json:"sentiment_breakdown"`
	ThemeBreakdown     ThemeBreakdown     `json:"theme_breakdown"`
	UrgentIssues       []*domain.Feedback `json:"urgent_issues"`
	CommonThemes       []string           `json:"common_themes"`
	ExecutiveSummary   string             `json:"executive_summary"`
	RecentFeedback     []*domain.Feedback `json:"recent_feedback"`
}
