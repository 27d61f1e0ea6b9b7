package domain

// Source identifies the channel a piece of feedback arrived from.
type Source string

const (
	SourceTwitter Source = "twitter"
	SourceDiscord Source = "discord"
	SourceGithub  Source = "github"
	SourceSupport Source = "support"
	SourceEmail   Source = "email"
)

func (s Source) String() string { return string(s) }

func (s Source) IsValid() bool {
	switch s {
	case SourceTwitter, SourceDiscord, SourceGithub, SourceSupport, SourceEmail:
		return true
	}
	return false
}

// Sources lists all valid feedback sources, in declaration order.
func Sources() []Source {
	return []Source{SourceTwitter, SourceDiscord, SourceGithub, SourceSupport, SourceEmail}
}

// Sentiment is the coarse polarity label assigned to a feedback message.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

func (s Sentiment) String() string { return string(s) }

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Theme is the category label assigned to a feedback message.
type Theme string

const (
	ThemeBug            Theme = "bug"
	ThemeFeatureRequest Theme = "feature_request"
	ThemePraise         Theme = "praise"
	ThemeComplaint      Theme = "complaint"
	ThemeQuestion       Theme = "question"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeBug, ThemeFeatureRequest, ThemePraise, ThemeComplaint, ThemeQuestion:
		return true
	}
	return false
}

// Urgency is the priority label assigned to a feedback message.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) String() string { return string(u) }

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}
