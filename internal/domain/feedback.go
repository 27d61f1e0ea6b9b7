// Package domain holds the core entities and enumerations of the
// feedback-analyzer service. It has no dependencies on adapters or transport.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Feedback is a single classified feedback record.
//
// Invariant: every persisted Feedback carries Sentiment, Theme and Urgency
// populated — classification (AI or fallback) happens before the insert,
// never after.
type Feedback struct {
	ID        uuid.UUID       `json:"id"`
	Source    Source          `json:"source"`
	Message   string          `json:"message"`
	Author    *string         `json:"author,omitempty"`
	Sentiment Sentiment       `json:"sentiment"`
	Theme     Theme           `json:"theme"`
	Urgency   Urgency         `json:"urgency"`
	Summary   string          `json:"summary,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// SentimentStats holds per-sentiment record counts over a window.
type SentimentStats struct {
	Total    int
	Positive int
	Negative int
	Neutral  int
}
