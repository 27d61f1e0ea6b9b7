// Package feedback implements the feedback submission use case: validate,
// classify, persist.
package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/reflectlabs/feedback-analyzer/internal/ai"
	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

type feedbackRepo interface {
	Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error)
}

type classifier interface {
	Classify(ctx context.Context, message string) ai.Classification
}

// Service provides feedback intake operations.
type Service struct {
	repo       feedbackRepo
	classifier classifier
	log        *slog.Logger
}

// NewService creates a new feedback Service.
func NewService(logger *slog.Logger, repo feedbackRepo, cls classifier) *Service {
	return &Service{
		repo:       repo,
		classifier: cls,
		log:        logger.With("service", "feedback"),
	}
}

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	ID        uuid.UUID
	Sentiment domain.Sentiment
	Theme     domain.Theme
	Urgency   domain.Urgency
	Method    ai.Method
}

// Submit validates the input, classifies the message, and persists the
// record. Classification never blocks a submission — on inference failure the
// record carries fallback labels, and Method reports which path produced
// them.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cls := s.classifier.Classify(ctx, input.Message)

	created, err := s.repo.Create(ctx, &domain.Feedback{
		ID:        uuid.New(),
		Source:    domain.Source(input.Source),
		Message:   input.Message,
		Author:    trimOrNil(input.Author),
		Sentiment: cls.Sentiment,
		Theme:     cls.Theme,
		Urgency:   cls.Urgency,
		Summary:   cls.Summary,
		Metadata:  input.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	s.log.InfoContext(ctx, "feedback submitted",
		slog.String("id", created.ID.String()),
		slog.String("source", created.Source.String()),
		slog.String("sentiment", created.Sentiment.String()),
		slog.String("theme", created.Theme.String()),
		slog.String("urgency", created.Urgency.String()),
		slog.String("classification_method", string(cls.Method)),
	)

	return &SubmitResult{
		ID:        created.ID,
		Sentiment: created.Sentiment,
		Theme:     created.Theme,
		Urgency:   created.Urgency,
		Method:    cls.Method,
	}, nil
}
