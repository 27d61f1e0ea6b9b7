package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/reflectlabs/feedback-analyzer/internal/domain"
	"github.com/reflectlabs/feedback-analyzer/internal/service/feedback"
)

// feedbackService defines the minimal interface needed by FeedbackHandler.
type feedbackService interface {
	Submit(ctx context.Context, input feedback.SubmitInput) (*feedback.SubmitResult, error)
}

// FeedbackHandler serves the feedback intake endpoint.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

type submitRequest struct {
	Source   string          `json:"source"`
	Message  string          `json:"message"`
	Author   *string         `json:"author,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

type submitResponse struct {
	Success  bool           `json:"success"`
	ID       string         `json:"id"`
	Analysis analysisLabels `json:"analysis"`
	Message  string         `json:"message"`
}

type analysisLabels struct {
	Sentiment string `json:"sentiment"`
	Theme     string `json:"theme"`
	Urgency   string `json:"urgency"`
}

// Submit handles POST /api/feedback.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Submit(r.Context(), feedback.SubmitInput{
		Source:   req.Source,
		Message:  req.Message,
		Author:   req.Author,
		Metadata: req.Metadata,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "submit feedback failed", slog.String("error", err.Error()))
		writeErrorDetails(w, http.StatusInternalServerError, "failed to submit feedback", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Success: true,
		ID:      result.ID.String(),
		Analysis: analysisLabels{
			Sentiment: result.Sentiment.String(),
			Theme:     result.Theme.String(),
			Urgency:   result.Urgency.String(),
		},
		Message: "Feedback submitted successfully",
	})
}
