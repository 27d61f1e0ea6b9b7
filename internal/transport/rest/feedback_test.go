package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflectlabs/feedback-analyzer/internal/ai"
	"github.com/reflectlabs/feedback-analyzer/internal/domain"
	"github.com/reflectlabs/feedback-analyzer/internal/service/feedback"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type feedbackServiceStub struct {
	submit func(ctx context.Context, input feedback.SubmitInput) (*feedback.SubmitResult, error)
}

func (s *feedbackServiceStub) Submit(ctx context.Context, input feedback.SubmitInput) (*feedback.SubmitResult, error) {
	return s.submit(ctx, input)
}

func TestFeedbackHandler_Submit_Created(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := &feedbackServiceStub{
		submit: func(ctx context.Context, input feedback.SubmitInput) (*feedback.SubmitResult, error) {
			assert.Equal(t, "twitter", input.Source)
			assert.Equal(t, "app crashed", input.Message)
			return &feedback.SubmitResult{
				ID:        id,
				Sentiment: domain.SentimentNegative,
				Theme:     domain.ThemeBug,
				Urgency:   domain.UrgencyHigh,
				Method:    ai.MethodAI,
			}, nil
		},
	}

	h := NewFeedbackHandler(svc, testLogger())

	body := `{"source":"twitter","message":"app crashed"}`
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Success  bool   `json:"success"`
		ID       string `json:"id"`
		Analysis struct {
			Sentiment string `json:"sentiment"`
			Theme     string `json:"theme"`
			Urgency   string `json:"urgency"`
		} `json:"analysis"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "negative", resp.Analysis.Sentiment)
	assert.Equal(t, "bug", resp.Analysis.Theme)
	assert.Equal(t, "high", resp.Analysis.Urgency)
	assert.Equal(t, "Feedback submitted successfully", resp.Message)
}

func TestFeedbackHandler_Submit_MalformedBody(t *testing.T) {
	t.Parallel()

	h := NewFeedbackHandler(&feedbackServiceStub{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid request body", resp["error"])
}

func TestFeedbackHandler_Submit_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &feedbackServiceStub{
		submit: func(ctx context.Context, input feedback.SubmitInput) (*feedback.SubmitResult, error) {
			return nil, domain.NewValidationError("source", "required")
		},
	}
	h := NewFeedbackHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(`{"message":"hi"}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "source")
}

func TestFeedbackHandler_Submit_InternalError(t *testing.T) {
	t.Parallel()

	svc := &feedbackServiceStub{
		submit: func(ctx context.Context, input feedback.SubmitInput) (*feedback.SubmitResult, error) {
			return nil, errors.New("db connection lost")
		},
	}
	h := NewFeedbackHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/feedback",
		strings.NewReader(`{"source":"twitter","message":"hi"}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed to submit feedback", resp["error"])
	assert.Contains(t, resp["details"], "db connection lost")
}
