package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/reflectlabs/feedback-analyzer/internal/domain"
	"github.com/reflectlabs/feedback-analyzer/internal/service/analysis"
)

// analysisService defines the minimal interface needed by AnalyzeHandler.
type analysisService interface {
	Analyze(ctx context.Context, input analysis.Input) (*analysis.Result, bool, error)
}

// AnalyzeHandler serves the aggregated analysis endpoint.
type AnalyzeHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalyzeHandler creates an AnalyzeHandler.
func NewAnalyzeHandler(svc analysisService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc, log: logger.With("handler", "analyze")}
}

// Analyze handles GET /api/analyze?period=<N>d&source=<src>.
// The X-Cache response header reports whether the payload was served from
// the response cache.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, cached, err := h.svc.Analyze(r.Context(), analysis.Input{
		Period: query.Get("period"),
		Source: query.Get("source"),
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "analyze feedback failed", slog.String("error", err.Error()))
		writeErrorDetails(w, http.StatusInternalServerError, "failed to analyze feedback", err.Error())
		return
	}

	if cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, http.StatusOK, result)
}
