package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reflectlabs/feedback-analyzer/internal/ai"
	"github.com/reflectlabs/feedback-analyzer/internal/config"
	"github.com/reflectlabs/feedback-analyzer/internal/domain"
	analysissvc "github.com/reflectlabs/feedback-analyzer/internal/service/analysis"
	feedbacksvc "github.com/reflectlabs/feedback-analyzer/internal/service/feedback"
	"github.com/reflectlabs/feedback-analyzer/internal/transport/middleware"
	"github.com/reflectlabs/feedback-analyzer/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// In-memory stand-ins for PostgreSQL, Redis, and the inference endpoint.
// The full HTTP surface (router, middleware, handlers, services) is real.
// ---------------------------------------------------------------------------

type memRepo struct {
	mu      sync.Mutex
	records []*domain.Feedback
}

func (r *memRepo) Create(_ context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *fb
	stored.CreatedAt = time.Now().UTC()
	// Newest first, matching the store's ORDER BY created_at DESC.
	r.records = append([]*domain.Feedback{&stored}, r.records...)
	return &stored, nil
}

func (r *memRepo) ListWindow(_ context.Context, days int, source domain.Source, limit int) ([]*domain.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	out := make([]*domain.Feedback, 0)
	for _, fb := range r.records {
		if fb.CreatedAt.Before(cutoff) {
			continue
		}
		if source != "" && source != "all" && fb.Source != source {
			continue
		}
		out = append(out, fb)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memRepo) SentimentStats(_ context.Context, days int) (*domain.SentimentStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	var stats domain.SentimentStats
	for _, fb := range r.records {
		if fb.CreatedAt.Before(cutoff) {
			continue
		}
		stats.Total++
		switch fb.Sentiment {
		case domain.SentimentPositive:
			stats.Positive++
		case domain.SentimentNegative:
			stats.Negative++
		case domain.SentimentNeutral:
			stats.Neutral++
		}
	}
	return &stats, nil
}

func (r *memRepo) Ping(context.Context) error { return nil }

type memCache struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string]string)}
}

func (c *memCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	return v, ok
}

func (c *memCache) Put(_ context.Context, key, payload string, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = payload
}

func (c *memCache) Ping(context.Context) error { return nil }

// scriptedLLM answers classification prompts with fixed JSON and summary
// prompts with fixed prose. A nil respond function simulates a dead endpoint.
type scriptedLLM struct {
	respond func(req ai.CompletionRequest) (string, error)
}

func (s *scriptedLLM) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	return s.respond(req)
}

// ---------------------------------------------------------------------------
// Server setup
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Repo   *memRepo
	Cache  *memCache
}

func setupTestServer(t *testing.T, llm *scriptedLLM) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	repo := &memRepo{}
	cache := newMemCache()

	analyzer := ai.NewAnalyzer(llm, config.AIConfig{
		MaxTokens:           1024,
		ClassifyTemperature: 0.3,
		SummaryTemperature:  0.5,
		Timeout:             5 * time.Second,
	}, logger)

	submitSvc := feedbacksvc.NewService(logger, repo, analyzer)
	analysisSvc := analysissvc.NewService(logger, repo, analyzer, cache, config.AnalysisConfig{
		CacheTTL:          300 * time.Second,
		DefaultPeriodDays: 7,
	})

	router := rest.NewRouter(
		rest.NewFeedbackHandler(submitSvc, logger),
		rest.NewAnalyzeHandler(analysisSvc, logger),
		rest.NewHealthHandler(repo, cache, "test"),
		rest.NewDashboardHandler(repo, logger),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         86400,
		}),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Repo:   repo,
		Cache:  cache,
	}
}

// postJSON posts a JSON body and decodes the JSON response.
func postJSON(t *testing.T, ts *testServer, path string, body any) (int, map[string]any) {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// getJSON fetches a path and decodes the JSON response.
func getJSON(t *testing.T, ts *testServer, path string) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}
