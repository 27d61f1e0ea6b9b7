// Package rest wires the HTTP surface of the feedback analyzer: intake,
// analysis, health, and the HTML dashboard.
package rest

import "net/http"

// NewRouter builds the route table. Middleware (request ID, logging,
// recovery, CORS) is applied by the caller around the returned handler.
func NewRouter(
	fb *FeedbackHandler,
	an *AnalyzeHandler,
	health *HealthHandler,
	dash *DashboardHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/feedback", fb.Submit)
	mux.HandleFunc("GET /api/analyze", an.Analyze)
	mux.HandleFunc("GET /api/health", health.Health)
	mux.HandleFunc("GET /{$}", dash.Dashboard)
	mux.HandleFunc("GET /index.html", dash.Dashboard)

	return mux
}
