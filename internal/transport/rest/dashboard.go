package rest

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

const (
	dashboardRecentLimit = 30
	dashboardStatsDays   = 7
)

// dashboardReader defines the read surface needed by the dashboard view.
type dashboardReader interface {
	ListWindow(ctx context.Context, days int, source domain.Source, limit int) ([]*domain.Feedback, error)
	SentimentStats(ctx context.Context, days int) (*domain.SentimentStats, error)
}

// DashboardHandler renders the HTML dashboard.
type DashboardHandler struct {
	repo dashboardReader
	log  *slog.Logger
	tmpl *template.Template
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(repo dashboardReader, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		repo: repo,
		log:  logger.With("handler", "dashboard"),
		tmpl: template.Must(template.New("dashboard").Parse(dashboardTemplate)),
	}
}

type dashboardData struct {
	Total           int
	Positive        int
	Negative        int
	Neutral         int
	PositivePercent int
	NegativePercent int
	NeutralPercent  int
	Recent          []*domain.Feedback
}

// Dashboard handles GET / (and its /index.html alias). It shows the last 30
// records and 7-day sentiment
// stats; the 30-record window is wide (a year) so recent history survives
// quiet weeks.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recent, err := h.repo.ListWindow(ctx, 365, "", dashboardRecentLimit)
	if err != nil {
		h.log.ErrorContext(ctx, "dashboard list failed", slog.String("error", err.Error()))
		http.Error(w, "error loading dashboard", http.StatusInternalServerError)
		return
	}

	stats, err := h.repo.SentimentStats(ctx, dashboardStatsDays)
	if err != nil {
		h.log.ErrorContext(ctx, "dashboard stats failed", slog.String("error", err.Error()))
		http.Error(w, "error loading dashboard", http.StatusInternalServerError)
		return
	}

	data := dashboardData{
		Total:    stats.Total,
		Positive: stats.Positive,
		Negative: stats.Negative,
		Neutral:  stats.Neutral,
		Recent:   recent,
	}
	if stats.Total > 0 {
		data.PositivePercent = stats.Positive * 100 / stats.Total
		data.NegativePercent = stats.Negative * 100 / stats.Total
		data.NeutralPercent = stats.Neutral * 100 / stats.Total
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		h.log.ErrorContext(ctx, "dashboard render failed", slog.String("error", err.Error()))
	}
}

const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Feedback Analyzer Dashboard</title>
  <script src="https://cdn.tailwindcss.com"></script>
  <style>
    .sentiment-positive { background-color: #dcfce7; color: #166534; }
    .sentiment-negative { background-color: #fee2e2; color: #991b1b; }
    .sentiment-neutral { background-color: #f3f4f6; color: #374151; }
    .urgency-high { border-left: 4px solid #dc2626; }
    .urgency-medium { border-left: 4px solid #f59e0b; }
    .urgency-low { border-left: 4px solid #10b981; }
  </style>
</head>
<body class="bg-gray-50">
  <div class="min-h-screen">
    <header class="bg-white shadow">
      <div class="max-w-7xl mx-auto px-4 py-6 sm:px-6 lg:px-8">
        <h1 class="text-3xl font-bold text-gray-900">Feedback Analyzer</h1>
        <p class="mt-1 text-sm text-gray-600">Customer feedback analysis</p>
      </div>
    </header>
    <main class="max-w-7xl mx-auto px-4 py-8 sm:px-6 lg:px-8">
      <div class="grid grid-cols-1 md:grid-cols-4 gap-6 mb-8">
        <div class="bg-white rounded-lg shadow p-6">
          <p class="text-sm text-gray-600">Total (7 days)</p>
          <p class="text-3xl font-bold text-gray-900">{{.Total}}</p>
        </div>
        <div class="bg-white rounded-lg shadow p-6">
          <p class="text-sm text-gray-600">Positive</p>
          <p class="text-3xl font-bold text-green-600">{{.Positive}} ({{.PositivePercent}}%)</p>
        </div>
        <div class="bg-white rounded-lg shadow p-6">
          <p class="text-sm text-gray-600">Negative</p>
          <p class="text-3xl font-bold text-red-600">{{.Negative}} ({{.NegativePercent}}%)</p>
        </div>
        <div class="bg-white rounded-lg shadow p-6">
          <p class="text-sm text-gray-600">Neutral</p>
          <p class="text-3xl font-bold text-gray-600">{{.Neutral}} ({{.NeutralPercent}}%)</p>
        </div>
      </div>
      <div class="bg-white rounded-lg shadow">
        <div class="px-6 py-4 border-b border-gray-200">
          <h2 class="text-lg font-semibold text-gray-900">Recent Feedback</h2>
        </div>
        <ul class="divide-y divide-gray-200">
          {{range .Recent}}
          <li class="px-6 py-4 urgency-{{.Urgency}}">
            <div class="flex items-center justify-between">
              <span class="text-xs font-medium uppercase text-gray-500">{{.Source}}</span>
              <span class="px-2 py-1 rounded text-xs sentiment-{{.Sentiment}}">{{.Sentiment}}</span>
            </div>
            <p class="mt-2 text-sm text-gray-900">{{.Message}}</p>
            <p class="mt-1 text-xs text-gray-500">{{.Theme}} &middot; {{.CreatedAt.Format "2006-01-02 15:04"}}</p>
          </li>
          {{else}}
          <li class="px-6 py-8 text-center text-sm text-gray-500">No feedback yet.</li>
          {{end}}
        </ul>
      </div>
    </main>
  </div>
</body>
</html>
`
