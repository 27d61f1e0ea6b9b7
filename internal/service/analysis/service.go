// Package analysis implements the aggregated analysis view: a windowed
// query over classified feedback, enriched with theme extraction and an
// AI-generated executive summary, memoized in a look-aside cache.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/reflectlabs/feedback-analyzer/internal/config"
	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

const (
	// urgentLimit caps the urgent_issues list.
	urgentLimit = 10
	// recentLimit caps the recent_feedback echo.
	recentLimit = 20
)

type feedbackLister interface {
	ListWindow(ctx context.Context, days int, source domain.Source, limit int) ([]*domain.Feedback, error)
}

type summarizer interface {
	Summarize(ctx context.Context, messages []string) string
}

type responseCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Put(ctx context.Context, key, payload string, ttl time.Duration)
}

// Service provides the analysis use case.
type Service struct {
	repo        feedbackLister
	summarizer  summarizer
	cache       responseCache
	ttl         time.Duration
	defaultDays int
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new analysis Service.
func NewService(
	logger *slog.Logger,
	repo feedbackLister,
	sum summarizer,
	cache responseCache,
	cfg config.AnalysisConfig,
) *Service {
	return &Service{
		repo:        repo,
		summarizer:  sum,
		cache:       cache,
		ttl:         cfg.CacheTTL,
		defaultDays: cfg.DefaultPeriodDays,
		log:         logger.With("service", "analysis"),
		now:         time.Now,
	}
}

// Analyze computes the aggregated view for the requested window. The bool
// return reports whether the result came from cache. Cache failures degrade
// to a miss; only store failures surface as errors.
func (s *Service) Analyze(ctx context.Context, input Input) (*Result, bool, error) {
	days := parsePeriod(input.Period, s.defaultDays)

	source := input.Source
	if source == "" {
		source = "all"
	}
	if source != "all" && !domain.Source(source).IsValid() {
		return nil, false, domain.NewValidationError("source", "unknown feedback source")
	}

	key := s.cacheKey(days, source)
	if payload, ok := s.cache.Get(ctx, key); ok {
		var res Result
		if err := json.Unmarshal([]byte(payload), &res); err == nil {
			return &res, true, nil
		}
		s.log.WarnContext(ctx, "discarding undecodable cache entry", slog.String("key", key))
	}

	records, err := s.repo.ListWindow(ctx, days, domain.Source(source), 0)
	if err != nil {
		return nil, false, fmt.Errorf("list feedback window: %w", err)
	}

	res := s.buildResult(ctx, days, records)

	if payload, err := json.Marshal(res); err == nil {
		s.cache.Put(ctx, key, string(payload), s.ttl)
	}

	return res, false, nil
}

// cacheKey composes the look-aside key from the window length, the source
// filter, and the calendar date of the window start. Entries are naturally
// date-partitioned: requests on either side of midnight compute fresh views.
func (s *Service) cacheKey(days int, source string) string {
	windowStart := s.now().UTC().AddDate(0, 0, -days)
	return fmt.Sprintf("analysis:%dd:%s:%s", days, source, windowStart.Format("2006-01-02"))
}

func (s *Service) buildResult(ctx context.Context, days int, records []*domain.Feedback) *Result {
	res := &Result{
		TotalFeedback: len(records),
		Period:        fmt.Sprintf("Last %d days", days),
		UrgentIssues:  make([]*domain.Feedback, 0, urgentLimit),
		CommonThemes:  []string{},
	}

	messages := make([]string, len(records))
	for i, fb := range records {
		messages[i] = fb.Message

		switch fb.Sentiment {
		case domain.SentimentPositive:
			res.SentimentBreakdown.Positive++
		case domain.SentimentNegative:
			res.SentimentBreakdown.Negative++
		case domain.SentimentNeutral:
			res.SentimentBreakdown.Neutral++
		}

		switch fb.Theme {
		case domain.ThemeBug:
			res.ThemeBreakdown.Bug++
		case domain.ThemeFeatureRequest:
			res.ThemeBreakdown.FeatureRequest++
		case domain.ThemePraise:
			res.ThemeBreakdown.Praise++
		case domain.ThemeComplaint:
			res.ThemeBreakdown.Complaint++
		case domain.ThemeQuestion:
			res.ThemeBreakdown.Question++
		}

		if fb.Urgency == domain.UrgencyHigh && len(res.UrgentIssues) < urgentLimit {
			res.UrgentIssues = append(res.UrgentIssues, fb)
		}
	}

	if themes := extractCommonThemes(records); len(themes) > 0 {
		res.CommonThemes = themes
	}

	res.ExecutiveSummary = s.summarizer.Summarize(ctx, messages)

	recent := records
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	res.RecentFeedback = recent
	if res.RecentFeedback == nil {
		res.RecentFeedback = make([]*domain.Feedback, 0)
	}

	return res
}
