// Package feedback implements the feedback repository using PostgreSQL.
// Records are insert-only: the service never updates or deletes a feedback
// row after it is committed.
package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/reflectlabs/feedback-analyzer/internal/adapter/postgres"
	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "feedback"

var columns = []string{
	"id", "source", "message", "author",
	"sentiment", "theme", "urgency", "summary",
	"metadata", "created_at",
}

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feedback repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new feedback record and returns the persisted entity with
// its store-assigned creation timestamp.
func (r *Repo) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	ins := psql.Insert(table).
		Columns("id", "source", "message", "author", "sentiment", "theme", "urgency", "summary", "metadata").
		Values(
			fb.ID,
			fb.Source,
			fb.Message,
			ptrStringToPgText(fb.Author),
			fb.Sentiment,
			fb.Theme,
			fb.Urgency,
			fb.Summary,
			[]byte(fb.Metadata),
		).
		Suffix("RETURNING created_at")

	sql, args, err := ins.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	result := *fb
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&result.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	return &result, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListWindow returns feedback records created in the last days days,
// most-recent-first. source "" or "all" matches every channel; limit 0 means
// no limit. An empty window returns an empty slice, not an error.
func (r *Repo) ListWindow(ctx context.Context, days int, source domain.Source, limit int) ([]*domain.Feedback, error) {
	sql, args, err := buildListQuery(Filter{Days: days, Source: source, Limit: limit}, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "feedback")
	}
	defer rows.Close()

	records := make([]*domain.Feedback, 0)
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		records = append(records, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	return records, nil
}

// SentimentStats returns per-sentiment counts for records created in the
// last days days.
func (r *Repo) SentimentStats(ctx context.Context, days int) (*domain.SentimentStats, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	sel := psql.Select(
		"COUNT(*) AS total",
		"COUNT(*) FILTER (WHERE sentiment = 'positive') AS positive",
		"COUNT(*) FILTER (WHERE sentiment = 'negative') AS negative",
		"COUNT(*) FILTER (WHERE sentiment = 'neutral') AS neutral",
	).
		From(table).
		Where(squirrel.GtOrEq{"created_at": cutoff})

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}

	var stats domain.SentimentStats
	err = r.pool.QueryRow(ctx, sql, args...).
		Scan(&stats.Total, &stats.Positive, &stats.Negative, &stats.Neutral)
	if err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	return &stats, nil
}

// Ping reports whether the underlying database is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func scanFeedback(row pgx.Row) (*domain.Feedback, error) {
	var (
		fb       domain.Feedback
		author   pgtype.Text
		metadata []byte
	)

	err := row.Scan(
		&fb.ID, &fb.Source, &fb.Message, &author,
		&fb.Sentiment, &fb.Theme, &fb.Urgency, &fb.Summary,
		&metadata, &fb.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if author.Valid {
		fb.Author = &author.String
	}
	if len(metadata) > 0 {
		fb.Metadata = metadata
	}

	return &fb, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
