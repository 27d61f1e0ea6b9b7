package feedback

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/reflectlabs/feedback-analyzer/internal/domain"
)

// Filter defines parameters for querying feedback records over a time window.
type Filter struct {
	// Days bounds the window: created_at >= now - Days days.
	// Days = 0 yields an empty window (cutoff is "now").
	Days int

	// Source restricts results to one channel. Empty string or "all"
	// matches every source. The adapter does not validate membership —
	// that is the transport boundary's job.
	Source domain.Source

	// Limit caps the number of returned rows. 0 means no limit.
	Limit int
}

// buildListQuery assembles the windowed SELECT for ListWindow.
// Results are always ordered most-recent-first.
func buildListQuery(f Filter, now time.Time) (string, []any, error) {
	cutoff := now.AddDate(0, 0, -f.Days)

	sel := psql.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"created_at": cutoff}).
		OrderBy("created_at DESC")

	if f.Source != "" && f.Source != "all" {
		sel = sel.Where(squirrel.Eq{"source": f.Source})
	}
	if f.Limit > 0 {
		sel = sel.Limit(uint64(f.Limit))
	}

	return sel.ToSql()
}
