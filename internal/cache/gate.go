package cache

import (
	"log/slog"
	"time"
)

// Category selects which staleness threshold applies.
type Category string

const (
	Posts      Category = "posts"
	Themes     Category = "themes"
	Subreddits Category = "subreddits"
)

// Only Posts is consulted by the request path today; the other
// thresholds are kept for the data they gate in storage.
var ttls = map[Category]time.Duration{
	Posts:      12 * time.Hour,
	Themes:     7 * 24 * time.Hour,
	Subreddits: 24 * time.Hour,
}

// Gate decides whether stored data is still fresh enough to serve
// without re-fetching.
type Gate struct {
	now    func() time.Time
	logger *slog.Logger
}

func NewGate(logger *slog.Logger) *Gate {
	return &Gate{
		now:    time.Now,
		logger: logger.With("component", "cache"),
	}
}

// IsFresh reports whether last is within the category's threshold.
// A nil timestamp is always stale.
func (g *Gate) IsFresh(last *time.Time, cat Category) bool {
	if last == nil {
		g.logger.Debug("no timestamp recorded, treating as stale", "category", cat)
		return false
	}

	fresh := g.now().Sub(*last) < ttls[cat]
	g.logger.Debug("freshness check",
		"category", cat,
		"last", last,
		"fresh", fresh,
	)
	return fresh
}

// TTL returns the configured threshold for a category.
func TTL(cat Category) time.Duration {
	return ttls[cat]
}
