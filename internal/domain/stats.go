package domain

import "time"

// RefreshStats holds statistics about a scheduled refresh pass over
// stale subreddits.
type RefreshStats struct {
	Subreddits int
	Posts      int
	Errors     int
	Duration   time.Duration
}
