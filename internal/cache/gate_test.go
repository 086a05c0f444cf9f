package cache

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testGate(now time.Time) *Gate {
	return &Gate{
		now:    func() time.Time { return now },
		logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})),
	}
}

func TestIsFresh_NilTimestamp(t *testing.T) {
	g := testGate(time.Now())

	assert.False(t, g.IsFresh(nil, Posts))
	assert.False(t, g.IsFresh(nil, Themes))
	assert.False(t, g.IsFresh(nil, Subreddits))
}

func TestIsFresh_Posts(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := testGate(now)

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"just fetched", time.Minute, true},
		{"just under threshold", 12*time.Hour - time.Second, true},
		{"exactly at threshold", 12 * time.Hour, false},
		{"past threshold", 13 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := now.Add(-tt.age)
			assert.Equal(t, tt.want, g.IsFresh(&last, Posts))
		})
	}
}

func TestIsFresh_CategoryThresholds(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := testGate(now)

	// Two days old: stale for posts and subreddits, fresh for themes.
	last := now.Add(-48 * time.Hour)
	assert.False(t, g.IsFresh(&last, Posts))
	assert.False(t, g.IsFresh(&last, Subreddits))
	assert.True(t, g.IsFresh(&last, Themes))
}

func TestTTL(t *testing.T) {
	assert.Equal(t, 12*time.Hour, TTL(Posts))
	assert.Equal(t, 7*24*time.Hour, TTL(Themes))
	assert.Equal(t, 24*time.Hour, TTL(Subreddits))
}
