package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"reddit_analyzer/internal/analyzer"
	"reddit_analyzer/internal/cache"
	"reddit_analyzer/internal/domain"
)

type SubredditStore interface {
	GetByName(ctx context.Context, name string) (*domain.Subreddit, error)
	Create(ctx context.Context, name string) (*domain.Subreddit, error)
	UpdateLastFetched(ctx context.Context, name string, fetchedAt time.Time) error
	FindAll(ctx context.Context) ([]domain.Subreddit, error)
	FindStale(ctx context.Context, cutoff time.Time) ([]domain.Subreddit, error)
}

type PostStore interface {
	UpsertBatch(ctx context.Context, posts []domain.Post) ([]domain.Post, error)
	FindBySubreddit(ctx context.Context, subredditID int64) ([]domain.Post, error)
}

type ThemeStore interface {
	FindByPostIDs(ctx context.Context, postIDs []int64) ([]domain.ThemeAnalysis, error)
	UpsertBatch(ctx context.Context, analyses []domain.ThemeAnalysis) ([]domain.ThemeAnalysis, error)
}

// PostProvider is the slice of PostService the theme workflow needs.
type PostProvider interface {
	GetSubredditPosts(ctx context.Context, name string) ([]domain.Post, error)
}

type Source interface {
	Name() string
	FetchRecent(ctx context.Context, subreddit string, windowHours int) ([]domain.Post, error)
}

type Classifier interface {
	ClassifyBatch(ctx context.Context, items []analyzer.Input) ([]domain.ThemeAnalysis, error)
}

type FreshnessGate interface {
	IsFresh(last *time.Time, cat cache.Category) bool
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishPost(ctx context.Context, post *domain.Post) error
	PublishAnalysis(ctx context.Context, analysis *domain.ThemeAnalysis) error
	Close() error
}
