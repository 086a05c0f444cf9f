package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reddit_analyzer/internal/cache"
	"reddit_analyzer/internal/config"
	"reddit_analyzer/internal/domain"
)

// fetchWindowHours is how far back a refresh looks on the listing API.
const fetchWindowHours = 24

// PostService serves a subreddit's recent posts, fetching from the
// Reddit API only when the stored copy has gone stale.
type PostService struct {
	source     Source
	subreddits SubredditStore
	posts      PostStore
	gate       FreshnessGate
	txManager  TransactionManager
	publisher  Publisher
	logger     *slog.Logger
	cfg        config.RefreshConfig
	now        func() time.Time
}

func NewPostService(
	source Source,
	subreddits SubredditStore,
	posts PostStore,
	gate FreshnessGate,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.RefreshConfig,
) *PostService {
	return &PostService{
		source:     source,
		subreddits: subreddits,
		posts:      posts,
		gate:       gate,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger.With("component", "posts"),
		cfg:        cfg,
		now:        time.Now,
	}
}

// GetSubredditPosts returns the subreddit's posts, creating its record
// on first reference. A fresh last_fetched timestamp short-circuits to
// the store; otherwise the listing API is hit, the batch upsert and the
// timestamp update commit in one transaction, and the freshly stored
// items are returned. A re-fetch inside the window therefore returns
// only items not seen before (insert-or-ignore).
func (s *PostService) GetSubredditPosts(ctx context.Context, name string) ([]domain.Post, error) {
	sub, err := s.getOrCreate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get or create subreddit: %w", err)
	}

	if s.gate.IsFresh(sub.LastFetched, cache.Posts) {
		s.logger.Info("serving posts from store", "subreddit", name)
		return s.posts.FindBySubreddit(ctx, sub.ID)
	}

	fetched, err := s.source.FetchRecent(ctx, name, fetchWindowHours)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	for i := range fetched {
		fetched[i].SubredditID = sub.ID
	}

	var stored []domain.Post
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		stored, err = s.posts.UpsertBatch(txCtx, fetched)
		if err != nil {
			return fmt.Errorf("upsert posts: %w", err)
		}
		if err := s.subreddits.UpdateLastFetched(txCtx, name, s.now().UTC()); err != nil {
			return fmt.Errorf("update last fetched: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishPosts(ctx, stored)

	s.logger.Info("refreshed posts",
		"subreddit", name,
		"fetched", len(fetched),
		"stored", len(stored),
	)

	return stored, nil
}

// RefreshStale re-fetches every subreddit whose posts have gone stale.
// Called by the background refresh loop.
func (s *PostService) RefreshStale(ctx context.Context) (*domain.RefreshStats, error) {
	start := s.now()

	cutoff := s.now().Add(-s.cfg.StaleAfter)
	stale, err := s.subreddits.FindStale(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("find stale subreddits: %w", err)
	}

	stats := &domain.RefreshStats{Subreddits: len(stale)}
	for _, sub := range stale {
		posts, err := s.GetSubredditPosts(ctx, sub.Name)
		if err != nil {
			s.logger.Error("refresh failed", "subreddit", sub.Name, "error", err)
			stats.Errors++
			continue
		}
		stats.Posts += len(posts)
	}
	stats.Duration = time.Since(start)

	s.logger.Info("refresh pass completed",
		"subreddits", stats.Subreddits,
		"posts", stats.Posts,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *PostService) getOrCreate(ctx context.Context, name string) (*domain.Subreddit, error) {
	sub, err := s.subreddits.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if sub != nil {
		return sub, nil
	}

	s.logger.Info("tracking new subreddit", "subreddit", name)
	return s.subreddits.Create(ctx, name)
}

func (s *PostService) publishPosts(ctx context.Context, posts []domain.Post) {
	if s.publisher == nil {
		return
	}
	for i := range posts {
		if err := s.publisher.PublishPost(ctx, &posts[i]); err != nil {
			s.logger.Error("publish post event", "reddit_id", posts[i].RedditID, "error", err)
		}
	}
}
