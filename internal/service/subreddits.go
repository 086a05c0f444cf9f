package service

import (
	"context"
	"fmt"
	"log/slog"

	"reddit_analyzer/internal/domain"
)

// SubredditService backs the tracked-subreddit listing used by the UI.
type SubredditService struct {
	subreddits SubredditStore
	logger     *slog.Logger
}

func NewSubredditService(subreddits SubredditStore, logger *slog.Logger) *SubredditService {
	return &SubredditService{
		subreddits: subreddits,
		logger:     logger.With("component", "subreddits"),
	}
}

func (s *SubredditService) ListSubreddits(ctx context.Context) ([]domain.Subreddit, error) {
	return s.subreddits.FindAll(ctx)
}

// TrackSubreddit registers a subreddit by name, returning the existing
// record when it is already tracked.
func (s *SubredditService) TrackSubreddit(ctx context.Context, name string) (*domain.Subreddit, error) {
	sub, err := s.subreddits.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get subreddit: %w", err)
	}
	if sub != nil {
		return sub, nil
	}

	s.logger.Info("tracking new subreddit", "subreddit", name)
	sub, err = s.subreddits.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create subreddit: %w", err)
	}
	return sub, nil
}
