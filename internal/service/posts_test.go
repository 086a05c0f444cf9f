package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"reddit_analyzer/internal/cache"
	"reddit_analyzer/internal/config"
	"reddit_analyzer/internal/domain"
	"reddit_analyzer/internal/service/mocks"
)

type PostServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source     *mocks.MockSource
	subreddits *mocks.MockSubredditStore
	posts      *mocks.MockPostStore
	gate       *mocks.MockFreshnessGate
	txManager  *mocks.MockTransactionManager
	publisher  *mocks.MockPublisher

	service *PostService
	cfg     config.RefreshConfig
	logger  *slog.Logger
	frozen  time.Time
}

func (s *PostServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.subreddits = mocks.NewMockSubredditStore(s.ctrl)
	s.posts = mocks.NewMockPostStore(s.ctrl)
	s.gate = mocks.NewMockFreshnessGate(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.RefreshConfig{
		StaleAfter: 12 * time.Hour,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.frozen = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.service = NewPostService(
		s.source,
		s.subreddits,
		s.posts,
		s.gate,
		s.txManager,
		s.publisher,
		s.logger,
		s.cfg,
	)
	s.service.now = func() time.Time { return s.frozen }
}

func (s *PostServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}

func (s *PostServiceTestSuite) subreddit(id int64, name string, lastFetched *time.Time) *domain.Subreddit {
	return &domain.Subreddit{ID: id, Name: name, LastFetched: lastFetched}
}

func (s *PostServiceTestSuite) TestGetSubredditPosts_FreshServesFromStore() {
	ctx := context.Background()
	lastFetched := s.frozen.Add(-1 * time.Hour)
	sub := s.subreddit(1, "golang", &lastFetched)

	stored := []domain.Post{
		{ID: 10, SubredditID: 1, RedditID: "abc", Title: "generics question", Score: 42},
	}

	s.subreddits.EXPECT().GetByName(ctx, "golang").Return(sub, nil)
	s.gate.EXPECT().IsFresh(&lastFetched, cache.Posts).Return(true)
	s.posts.EXPECT().FindBySubreddit(ctx, int64(1)).Return(stored, nil)

	posts, err := s.service.GetSubredditPosts(ctx, "golang")

	s.NoError(err)
	s.Equal(stored, posts)
}

func (s *PostServiceTestSuite) TestGetSubredditPosts_StaleFetchesAndStores() {
	ctx := context.Background()
	lastFetched := s.frozen.Add(-13 * time.Hour)
	sub := s.subreddit(1, "golang", &lastFetched)

	fetched := []domain.Post{
		{RedditID: "abc", Title: "error wrapping", Score: 90},
		{RedditID: "def", Title: "slog adoption", Score: 15},
	}
	stored := []domain.Post{
		{ID: 10, SubredditID: 1, RedditID: "abc", Title: "error wrapping", Score: 90},
	}

	s.subreddits.EXPECT().GetByName(ctx, "golang").Return(sub, nil)
	s.gate.EXPECT().IsFresh(&lastFetched, cache.Posts).Return(false)
	s.source.EXPECT().FetchRecent(ctx, "golang", fetchWindowHours).Return(fetched, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.posts.EXPECT().UpsertBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, batch []domain.Post) ([]domain.Post, error) {
			s.Len(batch, 2)
			for _, p := range batch {
				s.Equal(int64(1), p.SubredditID)
			}
			return stored, nil
		},
	)
	s.subreddits.EXPECT().UpdateLastFetched(ctx, "golang", s.frozen.UTC()).Return(nil)

	s.publisher.EXPECT().PublishPost(ctx, &stored[0]).Return(nil)

	posts, err := s.service.GetSubredditPosts(ctx, "golang")

	s.NoError(err)
	s.Equal(stored, posts)
}

func (s *PostServiceTestSuite) TestGetSubredditPosts_FirstFetchCreatesSubreddit() {
	ctx := context.Background()
	sub := s.subreddit(7, "ollama", nil)

	fetched := []domain.Post{
		{RedditID: "xyz", Title: "local model setup", Score: 200},
	}
	stored := []domain.Post{
		{ID: 50, SubredditID: 7, RedditID: "xyz", Title: "local model setup", Score: 200},
	}

	s.subreddits.EXPECT().GetByName(ctx, "ollama").Return(nil, nil)
	s.subreddits.EXPECT().Create(ctx, "ollama").Return(sub, nil)
	s.gate.EXPECT().IsFresh((*time.Time)(nil), cache.Posts).Return(false)
	s.source.EXPECT().FetchRecent(ctx, "ollama", fetchWindowHours).Return(fetched, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.posts.EXPECT().UpsertBatch(ctx, gomock.Any()).Return(stored, nil)
	s.subreddits.EXPECT().UpdateLastFetched(ctx, "ollama", s.frozen.UTC()).Return(nil)

	s.publisher.EXPECT().PublishPost(ctx, &stored[0]).Return(nil)

	posts, err := s.service.GetSubredditPosts(ctx, "ollama")

	s.NoError(err)
	s.Equal(stored, posts)
}

func (s *PostServiceTestSuite) TestGetSubredditPosts_FetchErrorSkipsStore() {
	ctx := context.Background()
	lastFetched := s.frozen.Add(-2 * 24 * time.Hour)
	sub := s.subreddit(1, "golang", &lastFetched)

	upstream := &domain.UpstreamError{Service: "reddit", Err: errors.New("503")}

	s.subreddits.EXPECT().GetByName(ctx, "golang").Return(sub, nil)
	s.gate.EXPECT().IsFresh(&lastFetched, cache.Posts).Return(false)
	s.source.EXPECT().FetchRecent(ctx, "golang", fetchWindowHours).Return(nil, upstream)

	posts, err := s.service.GetSubredditPosts(ctx, "golang")

	s.Nil(posts)
	var ue *domain.UpstreamError
	s.ErrorAs(err, &ue)
	s.Equal("reddit", ue.Service)
}

func (s *PostServiceTestSuite) TestGetSubredditPosts_TransactionFailureReturnsError() {
	ctx := context.Background()
	sub := s.subreddit(1, "golang", nil)

	s.subreddits.EXPECT().GetByName(ctx, "golang").Return(sub, nil)
	s.gate.EXPECT().IsFresh((*time.Time)(nil), cache.Posts).Return(false)
	s.source.EXPECT().FetchRecent(ctx, "golang", fetchWindowHours).Return([]domain.Post{{RedditID: "abc"}}, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(errors.New("deadlock"))

	posts, err := s.service.GetSubredditPosts(ctx, "golang")

	s.Nil(posts)
	s.ErrorContains(err, "deadlock")
}

func (s *PostServiceTestSuite) TestGetSubredditPosts_PublishFailureIsNotFatal() {
	ctx := context.Background()
	sub := s.subreddit(1, "golang", nil)

	stored := []domain.Post{
		{ID: 10, SubredditID: 1, RedditID: "abc", Title: "worker pools"},
	}

	s.subreddits.EXPECT().GetByName(ctx, "golang").Return(sub, nil)
	s.gate.EXPECT().IsFresh((*time.Time)(nil), cache.Posts).Return(false)
	s.source.EXPECT().FetchRecent(ctx, "golang", fetchWindowHours).Return([]domain.Post{{RedditID: "abc"}}, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.posts.EXPECT().UpsertBatch(ctx, gomock.Any()).Return(stored, nil)
	s.subreddits.EXPECT().UpdateLastFetched(ctx, "golang", s.frozen.UTC()).Return(nil)

	s.publisher.EXPECT().PublishPost(ctx, &stored[0]).Return(errors.New("broker down"))

	posts, err := s.service.GetSubredditPosts(ctx, "golang")

	s.NoError(err)
	s.Equal(stored, posts)
}

func (s *PostServiceTestSuite) TestRefreshStale_RefreshesEachStaleSubreddit() {
	ctx := context.Background()
	cutoff := s.frozen.Add(-s.cfg.StaleAfter)

	stale := []domain.Subreddit{
		{ID: 1, Name: "golang"},
		{ID: 2, Name: "ollama"},
	}

	s.subreddits.EXPECT().FindStale(ctx, cutoff).Return(stale, nil)

	for _, sub := range stale {
		sub := sub
		s.subreddits.EXPECT().GetByName(ctx, sub.Name).Return(&sub, nil)
		s.gate.EXPECT().IsFresh((*time.Time)(nil), cache.Posts).Return(false)
		s.source.EXPECT().FetchRecent(ctx, sub.Name, fetchWindowHours).Return([]domain.Post{{RedditID: sub.Name + "-1"}}, nil)
		s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
		)
		s.posts.EXPECT().UpsertBatch(ctx, gomock.Any()).Return([]domain.Post{{ID: sub.ID * 10, SubredditID: sub.ID}}, nil)
		s.subreddits.EXPECT().UpdateLastFetched(ctx, sub.Name, s.frozen.UTC()).Return(nil)
		s.publisher.EXPECT().PublishPost(ctx, gomock.Any()).Return(nil)
	}

	stats, err := s.service.RefreshStale(ctx)

	s.NoError(err)
	s.Equal(2, stats.Subreddits)
	s.Equal(2, stats.Posts)
	s.Equal(0, stats.Errors)
}

func (s *PostServiceTestSuite) TestRefreshStale_CountsFailuresAndContinues() {
	ctx := context.Background()
	cutoff := s.frozen.Add(-s.cfg.StaleAfter)

	stale := []domain.Subreddit{
		{ID: 1, Name: "broken"},
		{ID: 2, Name: "golang"},
	}

	s.subreddits.EXPECT().FindStale(ctx, cutoff).Return(stale, nil)

	s.subreddits.EXPECT().GetByName(ctx, "broken").Return(nil, errors.New("connection refused"))

	s.subreddits.EXPECT().GetByName(ctx, "golang").Return(&stale[1], nil)
	s.gate.EXPECT().IsFresh((*time.Time)(nil), cache.Posts).Return(false)
	s.source.EXPECT().FetchRecent(ctx, "golang", fetchWindowHours).Return([]domain.Post{{RedditID: "abc"}}, nil)
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.posts.EXPECT().UpsertBatch(ctx, gomock.Any()).Return([]domain.Post{{ID: 20, SubredditID: 2}}, nil)
	s.subreddits.EXPECT().UpdateLastFetched(ctx, "golang", s.frozen.UTC()).Return(nil)
	s.publisher.EXPECT().PublishPost(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.RefreshStale(ctx)

	s.NoError(err)
	s.Equal(2, stats.Subreddits)
	s.Equal(1, stats.Posts)
	s.Equal(1, stats.Errors)
}
