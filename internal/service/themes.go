package service

import (
	"context"
	"fmt"
	"log/slog"

	"reddit_analyzer/internal/analyzer"
	"reddit_analyzer/internal/domain"
)

// ThemeService classifies posts into theme categories, reusing stored
// analyses so a post is never classified twice.
type ThemeService struct {
	posts      PostProvider
	themes     ThemeStore
	classifier Classifier
	publisher  Publisher
	logger     *slog.Logger
}

func NewThemeService(
	posts PostProvider,
	themes ThemeStore,
	classifier Classifier,
	publisher Publisher,
	logger *slog.Logger,
) *ThemeService {
	return &ThemeService{
		posts:      posts,
		themes:     themes,
		classifier: classifier,
		publisher:  publisher,
		logger:     logger.With("component", "themes"),
	}
}

// GetPostThemes returns analyses for the given posts, classifying only
// those without a stored analysis. When posts is empty the subreddit's
// posts are resolved through the posts workflow first. A second call
// with no new posts in between performs zero classification calls.
func (s *ThemeService) GetPostThemes(ctx context.Context, name string, posts []domain.Post) ([]domain.ThemeAnalysis, error) {
	if len(posts) == 0 {
		var err error
		posts, err = s.posts.GetSubredditPosts(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve posts: %w", err)
		}
	}
	if len(posts) == 0 {
		return nil, nil
	}

	postIDs := make([]int64, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	existing, err := s.themes.FindByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("find analyses: %w", err)
	}

	analyzed := make(map[int64]struct{}, len(existing))
	for _, a := range existing {
		analyzed[a.PostID] = struct{}{}
	}

	var toClassify []analyzer.Input
	for _, p := range posts {
		if _, ok := analyzed[p.ID]; ok {
			continue
		}
		content := ""
		if p.Content != nil {
			content = *p.Content
		}
		toClassify = append(toClassify, analyzer.Input{
			PostID:  p.ID,
			Title:   p.Title,
			Content: content,
		})
	}

	s.logger.Info("analyzing posts",
		"subreddit", name,
		"posts", len(posts),
		"cached", len(existing),
		"to_classify", len(toClassify),
	)

	if len(toClassify) == 0 {
		return existing, nil
	}

	fresh, err := s.classifier.ClassifyBatch(ctx, toClassify)
	if err != nil {
		return nil, fmt.Errorf("classify posts: %w", err)
	}

	stored, err := s.themes.UpsertBatch(ctx, fresh)
	if err != nil {
		return nil, fmt.Errorf("store analyses: %w", err)
	}

	s.publishAnalyses(ctx, stored)

	return append(existing, stored...), nil
}

func (s *ThemeService) publishAnalyses(ctx context.Context, analyses []domain.ThemeAnalysis) {
	if s.publisher == nil {
		return
	}
	for i := range analyses {
		if err := s.publisher.PublishAnalysis(ctx, &analyses[i]); err != nil {
			s.logger.Error("publish analysis event", "post_id", analyses[i].PostID, "error", err)
		}
	}
}
