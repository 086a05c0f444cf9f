package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"reddit_analyzer/internal/domain"
)

// PostsService is the posts workflow the API exposes.
type PostsService interface {
	GetSubredditPosts(ctx context.Context, name string) ([]domain.Post, error)
}

// ThemesService is the theme-classification workflow the API exposes.
type ThemesService interface {
	GetPostThemes(ctx context.Context, name string, posts []domain.Post) ([]domain.ThemeAnalysis, error)
}

// SubredditsService backs the tracked-subreddit listing endpoints.
type SubredditsService interface {
	ListSubreddits(ctx context.Context) ([]domain.Subreddit, error)
	TrackSubreddit(ctx context.Context, name string) (*domain.Subreddit, error)
}

// Handler holds the HTTP handlers for the API surface.
type Handler struct {
	posts      PostsService
	themes     ThemesService
	subreddits SubredditsService
	logger     *slog.Logger
}

func NewHandler(posts PostsService, themes ThemesService, subreddits SubredditsService, logger *slog.Logger) *Handler {
	return &Handler{
		posts:      posts,
		themes:     themes,
		subreddits: subreddits,
		logger:     logger.With("component", "api"),
	}
}

// GetSubredditPosts handles GET /api/subreddit/{name}/posts.
func (h *Handler) GetSubredditPosts(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	posts, err := h.posts.GetSubredditPosts(r.Context(), name)
	if err != nil {
		h.logger.Error("get subreddit posts", "subreddit", name, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	writeJSON(w, http.StatusOK, posts)
}

// AnalyzePostThemes handles POST /api/subreddit/{name}/themes. The body
// is a JSON array of posts to analyze; an empty or absent body means
// "analyze the subreddit's current posts".
func (h *Handler) AnalyzePostThemes(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var posts []domain.Post
	if err := json.NewDecoder(r.Body).Decode(&posts); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	analyses, err := h.themes.GetPostThemes(r.Context(), name, posts)
	if err != nil {
		h.logger.Error("analyze post themes", "subreddit", name, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze posts")
		return
	}
	if analyses == nil {
		analyses = []domain.ThemeAnalysis{}
	}

	writeJSON(w, http.StatusOK, analyses)
}

// ListSubreddits handles GET /api/subreddits.
func (h *Handler) ListSubreddits(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subreddits.ListSubreddits(r.Context())
	if err != nil {
		h.logger.Error("list subreddits", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list subreddits")
		return
	}
	if subs == nil {
		subs = []domain.Subreddit{}
	}

	writeJSON(w, http.StatusOK, subs)
}

// TrackSubreddit handles POST /api/subreddits.
func (h *Handler) TrackSubreddit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Subreddit name is required")
		return
	}

	sub, err := h.subreddits.TrackSubreddit(r.Context(), req.Name)
	if err != nil {
		h.logger.Error("track subreddit", "subreddit", req.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to track subreddit")
		return
	}

	writeJSON(w, http.StatusCreated, sub)
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
