// Package api exposes the HTTP surface over the posts and themes
// workflows.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the chi router with the standard middleware stack.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Healthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/subreddits", h.ListSubreddits)
		r.Post("/subreddits", h.TrackSubreddit)

		r.Route("/subreddit/{name}", func(r chi.Router) {
			r.Get("/posts", h.GetSubredditPosts)
			r.Post("/themes", h.AnalyzePostThemes)
		})
	})

	return r
}
