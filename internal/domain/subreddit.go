package domain

import "time"

type Subreddit struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	LastFetched *time.Time `db:"last_fetched" json:"last_fetched"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

type Post struct {
	ID          int64     `db:"id" json:"id"`
	SubredditID int64     `db:"subreddit_id" json:"subreddit_id"`
	RedditID    string    `db:"reddit_id" json:"reddit_id"`
	Title       string    `db:"title" json:"title"`
	Content     *string   `db:"content" json:"content"`
	Score       int       `db:"score" json:"score"`
	NumComments int       `db:"num_comments" json:"num_comments"`
	URL         string    `db:"url" json:"url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	FetchedAt   time.Time `db:"fetched_at" json:"fetched_at"`
}

// ScoreUpdate carries refreshed vote counts for an already-stored post.
type ScoreUpdate struct {
	ID          int64
	Score       int
	NumComments int
}
