package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"reddit_analyzer/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = "id, subreddit_id, reddit_id, title, content, score, num_comments, url, created_at, fetched_at"

// UpsertBatch inserts posts in one statement and returns the rows that
// were actually inserted. A reddit_id already in the store is left
// untouched (insert-or-ignore): scores and comment counts are not
// refreshed here.
func (s *PostStore) UpsertBatch(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	if len(posts) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO posts (subreddit_id, reddit_id, title, content, score, num_comments, url, created_at) VALUES `)

	args := make([]any, 0, len(posts)*8)
	for i, p := range posts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 8; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*8 + j + 1))
		}
		sb.WriteString(")")
		args = append(args,
			p.SubredditID,
			p.RedditID,
			p.Title,
			p.Content,
			p.Score,
			p.NumComments,
			p.URL,
			p.CreatedAt,
		)
	}
	sb.WriteString(` ON CONFLICT (reddit_id) DO NOTHING RETURNING ` + postColumns)

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stored []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		stored = append(stored, p)
	}
	return stored, rows.Err()
}

func (s *PostStore) FindBySubreddit(ctx context.Context, subredditID int64) ([]domain.Post, error) {
	var posts []domain.Post
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE subreddit_id = $1
		ORDER BY created_at DESC`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &posts, query, subredditID); err != nil {
		return nil, err
	}
	return posts, nil
}

// FindRecent returns posts created within the last hours, newest first.
func (s *PostStore) FindRecent(ctx context.Context, subredditID int64, hours int) ([]domain.Post, error) {
	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)

	var posts []domain.Post
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE subreddit_id = $1 AND created_at >= $2
		ORDER BY created_at DESC`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &posts, query, subredditID, cutoff); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateScores refreshes vote and comment counts for already-stored
// posts, used when a scheduled refresh re-sees a known reddit_id.
func (s *PostStore) UpdateScores(ctx context.Context, updates []domain.ScoreUpdate) error {
	ex := GetExecutor(ctx, s.db)
	for _, u := range updates {
		_, err := ex.ExecContext(ctx,
			`UPDATE posts SET score = $1, num_comments = $2 WHERE id = $3`,
			u.Score, u.NumComments, u.ID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
