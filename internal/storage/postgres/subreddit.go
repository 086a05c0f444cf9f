package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"reddit_analyzer/internal/domain"
)

type SubredditStore struct {
	db *sqlx.DB
}

func NewSubredditStore(db *sqlx.DB) *SubredditStore {
	return &SubredditStore{db: db}
}

const subredditColumns = "id, name, last_fetched, created_at"

// GetByName returns the subreddit with the given name, or nil when none
// is tracked yet.
func (s *SubredditStore) GetByName(ctx context.Context, name string) (*domain.Subreddit, error) {
	var sub domain.Subreddit
	query := `SELECT ` + subredditColumns + ` FROM subreddits WHERE name = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sub, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Create inserts a subreddit with no last_fetched timestamp. If a
// concurrent request created it first, the existing row is returned.
func (s *SubredditStore) Create(ctx context.Context, name string) (*domain.Subreddit, error) {
	var sub domain.Subreddit
	query := `
		INSERT INTO subreddits (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING ` + subredditColumns

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sub, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return s.GetByName(ctx, name)
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubredditStore) UpdateLastFetched(ctx context.Context, name string, fetchedAt time.Time) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE subreddits SET last_fetched = $1 WHERE name = $2`,
		fetchedAt, name,
	)
	return err
}

func (s *SubredditStore) FindAll(ctx context.Context) ([]domain.Subreddit, error) {
	var subs []domain.Subreddit
	query := `SELECT ` + subredditColumns + ` FROM subreddits ORDER BY created_at DESC`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &subs, query); err != nil {
		return nil, err
	}
	return subs, nil
}

// FindStale returns subreddits never fetched or last fetched before the
// cutoff. Used by the background refresh loop.
func (s *SubredditStore) FindStale(ctx context.Context, cutoff time.Time) ([]domain.Subreddit, error) {
	var subs []domain.Subreddit
	query := `
		SELECT ` + subredditColumns + `
		FROM subreddits
		WHERE last_fetched IS NULL OR last_fetched < $1
		ORDER BY created_at`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &subs, query, cutoff); err != nil {
		return nil, err
	}
	return subs, nil
}
