package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"reddit_analyzer/internal/domain"
)

type ThemeStore struct {
	db *sqlx.DB
}

func NewThemeStore(db *sqlx.DB) *ThemeStore {
	return &ThemeStore{db: db}
}

const themeColumns = "id, post_id, categories, reasoning, analyzed_at"

func (s *ThemeStore) FindByPostIDs(ctx context.Context, postIDs []int64) ([]domain.ThemeAnalysis, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	var analyses []domain.ThemeAnalysis
	query := `SELECT ` + themeColumns + ` FROM theme_analyses WHERE post_id = ANY($1)`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &analyses, query, pq.Array(postIDs)); err != nil {
		return nil, err
	}
	return analyses, nil
}

// UpsertBatch inserts analyses and returns the inserted rows. A post
// that already has an analysis keeps it; the new one is silently
// dropped, mirroring the post store's duplicate policy.
func (s *ThemeStore) UpsertBatch(ctx context.Context, analyses []domain.ThemeAnalysis) ([]domain.ThemeAnalysis, error) {
	if len(analyses) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO theme_analyses (post_id, categories, reasoning) VALUES `)

	args := make([]any, 0, len(analyses)*3)
	for i, a := range analyses {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(i*3 + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*3 + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*3 + 3))
		sb.WriteString(")")
		args = append(args, a.PostID, a.Categories, a.Reasoning)
	}
	sb.WriteString(` ON CONFLICT (post_id) DO NOTHING RETURNING ` + themeColumns)

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stored []domain.ThemeAnalysis
	for rows.Next() {
		var a domain.ThemeAnalysis
		if err := rows.StructScan(&a); err != nil {
			return nil, err
		}
		stored = append(stored, a)
	}
	return stored, rows.Err()
}

// FindStale returns analyses older than the cutoff, candidates for
// re-analysis once their posts change.
func (s *ThemeStore) FindStale(ctx context.Context, cutoff time.Time) ([]domain.ThemeAnalysis, error) {
	var analyses []domain.ThemeAnalysis
	query := `SELECT ` + themeColumns + ` FROM theme_analyses WHERE analyzed_at < $1`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &analyses, query, cutoff); err != nil {
		return nil, err
	}
	return analyses, nil
}
