package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/myinhand/payroll-calculator/internal/feedback"
)

type feedbackStore struct {
	pool *pgxpool.Pool
}

// NewFeedbackStore creates a postgres-backed feedback store.
func NewFeedbackStore(pool *pgxpool.Pool) feedback.Store {
	return &feedbackStore{pool: pool}
}

// Migrate creates the feedback tables when they do not exist yet and
// seeds the single-row like counter.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS feedback_entries (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS like_counter (
			id SMALLINT PRIMARY KEY,
			count BIGINT NOT NULL DEFAULT 0
		)`,
		`INSERT INTO like_counter (id, count) VALUES (1, 0) ON CONFLICT (id) DO NOTHING`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

func (s *feedbackStore) AddEntry(ctx context.Context, e feedback.Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO feedback_entries (id, username, body, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.pool.Exec(ctx, query, e.ID, e.User, e.Text, e.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert feedback entry: %w", err)
	}
	return nil
}

func (s *feedbackStore) ListEntries(ctx context.Context) ([]feedback.Entry, error) {
	query := `
		SELECT id, username, body, created_at
		FROM feedback_entries
		ORDER BY created_at DESC, id DESC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback entries: %w", err)
	}
	defer rows.Close()

	var entries []feedback.Entry
	for rows.Next() {
		var e feedback.Entry
		if err := rows.Scan(&e.ID, &e.User, &e.Text, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback entries: %w", err)
	}
	return entries, nil
}

func (s *feedbackStore) LikeCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx, `SELECT count FROM like_counter WHERE id = 1`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to read like count: %w", err)
	}
	return count, nil
}

func (s *feedbackStore) IncrementLikes(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx, `
		UPDATE like_counter SET count = count + 1 WHERE id = 1
		RETURNING count
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to increment likes: %w", err)
	}
	return count, nil
}
