package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service wraps a Store with the submission rules: trimmed text required,
// missing usernames default to Anonymous, like idempotence is driven by a
// client-held flag rather than server state.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a feedback service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submit stores a feedback entry and returns it.
func (s *Service) Submit(ctx context.Context, user, text string) (Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, ErrEmptyText
	}

	user = strings.TrimSpace(user)
	if user == "" {
		user = AnonymousUser
	}

	e := Entry{
		ID:        uuid.New().String(),
		User:      user,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.AddEntry(ctx, e); err != nil {
		return Entry{}, fmt.Errorf("failed to store feedback: %w", err)
	}
	return e, nil
}

// List returns all feedback, most recent first.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return entries, nil
}

// Likes returns the current like total.
func (s *Service) Likes(ctx context.Context) (int64, error) {
	return s.store.LikeCount(ctx)
}

// Like bumps the counter unless the client reports it already liked, in
// which case the current total is returned unchanged.
func (s *Service) Like(ctx context.Context, alreadyLiked bool) (int64, error) {
	if alreadyLiked {
		return s.store.LikeCount(ctx)
	}
	return s.store.IncrementLikes(ctx)
}
