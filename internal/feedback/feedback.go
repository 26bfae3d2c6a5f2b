package feedback

import (
	"context"
	"errors"
	"time"
)

// AnonymousUser is substituted when feedback arrives without a name.
const AnonymousUser = "Anonymous"

// ErrEmptyText is returned when a submission carries no feedback text.
var ErrEmptyText = errors.New("feedback text is empty")

// Entry is one piece of user feedback.
type Entry struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"timestamp"`
}

// Store persists feedback entries and the like counter.
type Store interface {
	// AddEntry stores a new feedback entry.
	AddEntry(ctx context.Context, e Entry) error
	// ListEntries returns all feedback, most recent first.
	ListEntries(ctx context.Context) ([]Entry, error)
	// LikeCount returns the current like total.
	LikeCount(ctx context.Context) (int64, error)
	// IncrementLikes bumps the counter and returns the new total. The
	// store does not enforce one-like-per-user; that flag lives with the
	// client.
	IncrementLikes(ctx context.Context) (int64, error)
}
