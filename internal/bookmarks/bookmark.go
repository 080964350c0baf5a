// Package bookmarks defines the bookmark domain: saved POSIX timestamps that
// can be starred, edited and removed, plus a small settings store.
package bookmarks

import (
	"context"
	"errors"
	"time"
)

// DefaultLimit is the number of rows List shows when no limit is configured.
const DefaultLimit = 100

// Domain errors.
var (
	ErrNotFound  = errors.New("bookmark not found")
	ErrDuplicate = errors.New("bookmark already exists")
	ErrStarred   = errors.New("starred bookmarks cannot be deleted")
)

// Bookmark is a saved timestamp.
type Bookmark struct {
	ID        int64
	GUID      string
	Timestamp int64
	Starred   bool
	CreatedAt time.Time
}

// Repository persists bookmarks. Timestamps are unique across the store.
type Repository interface {
	// Add stores ts. It returns ErrDuplicate when ts is already saved.
	Add(ctx context.Context, ts int64) (*Bookmark, error)
	// Get returns the bookmark for ts or ErrNotFound.
	Get(ctx context.Context, ts int64) (*Bookmark, error)
	// List returns every starred bookmark newest first, followed by the
	// newest regular bookmarks so that the total reaches limit. Starred rows
	// are never dropped, so the result can exceed limit.
	List(ctx context.Context, limit int) ([]*Bookmark, error)
	// ToggleStar flips the starred flag and returns the updated bookmark.
	ToggleStar(ctx context.Context, ts int64) (*Bookmark, error)
	// Edit moves a bookmark from old to updated.
	Edit(ctx context.Context, old, updated int64) error
	// Delete removes ts. Starred bookmarks return ErrStarred.
	Delete(ctx context.Context, ts int64) error
}

// Settings is a string key/value store.
type Settings interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// SettingTheme holds the selected theme preset key.
const SettingTheme = "theme"

// Partition splits bookmarks into starred and regular slices, keeping order.
func Partition(items []*Bookmark) (starred, regular []*Bookmark) {
	for _, b := range items {
		if b.Starred {
			starred = append(starred, b)
		} else {
			regular = append(regular, b)
		}
	}
	return starred, regular
}

// Index returns the position of ts in items or -1.
func Index(items []*Bookmark, ts int64) int {
	for i, b := range items {
		if b.Timestamp == ts {
			return i
		}
	}
	return -1
}
