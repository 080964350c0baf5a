package sqlite

import (
	"time"

	"github.com/zjrosen/stampdelta/internal/bookmarks"
)

// BookmarkModel is the database row for the bookmarks table.
type BookmarkModel struct {
	ID        int64
	GUID      string
	Timestamp int64
	Starred   bool
	CreatedAt int64 // Unix timestamp
}

func toBookmarkModel(b *bookmarks.Bookmark) *BookmarkModel {
	return &BookmarkModel{
		ID:        b.ID,
		GUID:      b.GUID,
		Timestamp: b.Timestamp,
		Starred:   b.Starred,
		CreatedAt: b.CreatedAt.Unix(),
	}
}

func (m *BookmarkModel) toDomain() *bookmarks.Bookmark {
	return &bookmarks.Bookmark{
		ID:        m.ID,
		GUID:      m.GUID,
		Timestamp: m.Timestamp,
		Starred:   m.Starred,
		CreatedAt: time.Unix(m.CreatedAt, 0).UTC(),
	}
}
