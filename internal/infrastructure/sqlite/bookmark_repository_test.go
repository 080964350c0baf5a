package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/stampdelta/internal/bookmarks"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "bookmarks.db"))
	require.NoError(t, err, "Failed to create test database")
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRepo(t *testing.T) bookmarks.Repository {
	t.Helper()
	return setupTestDB(t).BookmarkRepository()
}

func timestamps(items []*bookmarks.Bookmark) []int64 {
	out := make([]int64, len(items))
	for i, b := range items {
		out[i] = b.Timestamp
	}
	return out
}

func TestBookmarkRepository_Add(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	b, err := repo.Add(ctx, 1700000000)
	require.NoError(t, err)
	require.Greater(t, b.ID, int64(0))
	require.Equal(t, int64(1700000000), b.Timestamp)
	require.False(t, b.Starred)
	_, err = uuid.Parse(b.GUID)
	require.NoError(t, err, "GUID should be a UUID")

	found, err := repo.Get(ctx, 1700000000)
	require.NoError(t, err)
	require.Equal(t, b.ID, found.ID)
	require.Equal(t, b.GUID, found.GUID)
	require.WithinDuration(t, b.CreatedAt, found.CreatedAt, time.Second)
}

func TestBookmarkRepository_Add_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	_, err := repo.Add(ctx, 5)
	require.NoError(t, err)

	_, err = repo.Add(ctx, 5)
	require.ErrorIs(t, err, bookmarks.ErrDuplicate)
}

func TestBookmarkRepository_Add_NegativeAndZero(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	for _, ts := range []int64{0, -1, -62135596800} {
		_, err := repo.Add(ctx, ts)
		require.NoError(t, err)
	}
	list, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []int64{-62135596800, -1, 0}, timestamps(list))
}

func TestBookmarkRepository_Get_NotFound(t *testing.T) {
	_, err := setupTestRepo(t).Get(context.Background(), 99)
	require.ErrorIs(t, err, bookmarks.ErrNotFound)
}

func TestBookmarkRepository_List_StarredFirst(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	for _, ts := range []int64{10, 20, 30, 40, 50} {
		_, err := repo.Add(ctx, ts)
		require.NoError(t, err)
	}
	_, err := repo.ToggleStar(ctx, 20)
	require.NoError(t, err)
	_, err = repo.ToggleStar(ctx, 40)
	require.NoError(t, err)

	list, err := repo.List(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, []int64{40, 20, 50, 30, 10}, timestamps(list))
	require.True(t, list[0].Starred)
	require.True(t, list[1].Starred)
	require.False(t, list[2].Starred)
}

func TestBookmarkRepository_List_Limit(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	for ts := int64(1); ts <= 6; ts++ {
		_, err := repo.Add(ctx, ts)
		require.NoError(t, err)
	}
	_, err := repo.ToggleStar(ctx, 1)
	require.NoError(t, err)

	list, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 6, 5}, timestamps(list))
}

func TestBookmarkRepository_List_StarredExceedLimit(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	for ts := int64(1); ts <= 4; ts++ {
		_, err := repo.Add(ctx, ts)
		require.NoError(t, err)
	}
	for ts := int64(1); ts <= 3; ts++ {
		_, err := repo.ToggleStar(ctx, ts)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 2, 1}, timestamps(list), "starred rows are always listed")
}

func TestBookmarkRepository_List_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	for ts := int64(0); ts < bookmarks.DefaultLimit+5; ts++ {
		_, err := repo.Add(ctx, ts)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, bookmarks.DefaultLimit)
	require.Equal(t, int64(bookmarks.DefaultLimit+4), list[0].Timestamp)
}

func TestBookmarkRepository_ToggleStar(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	_, err := repo.Add(ctx, 7)
	require.NoError(t, err)

	b, err := repo.ToggleStar(ctx, 7)
	require.NoError(t, err)
	require.True(t, b.Starred)

	b, err = repo.ToggleStar(ctx, 7)
	require.NoError(t, err)
	require.False(t, b.Starred)

	_, err = repo.ToggleStar(ctx, 8)
	require.ErrorIs(t, err, bookmarks.ErrNotFound)
}

func TestBookmarkRepository_Edit(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	original, err := repo.Add(ctx, 100)
	require.NoError(t, err)
	_, err = repo.Add(ctx, 200)
	require.NoError(t, err)

	require.NoError(t, repo.Edit(ctx, 100, 150))

	_, err = repo.Get(ctx, 100)
	require.ErrorIs(t, err, bookmarks.ErrNotFound)
	moved, err := repo.Get(ctx, 150)
	require.NoError(t, err)
	require.Equal(t, original.GUID, moved.GUID, "edit keeps identity")

	require.ErrorIs(t, repo.Edit(ctx, 150, 200), bookmarks.ErrDuplicate)
	require.ErrorIs(t, repo.Edit(ctx, 999, 1000), bookmarks.ErrNotFound)
	require.NoError(t, repo.Edit(ctx, 150, 150), "editing to the same value is a no-op")
}

func TestBookmarkRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	_, err := repo.Add(ctx, 1)
	require.NoError(t, err)
	_, err = repo.Add(ctx, 2)
	require.NoError(t, err)
	_, err = repo.ToggleStar(ctx, 2)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 1))
	_, err = repo.Get(ctx, 1)
	require.ErrorIs(t, err, bookmarks.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, 2), bookmarks.ErrStarred)
	_, err = repo.Get(ctx, 2)
	require.NoError(t, err, "starred bookmark must survive delete")

	require.ErrorIs(t, repo.Delete(ctx, 3), bookmarks.ErrNotFound)
}

// TestBookmarkRepository_List_Property checks the ordering and limit rules
// against an in-memory model for random operation sequences.
func TestBookmarkRepository_List_Property(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		_, err := db.conn.Exec("DELETE FROM bookmarks")
		require.NoError(rt, err)
		repo := db.BookmarkRepository()

		ts := rapid.SliceOfNDistinct(rapid.Int64Range(-1000, 1000), 0, 20, rapid.ID[int64]).Draw(rt, "ts")
		starMask := rapid.SliceOfN(rapid.Bool(), len(ts), len(ts)).Draw(rt, "stars")
		limit := rapid.IntRange(1, 25).Draw(rt, "limit")

		var starred, regular []int64
		for i, v := range ts {
			_, err := repo.Add(ctx, v)
			require.NoError(rt, err)
			if starMask[i] {
				_, err := repo.ToggleStar(ctx, v)
				require.NoError(rt, err)
				starred = append([]int64{v}, starred...)
			} else {
				regular = append([]int64{v}, regular...)
			}
		}

		want := append([]int64{}, starred...)
		want = append(want, regular[:min(len(regular), max(0, limit-len(starred)))]...)

		list, err := repo.List(ctx, limit)
		require.NoError(rt, err)
		require.Equal(rt, want, append([]int64{}, timestamps(list)...))
	})
}
