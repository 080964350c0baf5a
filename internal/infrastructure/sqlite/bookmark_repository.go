package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/stampdelta/internal/bookmarks"
	"github.com/zjrosen/stampdelta/internal/log"
	"github.com/zjrosen/stampdelta/internal/tracing"
)

const bookmarkColumns = `id, guid, timestamp, starred, created_at`

// bookmarkRepository implements bookmarks.Repository using SQLite.
type bookmarkRepository struct {
	db  *sql.DB
	now func() time.Time
}

func newBookmarkRepository(db *sql.DB) *bookmarkRepository {
	return &bookmarkRepository{db: db, now: time.Now}
}

var _ bookmarks.Repository = (*bookmarkRepository)(nil)

func scanBookmark(scanner interface{ Scan(...any) error }) (*BookmarkModel, error) {
	var model BookmarkModel
	err := scanner.Scan(&model.ID, &model.GUID, &model.Timestamp, &model.Starred, &model.CreatedAt)
	return &model, err
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, sqlite3.CONSTRAINT_UNIQUE)
}

// Add inserts a new bookmark for ts.
func (r *bookmarkRepository) Add(ctx context.Context, ts int64) (b *bookmarks.Bookmark, err error) {
	ctx, span := tracing.Start(ctx, tracing.SpanRepoPrefix+"bookmarks.add",
		attribute.Int64(tracing.AttrTimestamp, ts))
	defer func() { tracing.End(span, err) }()

	b = &bookmarks.Bookmark{
		GUID:      uuid.NewString(),
		Timestamp: ts,
		CreatedAt: r.now().UTC().Truncate(time.Second),
	}
	model := toBookmarkModel(b)

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO bookmarks (guid, timestamp, starred, created_at) VALUES (?, ?, ?, ?)`,
		model.GUID, model.Timestamp, model.Starred, model.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %d", bookmarks.ErrDuplicate, ts)
		}
		return nil, fmt.Errorf("failed to insert bookmark: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	b.ID = id

	log.Debug(log.CatDB, "Bookmark added", "timestamp", ts, "id", id)
	return b, nil
}

// Get returns the bookmark saved for ts.
func (r *bookmarkRepository) Get(ctx context.Context, ts int64) (*bookmarks.Bookmark, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE timestamp = ?`, ts)
	model, err := scanBookmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", bookmarks.ErrNotFound, ts)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find bookmark: %w", err)
	}
	return model.toDomain(), nil
}

// List returns starred bookmarks then regular ones, each newest first.
func (r *bookmarkRepository) List(ctx context.Context, limit int) (out []*bookmarks.Bookmark, err error) {
	if limit <= 0 {
		limit = bookmarks.DefaultLimit
	}
	ctx, span := tracing.Start(ctx, tracing.SpanRepoPrefix+"bookmarks.list",
		attribute.Int(tracing.AttrLimit, limit))
	defer func() {
		span.SetAttributes(attribute.Int(tracing.AttrRows, len(out)))
		tracing.End(span, err)
	}()

	starred, err := r.query(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE starred = 1 ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}

	remaining := max(0, limit-len(starred))
	regular, err := r.query(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE starred = 0 ORDER BY id DESC LIMIT ?`,
		remaining)
	if err != nil {
		return nil, err
	}

	out = make([]*bookmarks.Bookmark, 0, len(starred)+len(regular))
	out = append(out, starred...)
	return append(out, regular...), nil
}

func (r *bookmarkRepository) query(ctx context.Context, query string, args ...any) ([]*bookmarks.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	var out []*bookmarks.Bookmark
	for rows.Next() {
		model, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		out = append(out, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmarks: %w", err)
	}
	return out, nil
}

// ToggleStar flips the starred flag of the bookmark for ts.
func (r *bookmarkRepository) ToggleStar(ctx context.Context, ts int64) (b *bookmarks.Bookmark, err error) {
	ctx, span := tracing.Start(ctx, tracing.SpanRepoPrefix+"bookmarks.toggle_star",
		attribute.Int64(tracing.AttrTimestamp, ts))
	defer func() { tracing.End(span, err) }()

	result, err := r.db.ExecContext(ctx,
		`UPDATE bookmarks SET starred = 1 - starred WHERE timestamp = ?`, ts)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle star: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("%w: %d", bookmarks.ErrNotFound, ts)
	}
	return r.Get(ctx, ts)
}

// Edit changes the timestamp of an existing bookmark.
func (r *bookmarkRepository) Edit(ctx context.Context, old, updated int64) (err error) {
	ctx, span := tracing.Start(ctx, tracing.SpanRepoPrefix+"bookmarks.edit",
		attribute.Int64(tracing.AttrTimestamp, old))
	defer func() { tracing.End(span, err) }()

	result, err := r.db.ExecContext(ctx,
		`UPDATE bookmarks SET timestamp = ? WHERE timestamp = ?`, updated, old)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %d", bookmarks.ErrDuplicate, updated)
		}
		return fmt.Errorf("failed to edit bookmark: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", bookmarks.ErrNotFound, old)
	}

	log.Debug(log.CatDB, "Bookmark edited", "old", old, "new", updated)
	return nil
}

// Delete removes the bookmark for ts unless it is starred.
func (r *bookmarkRepository) Delete(ctx context.Context, ts int64) (err error) {
	ctx, span := tracing.Start(ctx, tracing.SpanRepoPrefix+"bookmarks.delete",
		attribute.Int64(tracing.AttrTimestamp, ts))
	defer func() { tracing.End(span, err) }()

	result, err := r.db.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE timestamp = ? AND starred = 0`, ts)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	if n, _ := result.RowsAffected(); n > 0 {
		log.Debug(log.CatDB, "Bookmark deleted", "timestamp", ts)
		return nil
	}

	// Nothing deleted: either missing or starred.
	if _, err := r.Get(ctx, ts); err != nil {
		return err
	}
	return fmt.Errorf("%w: %d", bookmarks.ErrStarred, ts)
}
