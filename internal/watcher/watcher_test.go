package watcher_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/stampdelta/internal/pubsub"
	"github.com/zjrosen/stampdelta/internal/watcher"
)

func start(t *testing.T, path string) <-chan pubsub.Event[watcher.Change] {
	t.Helper()
	w, err := watcher.New(path, 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	ch := w.Events().Subscribe(ctx)
	require.NoError(t, w.Run(ctx))
	return ch
}

func TestWatcher_CoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookmarks.db")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	ch := start(t, path)

	for i := range 5 {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprint(i)), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case ev := <-ch:
		require.Equal(t, pubsub.Changed, ev.Kind)
		require.Equal(t, path, ev.Payload.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change event")
	}

	select {
	case ev := <-ch:
		t.Fatalf("unexpected second event %+v", ev)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_WALCountsAsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookmarks.db")
	ch := start(t, path)

	require.NoError(t, os.WriteFile(path+"-wal", []byte("w"), 0o644))

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change event for the WAL file")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookmarks.db")
	ch := start(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("n"), 0o644))

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := watcher.New(filepath.Join(t.TempDir(), "nope", "bookmarks.db"), 0)
	require.NoError(t, err)

	err = w.Run(context.Background())
	require.Error(t, err)
}
