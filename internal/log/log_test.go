package log

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/stampdelta/internal/pubsub"
)

func TestWrite_Format(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Stop)

	Warn(CatDB, "slow query", "ms", 120, "orphan")

	line := buf.String()
	require.Contains(t, line, "[WARN] [db] slow query ms=120 orphan=<missing>")
	require.True(t, strings.HasSuffix(line, "\n"))
}

func TestMinLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Stop)

	SetMinLevel(LevelWarn)
	Info(CatUI, "hidden")
	ErrorErr(CatCLI, "failed", errors.New("boom"))

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[ERROR] [cli] failed error=boom")
}

func TestDisabledIsSilent(t *testing.T) {
	Stop()
	require.False(t, Enabled())
	require.Nil(t, Subscribe(context.Background()))
	Debug(CatCache, "nobody hears this")
}

func TestInit_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatConfig, "loaded", "path", "/tmp/x.yaml")
	cleanup()
	require.False(t, Enabled())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] loaded path=/tmp/x.yaml")
}

func TestSubscribe(t *testing.T) {
	InitWriter(&bytes.Buffer{})
	t.Cleanup(Stop)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := Subscribe(ctx)
	require.NotNil(t, l)
	Debug(CatWatcher, "changed")

	ev, ok := l.Next()().(pubsub.Event[string])
	require.True(t, ok)
	require.Equal(t, pubsub.Logged, ev.Kind)
	require.Contains(t, ev.Payload, "[watcher] changed")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelWarn, ParseLevel("Warning"))
	require.Equal(t, LevelError, ParseLevel("error"))
	require.Equal(t, LevelInfo, ParseLevel(" info "))
	require.Equal(t, LevelDebug, ParseLevel("verbose"))
	require.Equal(t, "UNKNOWN", Level(9).String())
}
