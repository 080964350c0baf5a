// Package log writes categorised debug lines to a file. Logging is off unless
// Init is called, which happens when --debug or STAMPDELTA_DEBUG is set.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/stampdelta/internal/pubsub"
)

// DebugEnv turns on debug logging when set to a non-empty value.
const DebugEnv = "STAMPDELTA_DEBUG"

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level. Unknown names are LevelDebug.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelDebug
	}
}

// Category tags the subsystem a line came from.
type Category string

const (
	CatDB      Category = "db"      // bookmark and settings storage
	CatConfig  Category = "config"  // config load and save
	CatUI      Category = "ui"      // TUI updates
	CatWatcher Category = "watcher" // database file events
	CatCache   Category = "cache"
	CatCLI     Category = "cli"
)

type logger struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
	min    Level
	events *pubsub.Broker[string]
}

var (
	mu  sync.RWMutex
	std *logger
)

// DebugRequested reports whether the environment asks for debug logging.
func DebugRequested() bool {
	return os.Getenv(DebugEnv) != ""
}

// Init starts logging to path through tea.LogToFile. The returned function
// closes the file.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("opening debug log %s: %w", path, err)
	}
	install(f, f)
	return func() { Stop() }, nil
}

// InitWriter logs to w. It is used by tests and by callers that already own
// the destination.
func InitWriter(w io.Writer) {
	install(w, nil)
}

func install(w io.Writer, c io.Closer) {
	mu.Lock()
	defer mu.Unlock()
	if std != nil {
		std.shutdown()
	}
	std = &logger{out: w, closer: c, min: LevelDebug, events: pubsub.NewBroker[string]()}
}

// Stop turns logging off and closes the destination opened by Init.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if std != nil {
		std.shutdown()
		std = nil
	}
}

func (l *logger) shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events.Close()
	if l.closer != nil {
		_ = l.closer.Close()
	}
}

// SetMinLevel drops lines below level.
func SetMinLevel(level Level) {
	mu.RLock()
	defer mu.RUnlock()
	if std != nil {
		std.mu.Lock()
		std.min = level
		std.mu.Unlock()
	}
}

// Enabled reports whether a destination is installed.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return std != nil
}

func Debug(cat Category, msg string, kv ...any) { write(LevelDebug, cat, msg, kv) }
func Info(cat Category, msg string, kv ...any)  { write(LevelInfo, cat, msg, kv) }
func Warn(cat Category, msg string, kv ...any)  { write(LevelWarn, cat, msg, kv) }
func Error(cat Category, msg string, kv ...any) { write(LevelError, cat, msg, kv) }

// ErrorErr logs err under the "error" key.
func ErrorErr(cat Category, msg string, err error, kv ...any) {
	text := "<nil>"
	if err != nil {
		text = err.Error()
	}
	write(LevelError, cat, msg, append(kv, "error", text))
}

func write(level Level, cat Category, msg string, kv []any) {
	mu.RLock()
	l := std
	mu.RUnlock()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.min {
		return
	}

	var b strings.Builder
	// 2026-10-15T10:45:00 [WARN] [db] message key=value
	fmt.Fprintf(&b, "%s [%s] [%s] %s", time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 == 1 {
		fmt.Fprintf(&b, " %v=<missing>", kv[len(kv)-1])
	}
	b.WriteByte('\n')
	line := b.String()

	_, _ = io.WriteString(l.out, line)
	l.events.Publish(pubsub.Logged, line)
}

// Subscribe streams every line written after the call. It returns nil when
// logging is off.
func Subscribe(ctx context.Context) *pubsub.Listener[string] {
	mu.RLock()
	defer mu.RUnlock()
	if std == nil {
		return nil
	}
	return pubsub.Listen(ctx, std.events)
}
