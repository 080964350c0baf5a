package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/stampdelta/internal/app"
	"github.com/zjrosen/stampdelta/internal/cachemanager"
	"github.com/zjrosen/stampdelta/internal/clock"
	"github.com/zjrosen/stampdelta/internal/config"
	"github.com/zjrosen/stampdelta/internal/infrastructure/sqlite"
	"github.com/zjrosen/stampdelta/internal/log"
	"github.com/zjrosen/stampdelta/internal/pubsub"
	"github.com/zjrosen/stampdelta/internal/tracing"
	"github.com/zjrosen/stampdelta/internal/ui/styles"
	"github.com/zjrosen/stampdelta/internal/watcher"
)

var version = "dev"

// state is shared by every command of one invocation.
type state struct {
	cfgFile string
	debug   bool
	noColor bool

	cfg        config.Config
	configPath string
	clock      clock.Clock
	tracer     *tracing.Provider
	stopLog    func()
}

func newState() *state {
	return &state{clock: clock.Real{}}
}

// setup loads configuration and starts logging and tracing.
func (s *state) setup(cmd *cobra.Command) error {
	if s.debug || log.DebugRequested() {
		dir := config.Dir()
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0o750); err == nil {
			stop, err := log.Init(filepath.Join(dir, "debug.log"))
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
			} else {
				s.stopLog = stop
			}
		}
	}

	cfg, path, err := config.Load(config.DefaultPaths(s.cfgFile))
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	s.cfg, s.configPath = cfg, path

	if s.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if err := styles.ApplyTheme(cfg.Theme.StylesTheme()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	tc := cfg.Tracing
	tc.FilePath = config.ExpandHome(tc.FilePath)
	s.tracer, err = tracing.NewProvider(cmd.Context(), tc)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	return nil
}

// close flushes tracing and stops logging.
func (s *state) close(ctx context.Context) {
	if s.tracer != nil {
		if err := s.tracer.Shutdown(ctx); err != nil {
			log.Warn(log.CatCLI, "Tracer shutdown failed", "error", err)
		}
		s.tracer = nil
	}
	if s.stopLog != nil {
		s.stopLog()
		s.stopLog = nil
	}
}

// traced wraps a command body in a span named after the command.
func (s *state) traced(name string, fn func(ctx context.Context, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx, span := tracing.Start(cmd.Context(), tracing.SpanCommandPrefix+name,
			attribute.StringSlice(tracing.AttrArgs, args))
		defer func() { tracing.End(span, err) }()
		log.Debug(log.CatCLI, "Running command", "cmd", name, "args", strings.Join(args, " "))
		return fn(ctx, cmd, args)
	}
}

func (s *state) openDB() (*sqlite.DB, error) {
	db, err := sqlite.NewDB(s.cfg.ResolvedDBPath())
	if err != nil {
		return nil, fmt.Errorf("opening bookmark database: %w", err)
	}
	return db, nil
}

// parseTimestamp accepts a signed integer, optionally grouped with commas or
// underscores.
func parseTimestamp(s string) (int64, error) {
	clean := strings.NewReplacer(",", "", "_", "").Replace(strings.TrimSpace(s))
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return n, nil
}

func newRootCmd(s *state) *cobra.Command {
	var target string

	root := &cobra.Command{
		Use:   "stampdelta",
		Short: "Explore POSIX timestamps and the distances between them",
		Long: `stampdelta converts POSIX timestamps to UTC dates, derives a head and tail
around a target timestamp and renders the offsets as calendar-aware durations.
Run without arguments for the interactive view.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ts int64
			if target != "" {
				var err error
				if ts, err = parseTimestamp(target); err != nil {
					return err
				}
			}
			return s.runApp(cmd.Context(), ts)
		},
	}

	root.PersistentFlags().StringVarP(&s.cfgFile, "config", "c", "",
		"config file (default: .stampdelta/config.yaml, then ~/.config/stampdelta/config.yaml)")
	root.PersistentFlags().BoolVar(&s.debug, "debug", false,
		"write a debug log to ~/.config/stampdelta/debug.log (also "+log.DebugEnv+"=1)")
	root.PersistentFlags().BoolVar(&s.noColor, "no-color", false, "disable colour output")
	root.Flags().StringVarP(&target, "target", "t", "", "initial target timestamp (default: now)")

	root.AddCommand(
		newFormatCmd(s),
		newResolveCmd(s),
		newDayCmd(s),
		newBookmarkCmd(s),
		newModesCmd(s),
		newThemeCmd(s),
	)
	return root
}

func (s *state) runApp(ctx context.Context, target int64) error {
	db, err := s.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes *pubsub.Broker[watcher.Change]
	if s.cfg.UI.WatchDB {
		w, err := watcher.New(db.Path(), watcher.DefaultDebounce)
		if err == nil {
			err = w.Run(ctx)
		}
		if err != nil {
			log.Warn(log.CatWatcher, "Bookmark watcher disabled", "error", err)
		} else {
			changes = w.Events()
		}
	}

	zone.NewGlobal()
	model := app.New(app.Options{
		Config:     s.cfg,
		ConfigPath: s.configPath,
		Bookmarks:  db.BookmarkRepository(),
		Settings:   db.SettingsRepository(),
		Clock:      s.clock,
		Durations:  cachemanager.NewDurationMemory(),
		Changes:    changes,
		Target:     target,
		Debug:      s.stopLog != nil,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	s := newState()
	ctx := context.Background()
	defer s.close(ctx)

	root := newRootCmd(s)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
}
