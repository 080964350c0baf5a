package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rickb777/date/v2"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/stampdelta/internal/clock"
	"github.com/zjrosen/stampdelta/internal/duration"
	"github.com/zjrosen/stampdelta/internal/tracing"
)

const anchorLayout = "2006-01-02"

// modeFlag resolves --mode, falling back to default_mode from config.
func (s *state) modeFlag(flag string) (duration.Mode, error) {
	if flag == "" {
		return s.cfg.Mode(), nil
	}
	return duration.ParseMode(flag)
}

// anchorFlag resolves --anchor, falling back to today in UTC.
func (s *state) anchorFlag(flag string) (date.Date, error) {
	if flag == "" {
		return clock.TodayUTC(s.clock), nil
	}
	t, err := time.Parse(anchorLayout, flag)
	if err != nil {
		var zero date.Date
		return zero, fmt.Errorf("invalid anchor %q (want YYYY-MM-DD): %w", flag, err)
	}
	return date.NewAt(t), nil
}

func newFormatCmd(s *state) *cobra.Command {
	var (
		modeName string
		iso      bool
		anchor   string
	)

	cmd := &cobra.Command{
		Use:   "format <seconds>",
		Short: "Render a number of seconds as a calendar-aware duration",
		Long: `Render a number of seconds as a duration. Months and years are measured
against the calendar starting at the anchor month (default: the current UTC
month). Zero prints nothing unless --iso is given.

Negative durations must follow "--", for example: stampdelta format -- -90061`,
		Example: `  stampdelta format 90061
  stampdelta format --mode clock 90061
  stampdelta format --iso --anchor 2024-02-01 2678400`,
		Args: cobra.ExactArgs(1),
		RunE: s.traced("format", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			seconds, err := parseTimestamp(args[0])
			if err != nil {
				return err
			}
			m, err := s.modeFlag(modeName)
			if err != nil {
				return err
			}
			a, err := s.anchorFlag(anchor)
			if err != nil {
				return err
			}
			trace.SpanFromContext(ctx).SetAttributes(
				attribute.Int64(tracing.AttrOffset, seconds),
				attribute.String(tracing.AttrMode, m.String()),
			)

			out := cmd.OutOrStdout()
			if iso {
				neg, abs := duration.Split(seconds)
				b := duration.Decompose(abs, a)
				b.Negative = neg
				fmt.Fprintln(out, duration.ISO(b))
				return nil
			}
			if text, ok := duration.FormatDuration(seconds, m, a); ok {
				fmt.Fprintln(out, text)
			}
			return nil
		}),
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "display mode: name or number (see 'stampdelta modes')")
	cmd.Flags().BoolVar(&iso, "iso", false, "print an ISO-8601 period instead")
	cmd.Flags().StringVar(&anchor, "anchor", "", "anchor date for calendar months, YYYY-MM-DD (default: today UTC)")
	return cmd
}
