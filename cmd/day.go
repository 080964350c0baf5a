package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/stampdelta/internal/clock"
	"github.com/zjrosen/stampdelta/internal/endpoint"
	"github.com/zjrosen/stampdelta/internal/tracing"
	"github.com/zjrosen/stampdelta/internal/ui/daybar"
)

const dayBarWidth = 40

func newDayCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "day [timestamp]",
		Short: "Show where a timestamp falls within its UTC day",
		Args:  cobra.MaximumNArgs(1),
		RunE: s.traced("day", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			ts := clock.Unix(s.clock)
			if len(args) == 1 {
				var err error
				if ts, err = parseTimestamp(args[0]); err != nil {
					return err
				}
			}
			trace.SpanFromContext(ctx).SetAttributes(attribute.Int64(tracing.AttrTimestamp, ts))

			p := endpoint.Position(ts, clock.TodayUTC(s.clock))
			writeDay(cmd.OutOrStdout(), p)
			return nil
		}),
	}
}

func writeDay(w io.Writer, p endpoint.DayPosition) {
	row := func(name string, ts int64) {
		fmt.Fprintf(w, "%-9s %s  (%s UTC)\n", name, humanize.Comma(ts), endpoint.FormatTimestamp(ts))
	}
	orZero := func(s string) string {
		if s == "" {
			return "0"
		}
		return s
	}

	row("timestamp", p.Timestamp)
	if p.DayOfMonth > 0 {
		fmt.Fprintf(w, "%-9s %d\n", "day", p.DayOfMonth)
	}
	row("start", p.Start)
	row("end", p.End)
	fmt.Fprintf(w, "%-9s %s\n", "since", orZero(p.SinceStart))
	fmt.Fprintf(w, "%-9s %s\n", "until", orZero(p.UntilEnd))
	fmt.Fprintf(w, "%-9s %.1f%%\n", "progress", p.Progress*100)
	fmt.Fprintln(w, daybar.Bar(p.Progress, dayBarWidth))
}
