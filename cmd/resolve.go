package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/rickb777/date/v2"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/stampdelta/internal/clock"
	"github.com/zjrosen/stampdelta/internal/duration"
	"github.com/zjrosen/stampdelta/internal/endpoint"
	"github.com/zjrosen/stampdelta/internal/tracing"
)

func newResolveCmd(s *state) *cobra.Command {
	var (
		ref, head, tail string
		modeName        string
		anchor          string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Derive the head and tail timestamps around a reference",
		Long: `Derive the head (reference minus offset) and tail (reference plus offset)
around a reference timestamp. Offsets are seconds or a preset name such as
"WEEK" or "2 WEEKS". The reference defaults to now.`,
		Example: `  stampdelta resolve --ref 1700000000 --head DAY --tail WEEK
  stampdelta resolve --head 3600 --mode clock`,
		Args: cobra.NoArgs,
		RunE: s.traced("resolve", func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			reference := clock.Unix(s.clock)
			if ref != "" {
				var err error
				if reference, err = parseTimestamp(ref); err != nil {
					return err
				}
			}
			h, err := endpoint.ParseOffset(head)
			if err != nil {
				return fmt.Errorf("--head: %w", err)
			}
			t, err := endpoint.ParseOffset(tail)
			if err != nil {
				return fmt.Errorf("--tail: %w", err)
			}
			if _, hs := h.Get(); !hs {
				if _, ts := t.Get(); !ts {
					return errors.New("at least one of --head or --tail is required")
				}
			}
			m, err := s.modeFlag(modeName)
			if err != nil {
				return err
			}
			a, err := s.anchorFlag(anchor)
			if err != nil {
				return err
			}
			trace.SpanFromContext(ctx).SetAttributes(attribute.Int64(tracing.AttrTimestamp, reference))

			pair := endpoint.ResolvePair(reference, h, t, a)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-7s %s UTC | POSIX: %s\n", "target", endpoint.FormatTimestamp(reference), humanize.Comma(reference))
			writeEndpoint(out, pair.Head, m, a)
			writeEndpoint(out, pair.Tail, m, a)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&ref, "ref", "r", "", "reference timestamp (default: now)")
	cmd.Flags().StringVar(&head, "head", "", "offset subtracted from the reference: seconds or preset")
	cmd.Flags().StringVar(&tail, "tail", "", "offset added to the reference: seconds or preset")
	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "display mode for the offsets")
	cmd.Flags().StringVar(&anchor, "anchor", "", "anchor date for calendar months, YYYY-MM-DD (default: today UTC)")
	return cmd
}

// writeEndpoint prints one resolved endpoint with its offset rendered in m.
// Unset endpoints print nothing.
func writeEndpoint(w io.Writer, e endpoint.Endpoint, m duration.Mode, anchor date.Date) {
	if !e.Set {
		return
	}
	line := fmt.Sprintf("%-7s %s", e.Direction, e.Label())
	if text, ok := duration.FormatDuration(e.Offset, m, anchor); ok {
		line += "  (" + text + ")"
	}
	fmt.Fprintln(w, line)
}
