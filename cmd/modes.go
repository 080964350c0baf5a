package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/zjrosen/stampdelta/internal/clock"
	"github.com/zjrosen/stampdelta/internal/duration"
	"github.com/zjrosen/stampdelta/internal/ui/markdown"
)

// modesSample is the duration used to illustrate each mode: 400 days, 5h 6m 7s.
const modesSample = 400*86400 + 5*3600 + 6*60 + 7

func newModesCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the duration display modes",
		Args:  cobra.NoArgs,
		RunE: s.traced("modes", func(_ context.Context, cmd *cobra.Command, _ []string) error {
			anchor := clock.TodayUTC(s.clock)
			rows := make([][]string, 0, len(duration.Modes))
			var notes strings.Builder
			for _, m := range duration.Modes {
				sample, _ := duration.FormatDuration(modesSample, m, anchor)
				rows = append(rows, []string{strconv.Itoa(int(m)), m.String(), "`" + sample + "`"})
				fmt.Fprintf(&notes, "- **%s**: %s\n", m, m.Description())
			}
			doc := "# Display modes\n\n" +
				markdown.Table([]string{"#", "Name", "400 days 5h 6m 7s"}, rows) +
				"\n" + notes.String() +
				"\nDefault: `" + s.cfg.Mode().String() + "`\n"

			r, err := markdown.New(100, s.plainOutput())
			if err != nil {
				return fmt.Errorf("creating renderer: %w", err)
			}
			out, err := r.Render(doc)
			if err != nil {
				return fmt.Errorf("rendering modes: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}),
	}
}

// plainOutput reports whether output should carry no styling.
func (s *state) plainOutput() bool {
	if s.noColor || os.Getenv("NO_COLOR") != "" {
		return true
	}
	return lipgloss.ColorProfile() == termenv.Ascii
}
