package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/zjrosen/stampdelta/internal/bookmarks"
	"github.com/zjrosen/stampdelta/internal/clock"
	"github.com/zjrosen/stampdelta/internal/endpoint"
)

func newBookmarkCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"bm"},
		Short:   "Manage bookmarked timestamps",
	}
	cmd.AddCommand(
		newBookmarkAddCmd(s),
		newBookmarkListCmd(s),
		newBookmarkStarCmd(s),
		newBookmarkEditCmd(s),
		newBookmarkDeleteCmd(s),
	)
	return cmd
}

// withRepo opens the bookmark database for the duration of fn.
func (s *state) withRepo(fn func(repo bookmarks.Repository) error) error {
	db, err := s.openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db.BookmarkRepository())
}

// explain rewrites repository sentinels into messages naming ts.
func explain(ts int64, err error) error {
	switch {
	case errors.Is(err, bookmarks.ErrDuplicate):
		return fmt.Errorf("timestamp %d is already bookmarked", ts)
	case errors.Is(err, bookmarks.ErrNotFound):
		return fmt.Errorf("no bookmark for timestamp %d", ts)
	case errors.Is(err, bookmarks.ErrStarred):
		return fmt.Errorf("bookmark %d is starred; unstar it before deleting", ts)
	}
	return err
}

func newBookmarkAddCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "add [timestamp]",
		Short: "Bookmark a timestamp (default: now)",
		Args:  cobra.MaximumNArgs(1),
		RunE: s.traced("bookmark.add", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			ts := clock.Unix(s.clock)
			if len(args) == 1 {
				var err error
				if ts, err = parseTimestamp(args[0]); err != nil {
					return err
				}
			}
			return s.withRepo(func(repo bookmarks.Repository) error {
				b, err := repo.Add(ctx, ts)
				if err != nil {
					return explain(ts, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %d (%s UTC)\n", b.Timestamp, endpoint.FormatTimestamp(b.Timestamp))
				return nil
			})
		}),
	}
}

func newBookmarkListCmd(s *state) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks, starred first",
		Args:  cobra.NoArgs,
		RunE: s.traced("bookmark.list", func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			if limit == 0 {
				limit = s.cfg.BookmarkLimit
			}
			return s.withRepo(func(repo bookmarks.Repository) error {
				items, err := repo.List(ctx, limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintln(out, "No bookmarks.")
					return nil
				}
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, " \tTIMESTAMP\tDATE (UTC)\tADDED")
				now := s.clock.Now()
				for _, b := range items {
					star := " "
					if b.Starred {
						star = "★"
					}
					fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", star, b.Timestamp,
						endpoint.FormatTimestamp(b.Timestamp),
						humanize.RelTime(b.CreatedAt, now, "ago", "from now"))
				}
				return tw.Flush()
			})
		}),
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum non-starred rows (default: bookmark_limit)")
	return cmd
}

func newBookmarkStarCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "star <timestamp>",
		Short: "Toggle the star on a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: s.traced("bookmark.star", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			ts, err := parseTimestamp(args[0])
			if err != nil {
				return err
			}
			return s.withRepo(func(repo bookmarks.Repository) error {
				b, err := repo.ToggleStar(ctx, ts)
				if err != nil {
					return explain(ts, err)
				}
				verb := "Unstarred"
				if b.Starred {
					verb = "Starred"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", verb, ts)
				return nil
			})
		}),
	}
}

func newBookmarkEditCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <timestamp> <new-timestamp>",
		Short: "Change the timestamp of a bookmark",
		Args:  cobra.ExactArgs(2),
		RunE: s.traced("bookmark.edit", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			old, err := parseTimestamp(args[0])
			if err != nil {
				return err
			}
			updated, err := parseTimestamp(args[1])
			if err != nil {
				return err
			}
			return s.withRepo(func(repo bookmarks.Repository) error {
				if err := repo.Edit(ctx, old, updated); err != nil {
					if errors.Is(err, bookmarks.ErrDuplicate) {
						return explain(updated, err)
					}
					return explain(old, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved bookmark %d to %d\n", old, updated)
				return nil
			})
		}),
	}
}

func newBookmarkDeleteCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <timestamp>",
		Aliases: []string{"rm"},
		Short:   "Delete a bookmark that is not starred",
		Args:    cobra.ExactArgs(1),
		RunE: s.traced("bookmark.delete", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			ts, err := parseTimestamp(args[0])
			if err != nil {
				return err
			}
			return s.withRepo(func(repo bookmarks.Repository) error {
				if err := repo.Delete(ctx, ts); err != nil {
					return explain(ts, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d\n", ts)
				return nil
			})
		}),
	}
}
