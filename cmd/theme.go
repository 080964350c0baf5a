package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zjrosen/stampdelta/internal/bookmarks"
	"github.com/zjrosen/stampdelta/internal/config"
	"github.com/zjrosen/stampdelta/internal/log"
	"github.com/zjrosen/stampdelta/internal/ui/styles"
)

func newThemeCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List or select colour themes",
	}
	cmd.AddCommand(newThemeListCmd(s), newThemeSetCmd(s))
	return cmd
}

// activeTheme returns the saved theme, falling back to theme.preset and then
// the default preset.
func (s *state) activeTheme(ctx context.Context, settings bookmarks.Settings) string {
	if v, ok, err := settings.Get(ctx, bookmarks.SettingTheme); err == nil && ok {
		if p, found := styles.LookupPreset(v); found {
			return p.Key
		}
	}
	if p, found := styles.LookupPreset(s.cfg.Theme.Preset); found {
		return p.Key
	}
	return styles.DefaultPresetKey
}

func newThemeListCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: s.traced("theme.list", func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			db, err := s.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			active := s.activeTheme(ctx, db.SettingsRepository())
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, p := range styles.Presets {
				mark := " "
				if p.Key == active {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, p.Key, p.Name)
			}
			return tw.Flush()
		}),
	}
}

func newThemeSetCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "set <theme>",
		Short: "Select a theme by key or display name",
		Args:  cobra.ExactArgs(1),
		RunE: s.traced("theme.set", func(ctx context.Context, cmd *cobra.Command, args []string) error {
			p, ok := styles.LookupPreset(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q (see 'stampdelta theme list')", args[0])
			}

			db, err := s.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.SettingsRepository().Set(ctx, bookmarks.SettingTheme, p.Key); err != nil {
				return fmt.Errorf("saving theme: %w", err)
			}
			if s.configPath != "" {
				if err := config.SaveTheme(s.configPath, p.Key); err != nil {
					log.ErrorErr(log.CatConfig, "Saving theme to config failed", err, "path", s.configPath)
					fmt.Fprintln(cmd.ErrOrStderr(), "warning: theme saved but config not updated:", err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", p.Name)
			return nil
		}),
	}
}
