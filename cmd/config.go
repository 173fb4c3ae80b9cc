package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"claude-profile/config"
)

const apiKeyPreviewLen = 8

func NewConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.args.ConfigPath)
			if err != nil {
				return fmt.Errorf("error reading configuration: %w", err)
			}

			a.writeConfig(cmd.OutOrStdout(), cfg)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the saved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			ok, err := a.confirm(cmd.Context(), "Remove "+a.args.ConfigPath+"?", true)
			if err != nil {
				return err
			}
			if !ok {
				mustN(fmt.Fprintln(w, a.styles.Warning.Render("Clear cancelled.")))
				return nil
			}

			if err := config.Clear(a.args.ConfigPath); err != nil {
				return err
			}
			mustN(fmt.Fprintln(w, a.styles.Success.Render("✅ Configuration cleared")))
			return nil
		},
	})

	return cmd
}

func (a *App) writeConfig(w io.Writer, cfg config.Config) {
	s := a.styles

	mustN(fmt.Fprintln(w, s.Title.Render("\n📋 Current Configuration:\n")))

	if cfg.HasRepository() {
		mustN(fmt.Fprintln(w, s.Success.Render("✅ Repository:"), cfg.Repository))
	} else {
		mustN(fmt.Fprintln(w, s.Warning.Render("⚠️  Repository:"), "Not configured"))
		mustN(fmt.Fprintln(w, s.Hint.Render("   Use: "+cmdName+" repo <github-url>")))
	}

	if !cfg.LastUpdated.IsZero() {
		mustN(fmt.Fprintln(w, s.Label.Render("🕒 Last Updated:"),
			fmt.Sprintf("%s (%s)", cfg.LastUpdated.Local().Format("2006-01-02 15:04:05"), humanize.Time(cfg.LastUpdated)),
		))
	}

	if key, ok := a.lookupEnv(apiKeyEnv); ok && key != "" {
		mustN(fmt.Fprintln(w, s.Success.Render("🔑 Gemini API Key:"), key[:min(len(key), apiKeyPreviewLen)]+"..."))
	} else {
		mustN(fmt.Fprintln(w, s.Failure.Render("❌ Gemini API Key:"), "Not set"))
		mustN(fmt.Fprintln(w, s.Hint.Render(`   Set with: export GEMINI_API_KEY="your-key"`)))
	}

	if a.backups.Enabled() {
		count, size, err := a.backups.Usage()
		if err == nil {
			mustN(fmt.Fprintln(w, s.Label.Render("💾 Backups:"),
				fmt.Sprintf("%d (%s) in %s", count, humanize.Bytes(uint64(max(0, size))), a.backups.Dir()), //nolint:gosec // Uses max.
			))
		}
	}

	mustN(fmt.Fprintln(w, s.Hint.Render("📁 Config file: "+a.args.ConfigPath)))
	mustN(fmt.Fprintln(w))
}
