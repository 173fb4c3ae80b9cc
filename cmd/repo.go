package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"claude-profile/config"
	"claude-profile/helpers"
	"claude-profile/model"
)

func NewRepoCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "repo <url>",
		Short:   "Set GitHub repository for loading profiles",
		Example: "  " + cmdName + " repo https://github.com/allannapier/claudeprofiles",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := helpers.NormalizeRepoURL(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load(a.args.ConfigPath)
			if err != nil {
				return err
			}
			cfg.Repository = url
			if _, err := config.Save(a.args.ConfigPath, cfg); err != nil {
				return fmt.Errorf("failed to save repository: %w", err)
			}

			w := cmd.OutOrStdout()
			s := a.styles
			mustN(fmt.Fprintln(w, s.Success.Render("✅ Repository set to: "+url)))
			mustN(fmt.Fprintln(w, s.Hint.Render("\nYou can now use:")))
			mustN(fmt.Fprintln(w, s.Command.Render("  "+cmdName+" list          # List available profiles")))
			mustN(fmt.Fprintln(w, s.Command.Render("  "+cmdName+" load <name>   # Load a profile")))

			return nil
		},
	}
}

// repository returns the configured repository.
func (a *App) repository() (model.RepoRef, error) {
	cfg, err := config.Load(a.args.ConfigPath)
	if err != nil {
		return model.RepoRef{}, err
	}
	if !cfg.HasRepository() {
		return model.RepoRef{}, ErrNoRepository
	}
	return helpers.ParseRepoURL(cfg.Repository)
}
