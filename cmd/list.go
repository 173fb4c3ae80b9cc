package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"claude-profile/gh"
	"claude-profile/model"
)

func NewListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available profiles from repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}

			profiles, err := gh.NewLister(a.newHost(a.args.Timeout)).List(cmd.Context(), repo)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			s := a.styles

			if len(profiles) == 0 {
				mustN(fmt.Fprintln(w, s.Warning.Render("\n📂 No profiles found in repository")))
				mustN(fmt.Fprintln(w, s.Hint.Render("Repository:"), repo.URL()))
				return nil
			}

			mustN(fmt.Fprintln(w, s.Title.Render(fmt.Sprintf("\n📂 Available Profiles (%d):\n", len(profiles)))))
			for _, p := range profiles {
				mustN(fmt.Fprintln(w, s.Success.Render(kindIcon(p.Kind)+" "+p.Name)))
				mustN(fmt.Fprintln(w, s.Hint.Render("   Path: "+p.Path)))
				mustN(fmt.Fprintln(w))
			}

			mustN(fmt.Fprintln(w, s.Hint.Render("Repository:"), repo.URL()))
			mustN(fmt.Fprintln(w, s.Hint.Render("\nTo load a profile:")))
			mustN(fmt.Fprintln(w, s.Command.Render("  "+cmdName+" load <profile-name>")))

			return nil
		},
	}
}

func kindIcon(k model.ProfileKind) string {
	if k == model.KindDirectory {
		return "📁"
	}
	return "📄"
}
