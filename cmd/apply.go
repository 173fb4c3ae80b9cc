package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"claude-profile/helpers"
)

// LocalProfileNotFoundError reports a profile name with no matching file in
// the working directory.
type LocalProfileNotFoundError struct {
	Profile string
	Dir     string
}

func (e *LocalProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found in %s", e.Profile, e.Dir)
}

func NewApplyCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "apply [profile]",
		Short: "Apply a profile from a Markdown file in the current directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			profiles, err := helpers.FindLocalProfiles(a.workDir)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = strings.TrimSpace(args[0])
			} else {
				if len(profiles) == 0 {
					return ErrNoLocalProfiles
				}
				name, err = a.selectLocalProfile(ctx, profiles)
				if err != nil {
					return err
				}
			}

			path, ok := helpers.FindProfileFile(a.workDir, name)
			if !ok || filepath.Base(path) == helpers.ProfileFileName {
				names := make([]string, 0, len(profiles))
				for _, p := range profiles {
					names = append(names, p.Name)
				}
				return &SuggestionError{
					Err:         &LocalProfileNotFoundError{Profile: name, Dir: a.workDir},
					Suggestions: suggest(name, names),
				}
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("error applying profile: %w", err)
			}

			return a.install(ctx, cmd.OutOrStdout(), installRequest{
				action:        "Apply",
				content:       string(content),
				success:       fmt.Sprintf("Applied profile %q to claude.md", name),
				commitMessage: "Apply Claude profile: " + name,
				previewLines:  loadPreviewLines,
			})
		},
	}
}

func (a *App) selectLocalProfile(ctx context.Context, profiles []helpers.LocalProfile) (string, error) {
	choices := make([]Choice, 0, len(profiles))
	for _, p := range profiles {
		choices = append(choices, Choice{
			Label: fmt.Sprintf("%s (%s)", p.Name, p.Path),
			Value: p.Name,
		})
	}

	return a.prompter.Select(ctx, "Which profile would you like to apply?", choices)
}
