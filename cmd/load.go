package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"claude-profile/gh"
	"claude-profile/log"
	"claude-profile/model"
)

func NewLoadCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load [profile]",
		Short: "Load a profile from repository",
		Long: "Load a profile from the configured repository into ./claude.md.\n" +
			"Without a name, the available profiles are offered for selection.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, err := a.repository()
			if err != nil {
				return err
			}
			host := a.newHost(a.args.Timeout)

			var name string
			if len(args) > 0 {
				name = strings.TrimSpace(args[0])
			} else {
				name, err = a.selectRemoteProfile(ctx, host, repo)
				if err != nil {
					return err
				}
			}

			content, err := gh.NewResolver(host).Resolve(ctx, repo, name)
			if errors.Is(err, gh.ErrProfileNotFound) {
				return &SuggestionError{Err: err, Suggestions: remoteSuggestions(ctx, host, repo, name)}
			}
			if err != nil {
				return err
			}

			return a.install(ctx, cmd.OutOrStdout(), installRequest{
				action:        "Load",
				content:       content,
				success:       fmt.Sprintf("Profile %q saved to claude.md", name),
				commitMessage: "Load Claude profile: " + name,
				previewLines:  loadPreviewLines,
			})
		},
	}
}

func (a *App) selectRemoteProfile(ctx context.Context, host gh.ContentHost, repo model.RepoRef) (string, error) {
	profiles, err := gh.NewLister(host).List(ctx, repo)
	if err != nil {
		return "", err
	}
	if len(profiles) == 0 {
		return "", fmt.Errorf("no profiles found in repository %s", repo.URL())
	}

	choices := make([]Choice, 0, len(profiles))
	for _, p := range profiles {
		choices = append(choices, Choice{
			Label: fmt.Sprintf("%s %s (%s)", kindIcon(p.Kind), p.Name, p.Path),
			Value: p.Name,
		})
	}

	return a.prompter.Select(ctx, "Which profile would you like to load?", choices)
}

// remoteSuggestions lists the repository for names close to name. Listing
// failures only cost the suggestions.
func remoteSuggestions(ctx context.Context, host gh.ContentHost, repo model.RepoRef, name string) []string {
	profiles, err := gh.NewLister(host).List(ctx, repo)
	if err != nil {
		log.WithContext(ctx).Debug("list for suggestions", slog.Any("err", err))
		return nil
	}

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return suggest(name, names)
}
