package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"google.golang.org/genai"

	"claude-profile/generate"
	"claude-profile/gh"
	"claude-profile/helpers"
)

var (
	ErrNoRepository    = errors.New("no repository configured")
	ErrNoLocalProfiles = errors.New("no profiles found in current directory")

	errCancelled = errors.New("cancelled")
)

// SuggestionError carries close matches for a profile name that was not found.
type SuggestionError struct {
	Err         error
	Suggestions []string
}

func (e *SuggestionError) Error() string {
	return e.Err.Error()
}

func (e *SuggestionError) Unwrap() error {
	return e.Err
}

func ErrorHandler(w io.Writer, styles fang.Styles, err error) {
	mustN(fmt.Fprintln(w, styles.ErrorHeader.String()))
	mustN(fmt.Fprintln(w, lipgloss.NewStyle().MarginLeft(2).Render(err.Error())))
	mustN(fmt.Fprintln(w))

	if isUsageError(err) {
		mustN(fmt.Fprintln(w, lipgloss.JoinHorizontal(
			lipgloss.Left,
			styles.ErrorText.UnsetWidth().Render("Try"),
			styles.Program.Flag.Render("--help"),
			styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render("for usage."),
		)))
		mustN(fmt.Fprintln(w))
		return
	}

	writeTips(w, DefaultStyles(), err)
}

// writeTips prints guidance for errors the user can act on.
func writeTips(w io.Writer, s Styles, err error) {
	var sugg *SuggestionError
	if errors.As(err, &sugg) && len(sugg.Suggestions) > 0 {
		mustN(fmt.Fprintln(w, s.Warning.Render("  Did you mean: "+strings.Join(sugg.Suggestions, ", ")+"?")))
		mustN(fmt.Fprintln(w))
	}

	tips := errorTips(err)
	if len(tips) == 0 {
		return
	}

	mustN(fmt.Fprintln(w, s.Warning.Render("  Tips:")))
	for _, tip := range tips {
		mustN(fmt.Fprintln(w, s.Hint.Render("  • "+tip)))
	}
	mustN(fmt.Fprintln(w))
}

func errorTips(err error) []string {
	var accessErr *gh.RepositoryAccessError
	var localErr *LocalProfileNotFoundError

	switch {
	case errors.Is(err, ErrNoRepository):
		return []string{
			"Set a repository first: " + cmdName + " repo https://github.com/username/repository",
		}

	case errors.Is(err, helpers.ErrInvalidRepositoryReference):
		return []string{
			"Format: https://github.com/username/repository",
			"Example: https://github.com/allannapier/claudeprofiles",
		}

	case errors.Is(err, gh.ErrProfileNotFound):
		return []string{
			"Check the profile name spelling",
			"Use: " + cmdName + " list (to see available profiles)",
			"Profiles are read from the main branch",
		}

	case errors.As(err, &accessErr) && accessErr.RateLimited():
		return []string{
			fmt.Sprintf("GitHub refused the request (HTTP %d)", accessErr.StatusCode),
			"Unauthenticated requests are rate limited, try again later",
		}

	case errors.As(err, &accessErr) && accessErr.StatusCode == http.StatusNotFound:
		return []string{
			"Make sure the repository URL is correct",
			"Check that the repository is public",
			"Verify the repository exists",
		}

	case errors.Is(err, gh.ErrTransport):
		return []string{
			"Check your network connection",
			"Raise the request timeout with --timeout",
		}

	case errors.As(err, &localErr):
		return []string{
			"Profiles are the *.md files in the current directory",
			"Run " + cmdName + " apply without a name to pick one",
		}

	case errors.Is(err, ErrNoLocalProfiles):
		return []string{
			"Generate a profile first: " + cmdName + " generate",
		}

	case errors.Is(err, generate.ErrMissingAPIKey):
		return []string{
			"Visit: https://aistudio.google.com/app/apikey",
			"Create a new API key",
			`Export it: export GEMINI_API_KEY="your-key-here"`,
		}

	case isInvalidAPIKey(err):
		return []string{
			"Please check your GEMINI_API_KEY is valid",
		}

	case errors.Is(err, ErrNotInteractive):
		return []string{
			"Run in a terminal to answer prompts",
			"For load and apply, pass the profile name as an argument",
		}
	}

	return nil
}

func isInvalidAPIKey(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return strings.Contains(strings.ToUpper(apiErr.Message), "API_KEY") ||
				strings.Contains(strings.ToLower(apiErr.Message), "api key")
		}
	}
	return strings.Contains(err.Error(), "API_KEY")
}

// XXX: this is a hack to detect usage errors.
// See: https://github.com/spf13/cobra/pull/2266
func isUsageError(err error) bool {
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
		"accepts ",
		"requires ",
	} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustN(_ int, err error) {
	must(err)
}
