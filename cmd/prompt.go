package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when a prompt needs an answer that cannot be
// defaulted and stdin is not a terminal.
var ErrNotInteractive = errors.New("input required but stdin is not a terminal")

// Choice is one entry of a selection prompt.
type Choice struct {
	Label string
	Value string
}

// Prompter asks the user questions.
type Prompter interface {
	Confirm(ctx context.Context, title string, def bool) (bool, error)
	Input(ctx context.Context, title string, validate func(string) error) (string, error)
	Select(ctx context.Context, title string, choices []Choice) (string, error)
}

// formPrompter runs huh forms. Without a terminal, confirmations take their
// default answer and everything else fails with [ErrNotInteractive].
type formPrompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

func newFormPrompter() *formPrompter {
	return &formPrompter{
		in:          os.Stdin,
		out:         os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// confirm asks title unless --yes was given.
func (a *App) confirm(ctx context.Context, title string, def bool) (bool, error) {
	if a.args.Yes {
		slog.Debug("assuming yes", slog.String("prompt", title))
		return true, nil
	}
	return a.prompter.Confirm(ctx, title, def)
}

func (p *formPrompter) Confirm(ctx context.Context, title string, def bool) (bool, error) {
	if !p.interactive {
		return def, nil
	}

	answer := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)
	if err := p.run(ctx, field); err != nil {
		return false, err
	}

	return answer, nil
}

func (p *formPrompter) Input(ctx context.Context, title string, validate func(string) error) (string, error) {
	if !p.interactive {
		return "", fmt.Errorf("%s: %w", title, ErrNotInteractive)
	}

	var answer string
	field := huh.NewInput().
		Title(title).
		Validate(validate).
		Value(&answer)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}

	return answer, nil
}

func (p *formPrompter) Select(ctx context.Context, title string, choices []Choice) (string, error) {
	if !p.interactive {
		return "", fmt.Errorf("%s: %w", title, ErrNotInteractive)
	}

	options := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		options = append(options, huh.NewOption(c.Label, c.Value))
	}

	var answer string
	field := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&answer)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}

	return answer, nil
}

func (p *formPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithInput(p.in).
		WithOutput(p.out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errCancelled
		}
		return fmt.Errorf("run prompt: %w", err)
	}

	return nil
}
