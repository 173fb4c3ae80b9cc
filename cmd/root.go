package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"claude-profile/backup"
	"claude-profile/config"
	"claude-profile/generate"
	"claude-profile/gh"
	"claude-profile/log"
	"claude-profile/version"
)

const (
	cmdName     = "claude-profile"
	cmdDesc     = `Generate and manage Claude AI agent profiles.`
	cmdExamples = `
	# Point at a profile repository.
	claude-profile repo https://github.com/username/repository

	# See what it offers, then install one as ./claude.md.
	claude-profile list
	claude-profile load code-reviewer

	# Apply a profile from a Markdown file in the current directory.
	claude-profile apply security

	# Generate a new profile with Gemini.
	GEMINI_API_KEY=... claude-profile generate
`
)

type RootArgs struct {
	ConfigPath string
	Timeout    time.Duration
	Model      string
	Yes        bool
	NoMarkdown bool
	LogLevel   string
	LogFormat  string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&ra.ConfigPath, "config", config.DefaultPath(), "Path to the config file")
	flags.DurationVar(&ra.Timeout, "timeout", gh.DefaultTimeout, "Timeout for each GitHub request")
	flags.StringVar(&ra.Model, "model", generate.DefaultModel, "Gemini model used by generate")
	flags.BoolVarP(&ra.Yes, "yes", "y", false, "Answer yes to every confirmation")
	flags.BoolVar(&ra.NoMarkdown, "no-markdown", false, "Print previews without Markdown rendering")
	flags.StringVar(&ra.LogLevel, "log-level", string(log.LevelWarn), fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	flags.StringVar(&ra.LogFormat, "log-format", string(log.FormatText), fmt.Sprintf("Log format, one of: %s", log.AllFormats))

	must(cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	))
}

// HostFactory builds the content host used for remote profiles.
type HostFactory func(timeout time.Duration) gh.ContentHost

// ModelFactory builds the model used by generate.
type ModelFactory func(ctx context.Context, apiKey, model string) (generate.Model, error)

// App holds the collaborators shared by every command.
type App struct {
	args      *RootArgs
	styles    Styles
	prompter  Prompter
	newHost   HostFactory
	newModel  ModelFactory
	backups   *backup.Store
	workDir   string
	lookupEnv func(string) (string, bool)
}

type Option func(*App)

func WithPrompter(p Prompter) Option {
	return func(a *App) { a.prompter = p }
}

func WithHostFactory(f HostFactory) Option {
	return func(a *App) { a.newHost = f }
}

func WithModelFactory(f ModelFactory) Option {
	return func(a *App) { a.newModel = f }
}

func WithBackupStore(s *backup.Store) Option {
	return func(a *App) { a.backups = s }
}

// WithWorkDir sets the directory claude.md is written to. Defaults to the
// working directory.
func WithWorkDir(dir string) Option {
	return func(a *App) { a.workDir = dir }
}

func WithLookupEnv(f func(string) (string, bool)) Option {
	return func(a *App) { a.lookupEnv = f }
}

func newApp(args *RootArgs, opts ...Option) *App {
	a := &App{
		args:   args,
		styles: DefaultStyles(),
		newHost: func(timeout time.Duration) gh.ContentHost {
			return gh.NewClient(gh.WithTimeout(timeout))
		},
		newModel: func(ctx context.Context, apiKey, model string) (generate.Model, error) {
			return generate.NewGeminiModel(ctx, apiKey, generate.WithModelName(model))
		},
		backups:   backup.Default(),
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func NewRootCmd(opts ...Option) *cobra.Command {
	args := NewRootArgs()
	app := newApp(args, opts...)

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Example:           cmdExamples,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
	}

	args.AddFlags(cmd)
	cmd.AddCommand(
		NewGenerateCmd(app),
		NewRepoCmd(app),
		NewListCmd(app),
		NewLoadCmd(app),
		NewApplyCmd(app),
		NewConfigCmd(app),
	)

	bindEnvVars(cmd)

	return cmd
}

// setup configures logging and the collaborators that depend on flags.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), a.args.LogLevel, a.args.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}
	logger := slog.New(logHandler)
	slog.SetDefault(logger)
	cmd.SetContext(log.NewContext(cmd.Context(), logger))

	if a.prompter == nil {
		a.prompter = newFormPrompter()
	}
	if a.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		a.workDir = wd
	}

	logger.Debug("parsed args",
		slog.String("command", cmd.Name()),
		slog.String("config", a.args.ConfigPath),
		slog.String("workdir", a.workDir),
	)

	return nil
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	err := fang.Execute(ctx, NewRootCmd(),
		fang.WithVersion(version.String()),
		fang.WithErrorHandler(ErrorHandler),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err != nil {
		return 1
	}
	return 0
}
