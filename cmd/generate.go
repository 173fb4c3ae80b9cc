package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"claude-profile/generate"
	"claude-profile/helpers"
	"claude-profile/log"
)

const apiKeyEnv = "GEMINI_API_KEY"

type GenerateArgs struct {
	StepTimeout time.Duration
}

func NewGenerateCmd(a *App) *cobra.Command {
	ga := &GenerateArgs{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new Claude profile for current directory",
		Long: "Generate rules for an agent type with Gemini. The draft is evaluated,\n" +
			"enhanced and polished before it is offered for saving to ./claude.md.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			s := a.styles

			apiKey, _ := a.lookupEnv(apiKeyEnv)
			if strings.TrimSpace(apiKey) == "" {
				return generate.ErrMissingAPIKey
			}

			ok, err := a.confirmOverwrite(ctx, nil)
			if err != nil {
				return err
			}
			if !ok {
				mustN(fmt.Fprintln(w, s.Warning.Render("Generation cancelled.")))
				return nil
			}

			agentType, err := a.prompter.Input(ctx, "What type of agent do you want rules for?", helpers.ValidateAgentType)
			if err != nil {
				return err
			}

			m, err := a.newModel(ctx, apiKey, a.args.Model)
			if err != nil {
				return err
			}
			log.WithContext(ctx).Info("generating rules",
				slog.String("model", a.args.Model),
				slog.String("agent", agentType),
			)

			mustN(fmt.Fprintln(w, s.Title.Render("\n🤖 Generating rules with AI...\n")))

			progress := newStepProgress(w, s)
			res, err := generate.NewPipeline(m,
				generate.WithStepTimeout(ga.StepTimeout),
				generate.WithObserver(progress.observe),
			).Run(ctx, strings.TrimSpace(agentType))
			progress.finish()
			if err != nil {
				return err
			}

			mustN(fmt.Fprintln(w, s.Success.Render("\n✨ Generated Rules Preview:\n")))
			a.writePreview(w, res.Final, generatePreviewLines)

			save, err := a.confirm(ctx, "Save these rules to claude.md?", true)
			if err != nil {
				return err
			}
			if !save {
				mustN(fmt.Fprintln(w, s.Warning.Render("Rules discarded.")))
				return nil
			}

			return a.install(ctx, w, installRequest{
				action:             "Generation",
				content:            res.Final,
				success:            "Rules saved to " + a.profilePath(),
				commitMessage:      "Add Claude rules for " + res.AgentType,
				overwriteConfirmed: true,
			})
		},
	}

	cmd.Flags().DurationVar(&ga.StepTimeout, "step-timeout", generate.DefaultStepTimeout, "Timeout for each model call")

	return cmd
}
