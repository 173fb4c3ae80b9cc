package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"claude-profile/helpers"
	"claude-profile/log"
)

const DefaultStepTimeout = 30 * time.Second

var (
	ErrStep          = errors.New("generation step failed")
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// Step identifies one model call of the pipeline.
type Step int

const (
	StepInitial Step = iota
	StepEvaluate
	StepEnhance
	StepFinalize
)

// Steps lists the pipeline steps in execution order.
var Steps = []Step{StepInitial, StepEvaluate, StepEnhance, StepFinalize}

func (s Step) String() string {
	switch s {
	case StepInitial:
		return "initial"
	case StepEvaluate:
		return "evaluate"
	case StepEnhance:
		return "enhance"
	case StepFinalize:
		return "finalize"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Description is the human wording of the step, used in progress and errors.
func (s Step) Description() string {
	switch s {
	case StepInitial:
		return "generate initial rules"
	case StepEvaluate:
		return "evaluate rules"
	case StepEnhance:
		return "enhance rules"
	case StepFinalize:
		return "finalize rules"
	}
	return s.String()
}

// StepError wraps the cause of a failed step.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Step.Description(), e.Err)
}

func (e *StepError) Is(target error) bool {
	return target == ErrStep
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Result holds the output of every step. Final is the profile content.
type Result struct {
	AgentType  string
	Initial    string
	Evaluation string
	Enhanced   string
	Final      string
}

// Observer is notified around each step. done is false when the step starts
// and true once it has succeeded.
type Observer func(step Step, done bool)

type Pipeline struct {
	model       Model
	stepTimeout time.Duration
	observer    Observer
}

type PipelineOption func(*Pipeline)

func WithStepTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if d > 0 {
			p.stepTimeout = d
		}
	}
}

func WithObserver(o Observer) PipelineOption {
	return func(p *Pipeline) { p.observer = o }
}

func NewPipeline(model Model, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		model:       model,
		stepTimeout: DefaultStepTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run generates, evaluates, enhances and finalizes rules for agentType.
// The agent type is sanitized before it reaches the model.
func (p *Pipeline) Run(ctx context.Context, agentType string) (*Result, error) {
	if err := helpers.ValidateAgentType(agentType); err != nil {
		return nil, err
	}

	res := &Result{AgentType: helpers.SanitizeInput(agentType)}
	if res.AgentType == "" {
		return nil, helpers.ErrAgentTypeEmpty
	}

	var err error
	if res.Initial, err = p.step(ctx, StepInitial, InitialPrompt(res.AgentType)); err != nil {
		return nil, err
	}
	if res.Evaluation, err = p.step(ctx, StepEvaluate, EvaluatePrompt(res.Initial)); err != nil {
		return nil, err
	}
	if res.Enhanced, err = p.step(ctx, StepEnhance, EnhancePrompt(res.Initial, res.Evaluation)); err != nil {
		return nil, err
	}
	if res.Final, err = p.step(ctx, StepFinalize, FinalizePrompt(res.Enhanced)); err != nil {
		return nil, err
	}

	return res, nil
}

func (p *Pipeline) step(ctx context.Context, step Step, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &StepError{Step: step, Err: err}
	}
	p.notify(step, false)

	stepCtx, cancel := context.WithTimeout(ctx, p.stepTimeout)
	defer cancel()

	start := time.Now()
	out, err := p.model.Generate(stepCtx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("API request timed out after %s: %w", p.stepTimeout, err)
		}
		return "", &StepError{Step: step, Err: err}
	}
	if strings.TrimSpace(out) == "" {
		return "", &StepError{Step: step, Err: ErrEmptyResponse}
	}

	log.WithContext(ctx).Debug("generation step complete",
		slog.String("step", step.String()),
		slog.Int("chars", len(out)),
		slog.Duration("took", time.Since(start)),
	)
	p.notify(step, true)

	return out, nil
}

func (p *Pipeline) notify(step Step, done bool) {
	if p.observer != nil {
		p.observer(step, done)
	}
}
