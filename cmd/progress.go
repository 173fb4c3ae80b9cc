package cmd

import (
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"

	"claude-profile/generate"
)

const progressTemplate pb.ProgressBarTemplate = `{{ string . "step" }} {{ bar . "[" "=" ">" " " "]" }} {{ counters . }} {{ etime . }}`

var stepMessages = map[generate.Step][2]string{
	generate.StepInitial:  {"Generating initial rules...", "Initial rules generated"},
	generate.StepEvaluate: {"AI evaluating rules for gaps...", "Evaluation complete"},
	generate.StepEnhance:  {"Enhancing rules based on evaluation...", "Rules enhanced"},
	generate.StepFinalize: {"Final polish and meta-rules...", "Rules finalized"},
}

// stepProgress reports pipeline steps: a progress bar on a terminal, one
// line per finished step otherwise.
type stepProgress struct {
	w      io.Writer
	styles Styles
	bar    *pb.ProgressBar
}

func newStepProgress(w io.Writer, styles Styles) *stepProgress {
	p := &stepProgress{w: w, styles: styles}
	if isTerminal(w) {
		p.bar = progressTemplate.New(len(generate.Steps)).
			SetWriter(w).
			Set("step", stepMessages[generate.StepInitial][0]).
			Start()
	}
	return p
}

func (p *stepProgress) observe(step generate.Step, done bool) {
	msgs := stepMessages[step]

	if p.bar != nil {
		if done {
			p.bar.Increment()
		} else {
			p.bar.Set("step", msgs[0])
		}
		return
	}

	if done {
		mustN(fmt.Fprintln(p.w, p.styles.Success.Render("✔ "+msgs[1])))
	}
}

func (p *stepProgress) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
