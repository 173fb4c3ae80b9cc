package cmd_test

import (
	"bytes"
	"context"
	"net/http"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"claude-profile/backup"
	"claude-profile/cmd"
	"claude-profile/config"
	"claude-profile/generate"
	"claude-profile/gh"
	"claude-profile/model"
)

const testRepoURL = "https://github.com/acme/agents"

// scriptedPrompter answers from queues. An exhausted confirm queue yields the
// prompt's default; exhausted input or select queues fail like a closed stdin.
type scriptedPrompter struct {
	confirms []bool
	inputs   []string
	selects  []string

	titles  []string
	choices []cmd.Choice
}

func (p *scriptedPrompter) Confirm(_ context.Context, title string, def bool) (bool, error) {
	p.titles = append(p.titles, title)
	if len(p.confirms) == 0 {
		return def, nil
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *scriptedPrompter) Input(_ context.Context, title string, validate func(string) error) (string, error) {
	p.titles = append(p.titles, title)
	if len(p.inputs) == 0 {
		return "", cmd.ErrNotInteractive
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (p *scriptedPrompter) Select(_ context.Context, title string, choices []cmd.Choice) (string, error) {
	p.titles = append(p.titles, title)
	p.choices = choices
	if len(p.selects) == 0 {
		return "", cmd.ErrNotInteractive
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	return answer, nil
}

// memHost serves a repository from a path to content map and records every
// request.
type memHost struct {
	files   map[string]string
	listErr error

	fetched []string
	listed  []string
}

func (h *memHost) FetchRaw(_ context.Context, _ model.RepoRef, _, filePath string) (int, string, error) {
	h.fetched = append(h.fetched, filePath)
	content, ok := h.files[filePath]
	if !ok {
		return http.StatusNotFound, "", &gh.StatusError{StatusCode: http.StatusNotFound, URL: filePath}
	}
	return http.StatusOK, content, nil
}

func (h *memHost) ListDirectory(_ context.Context, _ model.RepoRef, dir string) ([]model.Entry, error) {
	h.listed = append(h.listed, dir)
	if h.listErr != nil {
		return nil, h.listErr
	}

	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}

	kinds := map[string]string{}
	for p := range h.files {
		rest, ok := strings.CutPrefix(p, prefix)
		if !ok {
			continue
		}
		if head, _, nested := strings.Cut(rest, "/"); nested {
			kinds[head] = model.EntryDir
		} else {
			kinds[rest] = model.EntryFile
		}
	}
	if dir != "" && len(kinds) == 0 {
		return nil, &gh.StatusError{StatusCode: http.StatusNotFound, URL: dir}
	}

	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]model.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, model.Entry{Name: name, Path: path.Join(dir, name), Type: kinds[name]})
	}
	return entries, nil
}

// echoModel answers every prompt with a fixed reply.
type echoModel struct {
	reply   string
	prompts []string
}

func (m *echoModel) Generate(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, nil
}

type harness struct {
	workDir    string
	configPath string
	backups    *backup.Store
	prompter   *scriptedPrompter
	host       *memHost
	model      *echoModel
	env        map[string]string

	// stderr holds the log output of the last run.
	stderr string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	return &harness{
		workDir:    t.TempDir(),
		configPath: filepath.Join(t.TempDir(), "config.json"),
		backups:    backup.New(filepath.Join(t.TempDir(), "backups")),
		prompter:   &scriptedPrompter{},
		host:       &memHost{files: map[string]string{}},
		model:      &echoModel{reply: "# Generated\n"},
		env:        map[string]string{},
	}
}

func (h *harness) withRepository(t *testing.T) {
	t.Helper()
	h.withStoredRepository(t, testRepoURL)
}

// withStoredRepository writes url to the config file as is, bypassing the
// validation of the repo command.
func (h *harness) withStoredRepository(t *testing.T, url string) {
	t.Helper()
	_, err := config.Save(h.configPath, config.Config{Repository: url})
	require.NoError(t, err)
}

// run executes the CLI with args and returns stdout.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cmd.NewRootCmd(
		cmd.WithPrompter(h.prompter),
		cmd.WithHostFactory(func(time.Duration) gh.ContentHost { return h.host }),
		cmd.WithModelFactory(func(context.Context, string, string) (generate.Model, error) { return h.model, nil }),
		cmd.WithBackupStore(h.backups),
		cmd.WithWorkDir(h.workDir),
		cmd.WithLookupEnv(func(k string) (string, bool) {
			v, ok := h.env[k]
			return v, ok
		}),
	)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--config", h.configPath))

	err := root.ExecuteContext(context.Background())
	h.stderr = stderr.String()
	return stdout.String(), err
}
