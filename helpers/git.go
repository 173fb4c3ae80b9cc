package helpers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

var (
	ErrGitNotFound       = errors.New("git executable not found in PATH")
	ErrNotGitRepository  = errors.New("not a git repository")
	DefaultCommitMessage = "Update " + ProfileFileName
)

// CommitFile stages file and commits it in the git work tree containing dir.
func CommitFile(ctx context.Context, dir, file, message string) error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}

	out, err := runGit(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err != nil || strings.TrimSpace(out) != "true" {
		return fmt.Errorf("%w: %s", ErrNotGitRepository, dir)
	}

	if _, err := runGit(ctx, dir, "add", "--", file); err != nil {
		return fmt.Errorf("git add: %w", err)
	}

	if message == "" {
		message = DefaultCommitMessage
	}
	if _, err := runGit(ctx, dir, "commit", "-m", message, "--", file); err != nil {
		return fmt.Errorf("git commit: %w", err)
	}

	return nil
}

func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("run git", slog.String("dir", dir), slog.Any("args", args))

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.String(), fmt.Errorf("%w: %s", err, msg)
		}
		return stdout.String(), err
	}

	return stdout.String(), nil
}
