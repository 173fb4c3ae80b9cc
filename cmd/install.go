package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"claude-profile/helpers"
	"claude-profile/log"
)

const (
	loadPreviewLines     = 5
	generatePreviewLines = 10
)

// installRequest describes content about to replace ./claude.md.
type installRequest struct {
	// action names the operation in messages, e.g. "Load".
	action        string
	content       string
	success       string
	commitMessage string
	previewLines  int
	// overwriteConfirmed skips the overwrite prompt when the caller already asked.
	overwriteConfirmed bool
}

func (a *App) profilePath() string {
	return filepath.Join(a.workDir, helpers.ProfileFileName)
}

// confirmOverwrite asks before an existing claude.md is replaced. With
// replacement content at hand the prompt carries a line diff stat.
func (a *App) confirmOverwrite(ctx context.Context, replacement *string) (bool, error) {
	path := a.profilePath()
	exists, err := helpers.FileExists(path)
	if err != nil {
		return false, err
	}
	if !exists {
		return true, nil
	}

	title := helpers.ProfileFileName + " already exists. Overwrite?"
	if replacement != nil {
		current, err := os.ReadFile(path)
		if err != nil {
			return false, fmt.Errorf("error reading %s: %w", path, err)
		}
		added, removed := helpers.DiffStat(string(current), *replacement)
		if added == 0 && removed == 0 {
			title = helpers.ProfileFileName + " already exists with identical content. Overwrite?"
		} else {
			title = fmt.Sprintf("%s already exists (+%d -%d lines). Overwrite?", helpers.ProfileFileName, added, removed)
		}
	}

	return a.confirm(ctx, title, false)
}

// install backs up any existing claude.md, writes the new content, shows a
// preview and offers to commit.
func (a *App) install(ctx context.Context, w io.Writer, req installRequest) error {
	if !req.overwriteConfirmed {
		ok, err := a.confirmOverwrite(ctx, &req.content)
		if err != nil {
			return err
		}
		if !ok {
			mustN(fmt.Fprintln(w, a.styles.Warning.Render(req.action+" cancelled.")))
			return nil
		}
	}

	a.backupExisting(w)

	path, err := helpers.WriteProfile(a.workDir, req.content)
	if err != nil {
		return err
	}
	mustN(fmt.Fprintln(w, a.styles.Success.Render("✅ "+req.success)))

	if req.previewLines > 0 {
		mustN(fmt.Fprintln(w, a.styles.Title.Render("\n📄 Preview:\n")))
		a.writePreview(w, req.content, req.previewLines)
	}

	return a.offerCommit(ctx, w, path, req.commitMessage)
}

func (a *App) backupExisting(w io.Writer) {
	path := a.profilePath()
	if ok, err := helpers.FileExists(path); err != nil || !ok {
		return
	}

	dst, err := a.backups.Save(path)
	if err != nil {
		slog.Warn("could not back up existing profile",
			slog.String("path", path),
			slog.Any("err", err),
		)
		return
	}
	if dst != "" {
		mustN(fmt.Fprintln(w, a.styles.Dim.Render("Previous "+helpers.ProfileFileName+" backed up to "+dst)))
	}
}

// offerCommit asks to commit path. Git failures are reported but do not fail
// the command: the profile has already been written.
func (a *App) offerCommit(ctx context.Context, w io.Writer, path, message string) error {
	ok, err := a.confirm(ctx, "Would you like to commit to Git?", true)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	err = helpers.CommitFile(ctx, filepath.Dir(path), filepath.Base(path), message)
	switch {
	case err == nil:
		mustN(fmt.Fprintln(w, a.styles.Success.Render("✅ Committed "+helpers.ProfileFileName)))
	case errors.Is(err, helpers.ErrNotGitRepository), errors.Is(err, helpers.ErrGitNotFound):
		mustN(fmt.Fprintln(w, a.styles.Warning.Render("⚠️  Skipping commit: "+err.Error())))
	default:
		log.WithContext(ctx).Debug("git commit failed", slog.Any("err", err))
		mustN(fmt.Fprintln(w, a.styles.Warning.Render("⚠️  Commit failed: "+err.Error())))
	}

	return nil
}
