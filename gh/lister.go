package gh

import (
	"context"
	"errors"
	"log/slog"
	"path"
	"strings"

	"claude-profile/helpers"
	"claude-profile/log"
	"claude-profile/model"
)

// Lister enumerates the profiles available in a repository.
type Lister struct {
	host ContentHost
}

func NewLister(host ContentHost) *Lister {
	return &Lister{host: host}
}

// List returns the profiles in the templates folder, or, when that folder
// yields none, the profiles at the repository root. The two sources are
// never combined.
func (l *Lister) List(ctx context.Context, repo model.RepoRef) ([]model.ProfileCandidate, error) {
	entries, err := l.host.ListDirectory(ctx, repo, TemplatesDir)
	if err != nil {
		log.WithContext(ctx).Debug("templates folder unavailable",
			slog.String("repo", repo.String()),
			slog.Any("err", err),
		)
	} else if profiles := l.scan(ctx, repo, TemplatesDir, entries); len(profiles) > 0 {
		return profiles, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err = l.host.ListDirectory(ctx, repo, "")
	if err != nil {
		return nil, repositoryError(repo, err)
	}

	return l.scan(ctx, repo, "", entries), nil
}

// scan collects flat Markdown profiles and then directories that hold the
// rules file. dir is "" for the repository root.
func (l *Lister) scan(ctx context.Context, repo model.RepoRef, dir string, entries []model.Entry) []model.ProfileCandidate {
	atRoot := dir == ""
	profiles := []model.ProfileCandidate{}

	for _, e := range entries {
		if e.Type != model.EntryFile || !isMarkdown(e.Name) {
			continue
		}
		name := strings.TrimSuffix(e.Name, path.Ext(e.Name))
		if strings.EqualFold(name, "readme") {
			continue
		}
		if atRoot && e.Name == helpers.ProfileFileName {
			continue
		}
		profiles = append(profiles, model.ProfileCandidate{
			Name: name,
			Kind: model.KindFile,
			Path: path.Join(dir, e.Name),
		})
	}

	for _, e := range entries {
		if e.Type != model.EntryDir {
			continue
		}
		if atRoot && e.Name == TemplatesDir {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		subdir := path.Join(dir, e.Name)
		if !l.hasRulesFile(ctx, repo, subdir) {
			continue
		}
		profiles = append(profiles, model.ProfileCandidate{
			Name: e.Name,
			Kind: model.KindDirectory,
			Path: path.Join(subdir, helpers.ProfileFileName),
		})
	}

	return profiles
}

func (l *Lister) hasRulesFile(ctx context.Context, repo model.RepoRef, dir string) bool {
	entries, err := l.host.ListDirectory(ctx, repo, dir)
	if err != nil {
		log.WithContext(ctx).Debug("skipping directory",
			slog.String("repo", repo.String()),
			slog.String("dir", dir),
			slog.Any("err", err),
		)
		return false
	}

	for _, e := range entries {
		if e.Name == helpers.ProfileFileName && e.Type == model.EntryFile {
			return true
		}
	}
	return false
}

func repositoryError(repo model.RepoRef, err error) error {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr
	}

	accessErr := &RepositoryAccessError{Owner: repo.Owner, Repo: repo.Repo}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		accessErr.StatusCode = statusErr.StatusCode
	} else {
		accessErr.Err = err
	}
	return accessErr
}

// isMarkdown matches the lower-case extension only; the resolver never tries
// any other spelling.
func isMarkdown(name string) bool {
	return strings.HasSuffix(name, ".md")
}
