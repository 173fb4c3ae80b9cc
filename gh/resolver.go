package gh

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"claude-profile/helpers"
	"claude-profile/log"
	"claude-profile/model"
)

// TemplatesDir is the preferred folder for profiles in a repository.
const TemplatesDir = "templates"

// Candidate is one location tried when resolving a profile by name.
// Lower Priority values are tried first.
type Candidate struct {
	Path     string
	Priority int
}

// CandidatePaths returns the ordered locations for a profile: the templates
// folder first, then the repository root. Only lower-casing is applied to
// the name. Duplicate paths keep their first position.
func CandidatePaths(name string) []Candidate {
	lower := strings.ToLower(name)
	paths := []string{
		path.Join(TemplatesDir, name+".md"),
		path.Join(TemplatesDir, lower+".md"),
		path.Join(TemplatesDir, name, helpers.ProfileFileName),
		path.Join(TemplatesDir, lower, helpers.ProfileFileName),
		name + ".md",
		path.Join(name, helpers.ProfileFileName),
	}

	seen := make(map[string]bool, len(paths))
	candidates := make([]Candidate, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		candidates = append(candidates, Candidate{Path: p, Priority: len(candidates)})
	}

	return candidates
}

// ValidateProfileName rejects names that would escape the directory scope of
// the candidate paths.
func ValidateProfileName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidProfileName)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidProfileName, name)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}
	return nil
}

// Resolver fetches a profile by trying each candidate path in order.
type Resolver struct {
	host ContentHost
	ref  string
}

func NewResolver(host ContentHost) *Resolver {
	return &Resolver{host: host, ref: DefaultRef}
}

// Resolve returns the content of the first candidate path that holds
// non-blank text. Failures of individual candidates are not reported; when
// every candidate fails the result is a [ProfileNotFoundError].
func (r *Resolver) Resolve(ctx context.Context, repo model.RepoRef, name string) (string, error) {
	if err := ValidateProfileName(name); err != nil {
		return "", err
	}

	for _, c := range CandidatePaths(name) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		logger := log.WithContext(ctx).With(
			slog.String("repo", repo.String()),
			slog.String("path", c.Path),
		)

		status, body, err := r.host.FetchRaw(ctx, repo, r.ref, c.Path)
		if err != nil {
			logger.Debug("candidate unavailable", slog.Int("status", status), slog.Any("err", err))
			continue
		}
		if strings.TrimSpace(body) == "" {
			logger.Debug("candidate is empty")
			continue
		}

		logger.Debug("resolved profile", slog.String("profile", name))
		return body, nil
	}

	return "", &ProfileNotFoundError{Profile: name}
}
