package helpers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"claude-profile/model"
)

var ErrInvalidRepositoryReference = errors.New("invalid GitHub repository URL")

// https://github.com/owner/repo with an optional trailing slash
var repoRegex = regexp.MustCompile(`^https://github\.com/([\w.-]+)/([\w.-]+)/?$`)

const (
	maxOwnerLength = 39
	maxRepoLength  = 100
)

// ParseRepoURL extracts the owner and repository from a GitHub repository URL.
func ParseRepoURL(urlStr string) (model.RepoRef, error) {
	match := repoRegex.FindStringSubmatch(strings.TrimSpace(urlStr))
	if len(match) != 3 {
		return model.RepoRef{}, fmt.Errorf(
			"%w: %q\nExpected format: https://github.com/owner/repository",
			ErrInvalidRepositoryReference,
			urlStr,
		)
	}

	owner, repo := match[1], match[2]
	if err := validateSegment("owner", owner, maxOwnerLength); err != nil {
		return model.RepoRef{}, err
	}
	if err := validateSegment("repository", repo, maxRepoLength); err != nil {
		return model.RepoRef{}, err
	}

	return model.RepoRef{Owner: owner, Repo: repo}, nil
}

// NormalizeRepoURL validates urlStr and returns it without surrounding
// whitespace or a trailing slash.
func NormalizeRepoURL(urlStr string) (string, error) {
	ref, err := ParseRepoURL(urlStr)
	if err != nil {
		return "", err
	}
	return ref.URL(), nil
}

func validateSegment(kind, s string, maxLen int) error {
	switch {
	case len(s) > maxLen:
		return fmt.Errorf("%w: %s name longer than %d characters", ErrInvalidRepositoryReference, kind, maxLen)
	case strings.HasPrefix(s, "."), strings.HasSuffix(s, "."):
		return fmt.Errorf("%w: %s name may not start or end with '.'", ErrInvalidRepositoryReference, kind)
	case strings.Contains(s, ".."):
		return fmt.Errorf("%w: %s name may not contain '..'", ErrInvalidRepositoryReference, kind)
	}
	return nil
}
