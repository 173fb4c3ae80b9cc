package gh

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidProfileName = errors.New("invalid profile name")
	ErrRepositoryAccess   = errors.New("repository not found or not accessible")
	ErrTransport          = errors.New("could not reach GitHub")
)

// ProfileNotFoundError reports that no candidate path yielded usable content.
type ProfileNotFoundError struct {
	Profile string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found in repository", e.Profile)
}

func (e *ProfileNotFoundError) Is(target error) bool {
	return target == ErrProfileNotFound
}

// RepositoryAccessError reports that the repository listing was rejected by
// the host. StatusCode is zero when the host answered with something that
// could not be read as a listing.
type RepositoryAccessError struct {
	Owner      string
	Repo       string
	StatusCode int
	Err        error
}

func (e *RepositoryAccessError) Error() string {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return fmt.Sprintf("repository %s/%s not found or not accessible", e.Owner, e.Repo)
	case e.StatusCode != 0:
		return fmt.Sprintf("GitHub API error for %s/%s: HTTP %d", e.Owner, e.Repo, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("failed to list profiles in %s/%s: %v", e.Owner, e.Repo, e.Err)
	}
	return fmt.Sprintf("repository %s/%s not accessible", e.Owner, e.Repo)
}

func (e *RepositoryAccessError) Is(target error) bool {
	return target == ErrRepositoryAccess
}

func (e *RepositoryAccessError) Unwrap() error {
	return e.Err
}

// RateLimited reports whether the host refused the request for quota reasons.
func (e *RepositoryAccessError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusForbidden
}

// StatusError is a non-success HTTP status returned by the host.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d %s for %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// TransportError is a network or timeout failure; no response was received.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
