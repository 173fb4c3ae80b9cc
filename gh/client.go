package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"claude-profile/log"
	"claude-profile/model"
)

const (
	DefaultAPIBaseURL   = "https://api.github.com"
	DefaultRawBaseURL   = "https://raw.githubusercontent.com"
	DefaultMediaBaseURL = "https://media.githubusercontent.com/media"

	// DefaultRef is the branch every profile is read from.
	DefaultRef = "main"

	DefaultTimeout = 15 * time.Second

	userAgent   = "claude-profile"
	lfsPrefix   = "version https://git-lfs.github.com/spec/v1"
	maxBodySize = 4 << 20
)

// ContentHost is the part of GitHub the resolver and lister depend on.
type ContentHost interface {
	// FetchRaw returns the status code and body of a file at ref.
	FetchRaw(ctx context.Context, repo model.RepoRef, ref, filePath string) (int, string, error)
	// ListDirectory lists the entries of dir; an empty dir is the repository root.
	ListDirectory(ctx context.Context, repo model.RepoRef, dir string) ([]model.Entry, error)
}

// Client talks to the GitHub contents API and the raw content host.
type Client struct {
	httpClient   *http.Client
	apiBaseURL   string
	rawBaseURL   string
	mediaBaseURL string
	timeout      time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithAPIBaseURL(u string) Option {
	return func(c *Client) { c.apiBaseURL = strings.TrimRight(u, "/") }
}

func WithRawBaseURL(u string) Option {
	return func(c *Client) { c.rawBaseURL = strings.TrimRight(u, "/") }
}

func WithMediaBaseURL(u string) Option {
	return func(c *Client) { c.mediaBaseURL = strings.TrimRight(u, "/") }
}

// WithTimeout bounds every individual request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:   http.DefaultClient,
		apiBaseURL:   DefaultAPIBaseURL,
		rawBaseURL:   DefaultRawBaseURL,
		mediaBaseURL: DefaultMediaBaseURL,
		timeout:      DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRaw downloads a file from the raw content host, following Git LFS
// pointers to the media host.
func (c *Client) FetchRaw(ctx context.Context, repo model.RepoRef, ref, filePath string) (int, string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	rawURL := fmt.Sprintf("%s/%s/%s/%s/%s",
		c.rawBaseURL,
		url.PathEscape(repo.Owner),
		url.PathEscape(repo.Repo),
		url.PathEscape(ref),
		escapePath(filePath),
	)

	resp, err := c.get(ctx, rawURL, "")
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	if isSuccess(resp.StatusCode) && isLfsResponse(resp) {
		lfsURL := fmt.Sprintf("%s/%s/%s/%s/%s",
			c.mediaBaseURL,
			url.PathEscape(repo.Owner),
			url.PathEscape(repo.Repo),
			url.PathEscape(ref),
			escapePath(filePath),
		)
		log.WithContext(ctx).Debug("following LFS pointer", slog.String("path", filePath))

		lfsResp, err := c.get(ctx, lfsURL, "")
		if err != nil {
			return 0, "", err
		}
		defer lfsResp.Body.Close()

		resp, rawURL = lfsResp, lfsURL
	}

	if !isSuccess(resp.StatusCode) {
		return resp.StatusCode, "", &StatusError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, "", &TransportError{URL: rawURL, Err: err}
	}

	return resp.StatusCode, string(body), nil
}

// ListDirectory lists a repository directory through the contents API.
func (c *Client) ListDirectory(ctx context.Context, repo model.RepoRef, dir string) ([]model.Entry, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	apiURL := fmt.Sprintf("%s/repos/%s/%s/contents",
		c.apiBaseURL,
		url.PathEscape(repo.Owner),
		url.PathEscape(repo.Repo),
	)
	if dir = strings.Trim(dir, "/"); dir != "" {
		apiURL += "/" + escapePath(dir)
	}

	resp, err := c.get(ctx, apiURL, "application/vnd.github+json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: apiURL}
	}

	var entries []model.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding listing of %q: %w", dir, err)
	}

	return entries, nil
}

func (c *Client) get(ctx context.Context, rawURL, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", rawURL, err)
	}

	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Err: err}
	}

	return resp, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// isLfsResponse checks if the HTTP response potentially contains a Git LFS pointer.
// It peeks at the response body without consuming it, resetting it for subsequent reads.
func isLfsResponse(res *http.Response) bool {
	contentLength, err := strconv.Atoi(res.Header.Get("Content-Length"))
	if err != nil || contentLength < 128 || contentLength > 140 {
		return false
	}

	bufr := make([]byte, len(lfsPrefix))
	n, err := io.ReadFull(res.Body, bufr)
	if err != nil && err != io.ErrUnexpectedEOF {
		return false
	}

	restOfBody, err := io.ReadAll(res.Body)
	if err != nil {
		return false
	}

	isLfs := strings.HasPrefix(string(bufr[:n]), lfsPrefix)

	res.Body.Close()
	fullBody := append(bufr[:n], restOfBody...)
	res.Body = io.NopCloser(bytes.NewReader(fullBody))

	return isLfs
}

func escapePath(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
