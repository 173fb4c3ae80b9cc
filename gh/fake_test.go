package gh_test

import (
	"context"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"

	"claude-profile/gh"
	"claude-profile/model"
)

// fakeHost is an in-memory repository. Directory listings are derived from
// the file set unless overridden in listErrs.
type fakeHost struct {
	mu sync.Mutex

	files     map[string]string
	fetchErrs map[string]error
	listErrs  map[string]error

	fetched []string
	listed  []string
}

func newFakeHost(files map[string]string) *fakeHost {
	return &fakeHost{
		files:     files,
		fetchErrs: map[string]error{},
		listErrs:  map[string]error{},
	}
}

func (h *fakeHost) FetchRaw(_ context.Context, _ model.RepoRef, ref, filePath string) (int, string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.fetched = append(h.fetched, filePath)

	if ref != gh.DefaultRef {
		return http.StatusNotFound, "", &gh.StatusError{StatusCode: http.StatusNotFound}
	}
	if err, ok := h.fetchErrs[filePath]; ok {
		return 0, "", err
	}
	content, ok := h.files[filePath]
	if !ok {
		return http.StatusNotFound, "", &gh.StatusError{StatusCode: http.StatusNotFound, URL: filePath}
	}
	return http.StatusOK, content, nil
}

func (h *fakeHost) ListDirectory(_ context.Context, _ model.RepoRef, dir string) ([]model.Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.listed = append(h.listed, dir)

	if err, ok := h.listErrs[dir]; ok {
		return nil, err
	}

	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}

	seen := map[string]string{}
	for p := range h.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if i := strings.Index(rest, "/"); i >= 0 {
			seen[rest[:i]] = model.EntryDir
		} else {
			seen[rest] = model.EntryFile
		}
	}
	if dir != "" && len(seen) == 0 {
		return nil, &gh.StatusError{StatusCode: http.StatusNotFound, URL: dir}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]model.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, model.Entry{
			Name: name,
			Path: path.Join(dir, name),
			Type: seen[name],
		})
	}
	return entries, nil
}
