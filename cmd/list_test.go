package cmd_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claude-profile/cmd"
	"claude-profile/gh"
	"claude-profile/helpers"
)

func TestListCmd(t *testing.T) {
	h := newHarness(t)
	h.withRepository(t)
	h.host.files = map[string]string{
		"templates/reviewer.md":     "# Reviewer",
		"templates/tutor/claude.md": "# Tutor",
		"security.md":               "# Security",
	}

	out, err := h.run(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Available Profiles (2)")
	assert.Contains(t, out, "📄 reviewer")
	assert.Contains(t, out, "Path: templates/reviewer.md")
	assert.Contains(t, out, "📁 tutor")
	assert.Contains(t, out, "Path: templates/tutor/claude.md")
	assert.NotContains(t, out, "security", "root profiles are hidden by templates")
}

func TestListCmdEmpty(t *testing.T) {
	h := newHarness(t)
	h.withRepository(t)

	out, err := h.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No profiles found in repository")
}

func TestListCmdWithoutRepository(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "list")
	assert.ErrorIs(t, err, cmd.ErrNoRepository)
}

func TestListCmdRepositoryInaccessible(t *testing.T) {
	h := newHarness(t)
	h.withRepository(t)
	h.host.listErr = &gh.StatusError{StatusCode: http.StatusNotFound}

	_, err := h.run(t, "list")
	require.ErrorIs(t, err, gh.ErrRepositoryAccess)
	assert.EqualError(t, err, "repository acme/agents not found or not accessible")
}

func TestListCmdMalformedRepository(t *testing.T) {
	for _, url := range []string{"not-a-url", "https://gitlab.com/acme/agents"} {
		t.Run(url, func(t *testing.T) {
			h := newHarness(t)
			h.withStoredRepository(t, url)

			_, err := h.run(t, "list")
			require.ErrorIs(t, err, helpers.ErrInvalidRepositoryReference)
			assert.Empty(t, h.host.listed, "no request is made")
			assert.Empty(t, h.host.fetched, "no request is made")
		})
	}
}
