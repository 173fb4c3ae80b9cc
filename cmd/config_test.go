package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd(t *testing.T) {
	h := newHarness(t)
	h.withRepository(t)
	h.env["GEMINI_API_KEY"] = "AIzaSyExampleKey1234"

	out, err := h.run(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "Repository: "+testRepoURL)
	assert.Contains(t, out, "Last Updated:")
	assert.Contains(t, out, "Gemini API Key: AIzaSyEx...")
	assert.NotContains(t, out, "AIzaSyExampleKey1234")
	assert.Contains(t, out, "Backups: 0 (0 B)")
	assert.Contains(t, out, "Config file: "+h.configPath)
}

func TestConfigCmdUnconfigured(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "Repository: Not configured")
	assert.Contains(t, out, "Gemini API Key: Not set")
	assert.NotContains(t, out, "Last Updated")

	_, statErr := os.Stat(h.configPath)
	assert.True(t, os.IsNotExist(statErr), "showing config does not create it")
}

func TestConfigCmdShortAPIKey(t *testing.T) {
	h := newHarness(t)
	h.env["GEMINI_API_KEY"] = "abc"

	out, err := h.run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Gemini API Key: abc...")
}

func TestConfigClearCmd(t *testing.T) {
	h := newHarness(t)
	h.withRepository(t)

	out, err := h.run(t, "config", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration cleared")

	_, statErr := os.Stat(h.configPath)
	assert.True(t, os.IsNotExist(statErr))

	_, err = h.run(t, "config", "clear")
	assert.NoError(t, err, "clearing a missing config is fine")
}

func TestConfigClearCmdDeclined(t *testing.T) {
	h := newHarness(t)
	h.withRepository(t)
	h.prompter.confirms = []bool{false}

	out, err := h.run(t, "config", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Clear cancelled.")

	_, statErr := os.Stat(h.configPath)
	assert.NoError(t, statErr)
}

func TestConfigFlagFromEnvironment(t *testing.T) {
	h := newHarness(t)
	alt := filepath.Join(t.TempDir(), "alt.json")
	t.Setenv("CLAUDE_PROFILE_CONFIG", alt)

	// The --config argument appended by run takes precedence.
	_, err := h.run(t, "repo", testRepoURL)
	require.NoError(t, err)

	_, statErr := os.Stat(alt)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(h.configPath)
	assert.NoError(t, statErr)
}
