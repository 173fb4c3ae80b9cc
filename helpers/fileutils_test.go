package helpers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claude-profile/helpers"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestWriteProfile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")

	path, err := helpers.WriteProfile(dir, "# Reviewer\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "claude.md"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Reviewer\n", string(got))

	_, err = helpers.WriteProfile(dir, "# Second\n")
	require.NoError(t, err)
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Second\n", string(got))
}

func TestWriteProfileLeavesHardLinksAlone(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "claude.md", "# Old\n")
	path := filepath.Join(dir, "claude.md")
	link := filepath.Join(t.TempDir(), "old.md")
	if err := os.Link(path, link); err != nil {
		t.Skipf("hard links unsupported: %v", err)
	}

	_, err := helpers.WriteProfile(dir, "# New\n")
	require.NoError(t, err)

	got, err := os.ReadFile(link)
	require.NoError(t, err)
	assert.Equal(t, "# Old\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "a")

	ok, err := helpers.FileExists(filepath.Join(dir, "a.md"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = helpers.FileExists(filepath.Join(dir, "missing.md"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = helpers.FileExists(dir)
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")
}

func TestFindLocalProfiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "reviewer.md", "# Reviewer")
	writeFile(t, dir, "security.md", "# Security")
	writeFile(t, dir, "claude.md", "# Active")
	writeFile(t, dir, "README.md", "# Readme")
	writeFile(t, dir, "readme.md", "# readme")
	writeFile(t, dir, "notes.txt", "not markdown")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.md"), 0o755))

	profiles, err := helpers.FindLocalProfiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []helpers.LocalProfile{
		{Name: "reviewer", Path: "reviewer.md"},
		{Name: "security", Path: "security.md"},
	}, profiles)
}

func TestFindLocalProfilesEmpty(t *testing.T) {
	profiles, err := helpers.FindLocalProfiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestLocalProfileCandidates(t *testing.T) {
	assert.Equal(t, []string{
		"Code Reviewer.md",
		"code reviewer.md",
		"Code_Reviewer.md",
		"Code-Reviewer.md",
	}, helpers.LocalProfileCandidates("Code Reviewer"))
}

func TestFindProfileFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "code-reviewer.md", "# Reviewer")
	writeFile(t, dir, "security.md", "# Security")

	tests := map[string]struct {
		name   string
		want   string
		wantOK bool
	}{
		"exact":            {name: "security", want: "security.md", wantOK: true},
		"lower cased":      {name: "Security", want: "security.md", wantOK: true},
		"spaces to dashes": {name: "code reviewer", want: "code-reviewer.md", wantOK: true},
		"missing":          {name: "nope", wantOK: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := helpers.FindProfileFile(dir, tc.name)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, filepath.Join(dir, tc.want), got)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	preview, truncated := helpers.Preview("a\nb\nc", 5)
	assert.Equal(t, "a\nb\nc", preview)
	assert.False(t, truncated)

	preview, truncated = helpers.Preview("1\n2\n3\n4\n5\n6\n7", 5)
	assert.Equal(t, "1\n2\n3\n4\n5", preview)
	assert.True(t, truncated)
}
