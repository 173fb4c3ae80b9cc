package helpers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ProfileFileName is the rules file a profile is written to, and the marker
// file of a directory-style profile in a remote repository.
const ProfileFileName = "claude.md"

var whitespaceRegex = regexp.MustCompile(`\s+`)

// LocalProfile is a Markdown profile found in a local directory.
type LocalProfile struct {
	Name string
	Path string
}

// WriteProfile writes content to claude.md inside dir and returns the full path.
func WriteProfile(dir, content string) (string, error) {
	fullPath := filepath.Join(dir, ProfileFileName)

	if err := os.MkdirAll(dir, 0o755); err != nil && !os.IsExist(err) {
		return "", fmt.Errorf("error creating output folder for %s: %w", fullPath, err)
	}

	// Replace through a rename so a hard-linked backup of the old file is
	// never written through.
	tmp, err := os.CreateTemp(dir, ".claude-*.md")
	if err != nil {
		return "", fmt.Errorf("error saving file %s: %w", fullPath, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("error saving file %s: %w", fullPath, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("error saving file %s: %w", fullPath, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("error saving file %s: %w", fullPath, err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", fmt.Errorf("error saving file %s: %w", fullPath, err)
	}

	return fullPath, nil
}

func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// FindLocalProfiles lists the *.md files in dir that can be applied as a
// profile, skipping claude.md itself and README files.
func FindLocalProfiles(dir string) ([]LocalProfile, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}

	profiles := []LocalProfile{}
	for _, match := range matches {
		file := filepath.Base(match)
		switch file {
		case ProfileFileName, "README.md", "readme.md":
			continue
		}
		if ok, err := FileExists(match); err != nil || !ok {
			continue
		}
		profiles = append(profiles, LocalProfile{
			Name: strings.TrimSuffix(file, ".md"),
			Path: file,
		})
	}

	return profiles, nil
}

// LocalProfileCandidates returns the file names tried, in order, when looking
// up a local profile by name.
func LocalProfileCandidates(name string) []string {
	return []string{
		name + ".md",
		strings.ToLower(name) + ".md",
		whitespaceRegex.ReplaceAllString(name, "_") + ".md",
		whitespaceRegex.ReplaceAllString(name, "-") + ".md",
	}
}

// FindProfileFile returns the path of the first existing candidate file for
// name in dir.
func FindProfileFile(dir, name string) (string, bool) {
	for _, file := range LocalProfileCandidates(name) {
		fullPath := filepath.Join(dir, file)
		if ok, err := FileExists(fullPath); err == nil && ok {
			return fullPath, true
		}
	}
	return "", false
}

// Preview returns the first n lines of content and whether anything was cut.
func Preview(content string, n int) (string, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) <= n {
		return content, false
	}
	return strings.Join(lines[:n], "\n"), true
}
