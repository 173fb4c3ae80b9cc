package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// Store keeps content-addressed copies of rules files before they are
// overwritten. A disabled store accepts every call and does nothing.
type Store struct {
	dir     string
	enabled bool
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	if dir == "" {
		return &Store{}
	}
	return &Store{dir: dir, enabled: true}
}

// Default returns a store in the user cache directory, disabled when that
// directory cannot be determined.
func Default() *Store {
	dir, err := defaultDir()
	if err != nil {
		return &Store{}
	}
	return New(dir)
}

func defaultDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Caches")
	case "windows":
		baseDir = os.Getenv("LOCALAPPDATA")
		if baseDir == "" {
			return "", errors.New("LOCALAPPDATA not set")
		}
	default:
		baseDir = os.Getenv("XDG_CACHE_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".cache")
		}
	}

	return filepath.Join(baseDir, "claude-profile", "backups"), nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) Enabled() bool { return s.enabled }

// Save stores a copy of the file at sourcePath and returns where it went.
// Content already backed up is stored once. An empty result with a nil
// error means the store is disabled.
func (s *Store) Save(sourcePath string) (string, error) {
	if !s.enabled {
		return "", nil
	}

	sha, err := ComputeFileSHA(sourcePath)
	if err != nil {
		return "", fmt.Errorf("hashing %s: %w", sourcePath, err)
	}

	dst := s.path(sha)
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	if err := os.Link(sourcePath, dst); err == nil {
		return dst, nil
	}

	if err := copyFile(sourcePath, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// Usage reports how many backups exist and their total size.
func (s *Store) Usage() (int, int64, error) {
	if !s.enabled {
		return 0, 0, nil
	}

	var count int
	var size int64
	err := filepath.WalkDir(s.dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		count++
		size += info.Size()
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, 0, nil
	}
	return count, size, err
}

func (s *Store) path(sha string) string {
	return filepath.Join(s.dir, sha[:2], sha+".md")
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		os.Remove(dst)
		return err
	}

	return dstFile.Close()
}

func ComputeFileSHA(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
