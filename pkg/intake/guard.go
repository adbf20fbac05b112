package intake

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveBaseDir returns the canonical form of an operator-configured upload
// directory. The directory must exist and must be a directory; every failure
// wraps ErrBaseDirectoryInvalid.
func ResolveBaseDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("%w: empty path", ErrBaseDirectoryInvalid)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBaseDirectoryInvalid, err)
	}

	// Strict resolution: a missing directory is an error, not something to create
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBaseDirectoryInvalid, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBaseDirectoryInvalid, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: not a directory", ErrBaseDirectoryInvalid)
	}

	return resolved, nil
}

// IsContained reports whether candidate lies strictly inside base once both
// are canonicalized. Paths are compared segment by segment, so a sibling that
// merely shares a textual prefix ("/srv/uploads2" vs "/srv/uploads") is not
// contained. Any canonicalization failure counts as not contained.
func IsContained(base, candidate string) bool {
	canonicalBase, err := canonicalize(base)
	if err != nil {
		return false
	}
	canonicalCandidate, err := canonicalize(candidate)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(canonicalBase, canonicalCandidate)
	if err != nil {
		return false
	}
	if rel == "." || rel == ".." || filepath.IsAbs(rel) {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// CheckSymlinks walks every ancestor of path and the path itself, failing with
// ErrSymlinkDetected on the first symbolic link. Components that do not exist
// yet are skipped; they will be created as real directories by the writer.
func CheckSymlinks(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToResolvePath, err)
	}

	for dir := filepath.Dir(abs); ; {
		if err := rejectSymlink(dir); err != nil {
			return err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// A link pre-placed at the target name must never be written through
	return rejectSymlink(abs)
}

// canonicalize resolves symlinks in the longest existing prefix of path and
// appends the remaining segments as they are.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	parent := filepath.Dir(abs)
	if parent == abs {
		return "", err
	}

	resolvedParent, err := canonicalize(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedParent, filepath.Base(abs)), nil
}

func rejectSymlink(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return fmt.Errorf("%w: %s", ErrSymlinkDetected, path)
	}
	return nil
}
