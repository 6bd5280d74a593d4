package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docsift/internal/domain"
)

// WithExt returns path with its extension replaced by ext. The leading
// dot on ext is optional; an empty ext strips the extension. Only the
// last extension of a multi-dot name is replaced.
func WithExt(path, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Stem returns the final path component without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Split breaks a path into directory, stem, and extension. Joining
// dir, stem and ext reproduces the original path.
func Split(path string) (dir, stem, ext string) {
	dir, base := filepath.Split(path)
	ext = filepath.Ext(base)
	return dir, strings.TrimSuffix(base, ext), ext
}

// Glob returns the sorted matches for pattern. No matches is an empty
// slice, not an error; a malformed pattern is an invalid-input error.
func Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, domain.E("pathutil.glob", domain.KindInvalidInput, pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Remove deletes path. A missing file is a not-found error so callers
// can distinguish it from permission or IO failures.
func Remove(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.E("pathutil.remove", domain.KindNotFound, path, err)
	}
	if err != nil {
		return domain.E("pathutil.remove", domain.KindUnknown, path, err)
	}
	return nil
}

// RemoveIfPresent deletes path if it exists and reports whether
// anything was removed.
func RemoveIfPresent(path string) (bool, error) {
	err := Remove(path)
	if domain.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
