package copier

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Replicate mirrors the tree rooted at src into dst, creating dst and any
// missing ancestors. Entries matching the exclusion set are skipped without
// recursing. Existing files at the destination are overwritten. Enumeration
// order is whatever the source reports; callers must not depend on it.
//
// onCopy, if non-nil, is invoked once per copied file with the
// slash-separated path relative to src. It is a progress side channel and
// has no effect on the copy itself.
//
// Replication is not transactional: a mid-copy failure leaves the
// destination partially populated.
func Replicate(src fs.FS, dst string, onCopy func(rel string)) error {
	return replicateDir(src, ".", dst, onCopy)
}

func replicateDir(src fs.FS, rel, dst string, onCopy func(string)) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dst, err)
	}

	entries, err := fs.ReadDir(src, rel)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", rel, err)
	}

	for _, entry := range entries {
		if Excluded(entry.Name()) {
			continue
		}

		srcPath := path.Join(rel, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := replicateDir(src, srcPath, dstPath, onCopy); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := CopyFile(src, srcPath, dstPath); err != nil {
				return err
			}
			if onCopy != nil {
				onCopy(srcPath)
			}
		}
		// Skip symlinks and other special files during copy.
	}

	return nil
}

// CopyFile copies a single file from src to the destination path, creating
// parent directories as needed and overwriting any existing file. Errors from
// a missing source propagate unwrapped so callers can test fs.ErrNotExist.
func CopyFile(src fs.FS, name, dst string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}

	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
