package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyTree clones the subtree rooted at src into dst. Dotfiles are included
// and symlinks are dereferenced: a link to a file is copied as a regular file
// with the target's content, a link to a directory is walked like a real
// directory. File permission bits are preserved from the (resolved) source.
//
// dst is created if it does not exist. Existing files in dst are overwritten;
// CopyTree never deletes anything already present under dst.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src) // follows a symlinked root
	if err != nil {
		return fmt.Errorf("failed to stat template source %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("template source %s is not a directory", src)
	}
	return copyDir(src, dst, info.Mode())
}

func copyDir(src, dst string, mode os.FileMode) error {
	if err := os.MkdirAll(dst, mode.Perm()|0o700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		// Resolve symlinks before deciding how to copy
		info, err := os.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", srcPath, err)
		}

		if info.IsDir() {
			if err := copyDir(srcPath, dstPath, info.Mode()); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(srcPath, dstPath, info.Mode()); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}

	return nil
}
