// Package fsutil provides the file system operations used by a site build:
// reading sources, writing pages atomically, and mirroring static assets.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrUnsafePath is returned when asked to reset the filesystem root or
	// the current directory.
	ErrUnsafePath = errors.New("refusing to reset unsafe path")
)

// DefaultDirMode is the permission mode for created directories.
const DefaultDirMode os.FileMode = 0o755

// ReadFile reads a regular file, classifying common failures.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(path, err)
	}

	return content, nil
}

// ResetDir removes dir and everything below it, then recreates it empty.
func ResetDir(dir string) error {
	clean := filepath.Clean(dir)
	if clean == "." || clean == string(filepath.Separator) || clean == "" {
		return fmt.Errorf("%w: %q", ErrUnsafePath, dir)
	}

	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf("remove %s: %w", clean, err)
	}

	if err := os.MkdirAll(clean, DefaultDirMode); err != nil {
		return fmt.Errorf("create %s: %w", clean, err)
	}

	return nil
}

// CopyTree recursively copies every file and directory below src into dst,
// creating dst if needed. File modes are preserved. It returns the number of
// files and bytes copied.
func CopyTree(ctx context.Context, src, dst string) (int, int64, error) {
	stat, err := os.Stat(src)
	if err != nil {
		return 0, 0, classify(src, err)
	}
	if !stat.IsDir() {
		return 0, 0, fmt.Errorf("copy tree %s: not a directory", src)
	}

	var (
		files int
		total int64
	)

	err = filepath.WalkDir(src, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if entry.IsDir() {
			return os.MkdirAll(target, DefaultDirMode)
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		n, err := copyFile(path, target)
		if err != nil {
			return err
		}
		files++
		total += n
		return nil
	})
	if err != nil {
		return files, total, fmt.Errorf("copy tree %s -> %s: %w", src, dst, err)
	}

	return files, total, nil
}

func copyFile(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, classify(src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, classify(src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, fmt.Errorf("copy %s: %w", src, err)
	}

	if err := out.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", dst, err)
	}

	return n, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}
