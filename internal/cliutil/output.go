// Package cliutil provides output helpers for the typedpath CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writef writes formatted output to w. A failed write is reported on stderr
// instead of being returned, so text renderers can stay error-free.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// SanitizeOutputPath validates and cleans an output file path.
// It resolves ".." components via filepath.Clean + filepath.Abs and
// rejects paths that resolve to symlinks. New files in existing
// directories are accepted. Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	cleaned := filepath.Clean(path)

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("cliutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("cliutil: refusing to write to symlink: %s", abs)
		}
		if info.IsDir() {
			return "", fmt.Errorf("cliutil: output path is a directory: %s", abs)
		}
	case os.IsNotExist(err):
		// New file, safe to proceed.
	default:
		return "", fmt.Errorf("cliutil: cannot stat path: %w", err)
	}

	return abs, nil
}

// WriteOutputFile writes data to path after sanitizing it.
// The file is created with 0600 permissions.
func WriteOutputFile(path string, data []byte) error {
	abs, err := SanitizeOutputPath(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(abs, data, 0o600); err != nil {
		return fmt.Errorf("cliutil: writing output: %w", err)
	}
	return nil
}
