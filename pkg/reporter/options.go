package reporter

import (
	"io"
	"os"
	"path/filepath"

	"github.com/yaklabco/gomdsite/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Verbose lists every generated page, not only failures (text format).
	Verbose bool

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: config.FormatText,
		Color:  "auto",
	}
}

// relPath makes path relative to the working directory when possible.
func (o Options) relPath(path string) string {
	if o.WorkingDir == "" || path == "" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, abs)
	if err != nil {
		return path
	}
	return rel
}
