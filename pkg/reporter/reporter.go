// Package reporter writes site build results in text, JSON, or summary form.
package reporter

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/gomdsite/pkg/config"
	"github.com/yaklabco/gomdsite/pkg/fsutil"
	"github.com/yaklabco/gomdsite/pkg/htmlnode"
	"github.com/yaklabco/gomdsite/pkg/inline"
	"github.com/yaklabco/gomdsite/pkg/runner"
	"github.com/yaklabco/gomdsite/pkg/site"
)

// ErrUnsupportedFormat is returned by New for unknown formats.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Reporter formats and writes build results.
type Reporter interface {
	// Report writes formatted output for result and returns the number of
	// failed pages.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}

	switch format {
	case config.FormatText:
		return NewTextReporter(opts), nil
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Failure categories.
const (
	CategoryMissingTitle       = "missing title"
	CategoryUnmatchedDelimiter = "unmatched delimiter"
	CategoryMissingDestination = "missing link destination"
	CategoryEmptyBlock         = "empty block"
	CategoryIO                 = "file access"
	CategoryCancelled          = "cancelled"
	CategoryOther              = "other"
)

// Category classifies a page error for grouping.
func Category(err error) string {
	switch {
	case errors.Is(err, site.ErrNoTitle):
		return CategoryMissingTitle
	case errors.Is(err, inline.ErrUnmatchedDelimiter):
		return CategoryUnmatchedDelimiter
	case errors.Is(err, inline.ErrMissingDestination):
		return CategoryMissingDestination
	case errors.Is(err, htmlnode.ErrEmptyChildren):
		return CategoryEmptyBlock
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fsutil.ErrPermissionDenied):
		return CategoryIO
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CategoryCancelled
	default:
		return CategoryOther
	}
}
