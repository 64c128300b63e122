package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdsite/pkg/config"
	"github.com/yaklabco/gomdsite/pkg/htmlnode"
	"github.com/yaklabco/gomdsite/pkg/inline"
	"github.com/yaklabco/gomdsite/pkg/reporter"
	"github.com/yaklabco/gomdsite/pkg/runner"
	"github.com/yaklabco/gomdsite/pkg/site"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Engine: "builtin",
		Pages: []runner.PageOutcome{
			{
				PageSource: runner.PageSource{Source: "content/a.md", Rel: "a.md", Output: "public/a.html"},
				Title:      "A",
				Bytes:      120,
				Written:    true,
				Stats:      site.PageStats{Headings: 1, Words: 4},
				Duration:   1500 * time.Microsecond,
			},
			{
				PageSource: runner.PageSource{Source: "content/b.md", Rel: "b.md", Output: "public/b.html"},
				Error:      fmt.Errorf("block 2 (paragraph): %w", inline.ErrUnmatchedDelimiter),
			},
			{
				PageSource: runner.PageSource{Source: "content/c.md", Rel: "c.md", Output: "public/c.html"},
				Error:      site.ErrNoTitle,
			},
		},
		Stats: runner.Stats{
			PagesDiscovered: 3, PagesGenerated: 1, PagesWritten: 1, PagesFailed: 2,
			BytesWritten: 120, Elapsed: 4 * time.Millisecond,
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, format := range []config.OutputFormat{"", config.FormatText, config.FormatJSON, config.FormatSummary} {
		rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: format})
		require.NoError(t, err, format)
		assert.NotNil(t, rep)
	}

	_, err := reporter.New(reporter.Options{Format: "sarif"})
	require.ErrorIs(t, err, reporter.ErrUnsupportedFormat)
}

func TestCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{site.ErrNoTitle, reporter.CategoryMissingTitle},
		{fmt.Errorf("x: %w", inline.ErrUnmatchedDelimiter), reporter.CategoryUnmatchedDelimiter},
		{inline.ErrMissingDestination, reporter.CategoryMissingDestination},
		{htmlnode.ErrEmptyChildren, reporter.CategoryEmptyBlock},
		{context.Canceled, reporter.CategoryCancelled},
		{errors.New("boom"), reporter.CategoryOther},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, reporter.Category(testCase.err), testCase.err.Error())
	}
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	failed, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, failed)

	out := buf.String()
	assert.Contains(t, out, "✗ content/b.md: block 2 (paragraph): unmatched delimiter")
	assert.Contains(t, out, "✗ content/c.md: no h1 title on first line")
	assert.NotContains(t, out, "content/a.md", "successful pages are listed only in verbose mode")
	assert.Contains(t, out, "✗ Built 1 page, 2 failed, 120 B written in 4ms\n")
}

func TestTextReporter_Verbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", Verbose: true})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `✓ content/a.md → public/a.html ("A", written)`)
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	failed, err := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"}).
		Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Equal(t, "No pages found.\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	failed, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, failed)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "builtin", output.Engine)
	require.Len(t, output.Pages, 3)
	assert.Equal(t, "A", output.Pages[0].Title)
	assert.InDelta(t, 1.5, output.Pages[0].DurationMS, 0.001)
	require.NotNil(t, output.Pages[0].Stats)
	assert.Equal(t, 4, output.Pages[0].Stats.Words)
	assert.Equal(t, reporter.CategoryUnmatchedDelimiter, output.Pages[1].Category)
	assert.Nil(t, output.Pages[1].Stats)
	assert.Equal(t, 2, output.Summary.PagesFailed)
	assert.InDelta(t, 4.0, output.Summary.ElapsedMS, 0.001)
}

func TestJSONReporter_RelativePaths(t *testing.T) {
	t.Parallel()

	wd := t.TempDir()
	result := &runner.Result{Pages: []runner.PageOutcome{{
		PageSource: runner.PageSource{
			Source: filepath.Join(wd, "content", "a.md"),
			Output: filepath.Join(wd, "public", "a.html"),
		},
	}}}

	var buf bytes.Buffer
	_, err := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: wd, Compact: true}).
		Report(context.Background(), result)
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, filepath.Join("content", "a.md"), output.Pages[0].Source)
	assert.Equal(t, filepath.Join("public", "a.html"), output.Pages[0].Output)
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewSummaryReporter(reporter.Options{Writer: &buf, Color: "never"})

	failed, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, failed)

	out := buf.String()
	// Categories are sorted.
	assert.Regexp(t, `(?s)missing title \(1\)\n  content/c\.md\n.*unmatched delimiter \(1\)\n  content/b\.md\n`, out)
	assert.Contains(t, out, "Build finished with failures")
}
