package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yaklabco/gomdsite/pkg/runner"
	"github.com/yaklabco/gomdsite/pkg/site"
)

// jsonSchemaVersion identifies the JSON output layout.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string      `json:"version"`
	Engine  string      `json:"engine"`
	DryRun  bool        `json:"dryRun"`
	Pages   []JSONPage  `json:"pages"`
	Summary JSONSummary `json:"summary"`
}

// JSONPage represents a single page's outcome.
type JSONPage struct {
	Source     string          `json:"source"`
	Output     string          `json:"output"`
	Title      string          `json:"title,omitempty"`
	Bytes      int             `json:"bytes,omitempty"`
	Written    bool            `json:"written"`
	DurationMS float64         `json:"durationMs"`
	Stats      *site.PageStats `json:"stats,omitempty"`
	Error      string          `json:"error,omitempty"`
	Category   string          `json:"category,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	PagesDiscovered int     `json:"pagesDiscovered"`
	PagesGenerated  int     `json:"pagesGenerated"`
	PagesWritten    int     `json:"pagesWritten"`
	PagesUnchanged  int     `json:"pagesUnchanged"`
	PagesFailed     int     `json:"pagesFailed"`
	AssetsCopied    int     `json:"assetsCopied"`
	BytesWritten    int64   `json:"bytesWritten"`
	ElapsedMS       float64 `json:"elapsedMs"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.PagesFailed, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Pages:   make([]JSONPage, 0),
	}

	if result == nil {
		return output
	}

	output.Engine = result.Engine
	output.DryRun = result.DryRun

	for _, page := range result.Pages {
		jsonPage := JSONPage{
			Source:     r.opts.relPath(page.Source),
			Output:     r.opts.relPath(page.Output),
			Title:      page.Title,
			Bytes:      page.Bytes,
			Written:    page.Written,
			DurationMS: milliseconds(page.Duration),
		}

		if page.Error != nil {
			jsonPage.Error = page.Error.Error()
			jsonPage.Category = Category(page.Error)
		} else {
			stats := page.Stats
			jsonPage.Stats = &stats
		}

		output.Pages = append(output.Pages, jsonPage)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		PagesDiscovered: stats.PagesDiscovered,
		PagesGenerated:  stats.PagesGenerated,
		PagesWritten:    stats.PagesWritten,
		PagesUnchanged:  stats.PagesUnchanged,
		PagesFailed:     stats.PagesFailed,
		AssetsCopied:    stats.AssetsCopied,
		BytesWritten:    stats.BytesWritten,
		ElapsedMS:       milliseconds(stats.Elapsed),
	}

	return output
}

func milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1e3
}
