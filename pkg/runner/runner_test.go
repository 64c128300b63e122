package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdsite/pkg/config"
	"github.com/yaklabco/gomdsite/pkg/inline"
	"github.com/yaklabco/gomdsite/pkg/runner"
	"github.com/yaklabco/gomdsite/pkg/site"
)

const testTemplate = "<title>{{ Title }}</title>{{ Content }}"

type siteFixture struct {
	root    string
	content string
	static  string
	output  string
	tmpl    string
}

func newSite(t *testing.T, pages map[string]string) siteFixture {
	t.Helper()

	root := t.TempDir()
	fx := siteFixture{
		root:    root,
		content: filepath.Join(root, "content"),
		static:  filepath.Join(root, "static"),
		output:  filepath.Join(root, "public"),
		tmpl:    filepath.Join(root, "template.html"),
	}

	require.NoError(t, os.WriteFile(fx.tmpl, []byte(testTemplate), 0o600))
	require.NoError(t, os.MkdirAll(fx.content, 0o755))
	for rel, body := range pages {
		path := filepath.Join(fx.content, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	}

	return fx
}

func (fx siteFixture) options(t *testing.T) runner.Options {
	t.Helper()

	engine, err := site.NewEngine(config.NewConfig())
	require.NoError(t, err)

	return runner.Options{
		ContentDir: fx.content,
		Template:   fx.tmpl,
		StaticDir:  fx.static,
		OutputDir:  fx.output,
		Engine:     engine,
		Clean:      true,
	}
}

func readOutput(t *testing.T, fx siteFixture, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(fx.output, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestRun_BuildsSite(t *testing.T) {
	t.Parallel()

	fx := newSite(t, map[string]string{
		"index.md":           "# Home\n\nWelcome to **the** site",
		"blog/first.md":      "# First Post\n\n- a\n- b",
		"blog/sub/second.md": "# Second\n\n> quoted",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(fx.static, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fx.static, "index.css"), []byte("body{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(fx.static, "images", "logo.png"), []byte("png"), 0o600))

	result, err := runner.Run(context.Background(), fx.options(t))
	require.NoError(t, err)

	assert.False(t, result.HasFailures())
	assert.Equal(t, 3, result.Stats.PagesDiscovered)
	assert.Equal(t, 3, result.Stats.PagesGenerated)
	assert.Equal(t, 3, result.Stats.PagesWritten)
	assert.Equal(t, 2, result.Stats.AssetsCopied)
	assert.Equal(t, "builtin", result.Engine)

	assert.Equal(t,
		"<title>Home</title><div><h1>Home</h1><p>Welcome to <b>the</b> site</p></div>",
		readOutput(t, fx, "index.html"))
	assert.Equal(t,
		"<title>Second</title><div><h1>Second</h1><blockquote>quoted</blockquote></div>",
		readOutput(t, fx, "blog/sub/second.html"))
	assert.Equal(t, "png", readOutput(t, fx, "images/logo.png"))

	// Outcomes are ordered by relative path.
	require.Len(t, result.Pages, 3)
	assert.Equal(t, "blog/first.md", result.Pages[0].Rel)
	assert.Equal(t, "First Post", result.Pages[0].Title)
	assert.Equal(t, 1, result.Pages[0].Stats.Headings)
}

func TestRun_PageFailureIsIsolated(t *testing.T) {
	t.Parallel()

	fx := newSite(t, map[string]string{
		"a.md": "# A\n\nfine",
		"b.md": "# B\n\nbroken **bold",
		"c.md": "no title",
		"d.md": "# D\n\nalso fine",
	})

	opts := fx.options(t)
	opts.Jobs = 2

	result, err := runner.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, result.HasFailures())
	assert.Equal(t, 2, result.Stats.PagesFailed)
	assert.Equal(t, 2, result.Stats.PagesGenerated)

	failed := result.Failed()
	require.Len(t, failed, 2)
	require.ErrorIs(t, failed[0].Error, inline.ErrUnmatchedDelimiter)
	require.ErrorIs(t, failed[1].Error, site.ErrNoTitle)

	assert.FileExists(t, filepath.Join(fx.output, "a.html"))
	assert.FileExists(t, filepath.Join(fx.output, "d.html"))
	assert.NoFileExists(t, filepath.Join(fx.output, "b.html"))
}

func TestRun_CleanRemovesStaleOutput(t *testing.T) {
	t.Parallel()

	fx := newSite(t, map[string]string{"index.md": "# Home"})
	require.NoError(t, os.MkdirAll(fx.output, 0o755))
	stale := filepath.Join(fx.output, "stale.html")
	require.NoError(t, os.WriteFile(stale, nil, 0o600))

	opts := fx.options(t)
	opts.Clean = false
	_, err := runner.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.FileExists(t, stale)

	opts.Clean = true
	_, err = runner.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
}

func TestRun_UnchangedPagesNotRewritten(t *testing.T) {
	t.Parallel()

	fx := newSite(t, map[string]string{"index.md": "# Home"})
	opts := fx.options(t)
	opts.Clean = false

	first, err := runner.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Stats.PagesWritten)

	second, err := runner.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Stats.PagesWritten)
	assert.Equal(t, 1, second.Stats.PagesUnchanged)
}

func TestRun_DryRun(t *testing.T) {
	t.Parallel()

	fx := newSite(t, map[string]string{"index.md": "# Home"})
	opts := fx.options(t)
	opts.DryRun = true

	result, err := runner.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Stats.PagesGenerated)
	assert.Zero(t, result.Stats.PagesWritten)
	assert.Zero(t, result.Stats.PagesUnchanged)
	assert.NoDirExists(t, fx.output)
}

func TestRun_MissingTemplate(t *testing.T) {
	t.Parallel()

	fx := newSite(t, map[string]string{"index.md": "# Home"})
	opts := fx.options(t)
	opts.Template = filepath.Join(fx.root, "missing.html")

	_, err := runner.Run(context.Background(), opts)
	require.Error(t, err)
}

func TestRun_NoEngine(t *testing.T) {
	t.Parallel()

	_, err := runner.Run(context.Background(), runner.Options{})
	require.ErrorIs(t, err, runner.ErrNoEngine)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	fx := newSite(t, map[string]string{"index.md": "# Home"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, fx.options(t))
	require.ErrorIs(t, err, context.Canceled)
}

// countingEngine records how many documents it converted.
type countingEngine struct {
	calls atomic.Int64
}

func (e *countingEngine) Name() string { return "counting" }

func (e *countingEngine) ToHTML(doc string) (string, error) {
	e.calls.Add(1)
	if doc == "# fail" {
		return "", errors.New("boom")
	}
	return "<p>ok</p>", nil
}

func TestRun_CustomEngineSeesEveryPage(t *testing.T) {
	t.Parallel()

	pages := make(map[string]string)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		pages[name+".md"] = "# " + name
	}
	pages["z.md"] = "# fail"
	fx := newSite(t, pages)

	engine := &countingEngine{}
	opts := fx.options(t)
	opts.Engine = engine
	opts.Jobs = 3

	result, err := runner.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, int64(9), engine.calls.Load())
	assert.Equal(t, 8, result.Stats.PagesGenerated)
	assert.Equal(t, 1, result.Stats.PagesFailed)
	assert.Equal(t, "counting", result.Engine)
}
