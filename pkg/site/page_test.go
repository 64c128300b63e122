package site_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdsite/pkg/config"
	"github.com/yaklabco/gomdsite/pkg/fsutil"
	"github.com/yaklabco/gomdsite/pkg/inline"
	"github.com/yaklabco/gomdsite/pkg/site"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"simple", "# Hello", "Hello"},
		{"surrounding whitespace", "  #   Tolkien Fan Club  \n\nbody", "Tolkien Fan Club"},
		{"no space", "#Title", "Title"},
		{"trailing hashes", "# Title ##", "Title"},
		{"rest of document ignored", "# First\n# Second", "First"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := site.ExtractTitle(testCase.doc)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestExtractTitle_Missing(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{"", "## Subtitle", "no heading", "\n# Late title", "#"} {
		_, err := site.ExtractTitle(doc)
		require.ErrorIs(t, err, site.ErrNoTitle, "doc %q", doc)
	}
}

func TestApplyTemplate(t *testing.T) {
	t.Parallel()

	tmpl := "<title>{{ Title }}</title><main>{{ Content }}</main><h1>{{ Title }}</h1>"
	got := site.ApplyTemplate(tmpl, "T", "<p>x</p>")
	assert.Equal(t, "<title>T</title><main><p>x</p></main><h1>T</h1>", got)
}

func TestApplyTemplate_ContentBeforeTitle(t *testing.T) {
	t.Parallel()

	// Content is substituted first, so a placeholder inside it is then
	// replaced with the title.
	got := site.ApplyTemplate("{{ Content }}", "T", "<p>{{ Title }}</p>")
	assert.Equal(t, "<p>T</p>", got)
}

func TestRenderPage(t *testing.T) {
	t.Parallel()

	engine, err := site.NewEngine(config.NewConfig())
	require.NoError(t, err)

	page, err := site.RenderPage("# Hello\n\nSome **bold**", "<h>{{ Title }}</h>{{ Content }}", engine)
	require.NoError(t, err)

	assert.Equal(t, "Hello", page.Title)
	assert.Equal(t, "<div><h1>Hello</h1><p>Some <b>bold</b></p></div>", page.Content)
	assert.Equal(t, "<h>Hello</h>"+page.Content, page.HTML)
}

func TestRenderPage_Errors(t *testing.T) {
	t.Parallel()

	engine, err := site.NewEngine(config.NewConfig())
	require.NoError(t, err)

	_, err = site.RenderPage("no title here", "{{ Content }}", engine)
	require.ErrorIs(t, err, site.ErrNoTitle)

	_, err = site.RenderPage("# Title\n\nbroken **bold", "{{ Content }}", engine)
	require.ErrorIs(t, err, inline.ErrUnmatchedDelimiter)
}

func TestGeneratePage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "index.md")
	tmpl := filepath.Join(dir, "template.html")
	dest := filepath.Join(dir, "public", "index.html")

	require.NoError(t, os.WriteFile(src, []byte("# Home\n\nWelcome"), 0o600))
	require.NoError(t, os.WriteFile(tmpl, []byte("<title>{{ Title }}</title>{{ Content }}"), 0o600))

	engine, err := site.NewEngine(config.NewConfig())
	require.NoError(t, err)

	page, err := site.GeneratePage(context.Background(), src, tmpl, dest, engine)
	require.NoError(t, err)
	assert.Equal(t, "Home", page.Title)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "<title>Home</title><div><h1>Home</h1><p>Welcome</p></div>", string(written))
}

func TestGeneratePage_MissingTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "index.md")
	require.NoError(t, os.WriteFile(src, []byte("# Home"), 0o600))

	engine, err := site.NewEngine(config.NewConfig())
	require.NoError(t, err)

	_, err = site.GeneratePage(context.Background(), src, filepath.Join(dir, "nope.html"), filepath.Join(dir, "out.html"), engine)
	require.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.NoFileExists(t, filepath.Join(dir, "out.html"))
}
