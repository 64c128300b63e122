package goldmark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdsite/pkg/parser/goldmark"
)

func TestNew_Flavor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"commonmark", goldmark.FlavorCommonMark},
		{"gfm", goldmark.FlavorGFM},
		{"", goldmark.FlavorCommonMark},
		{"markdown-extra", goldmark.FlavorCommonMark},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, goldmark.New(testCase.in).Flavor(), testCase.in)
	}
}

func TestEngine_ToHTML(t *testing.T) {
	t.Parallel()

	engine := goldmark.New(goldmark.FlavorCommonMark)
	assert.Equal(t, goldmark.EngineName, engine.Name())

	got, err := engine.ToHTML("# Title\n\nSome **bold** text.\n")
	require.NoError(t, err)
	assert.Contains(t, got, "<h1>Title</h1>")
	assert.Contains(t, got, "<strong>bold</strong>")
}

func TestEngine_GFMTables(t *testing.T) {
	t.Parallel()

	doc := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	gfm, err := goldmark.New(goldmark.FlavorGFM).ToHTML(doc)
	require.NoError(t, err)
	assert.Contains(t, gfm, "<table>")

	plain, err := goldmark.New(goldmark.FlavorCommonMark).ToHTML(doc)
	require.NoError(t, err)
	assert.NotContains(t, plain, "<table>")
}
