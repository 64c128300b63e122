package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdsite/pkg/config"
	"github.com/yaklabco/gomdsite/pkg/site"
)

func TestNewEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		engine   config.Engine
		wantName string
	}{
		{"builtin", config.EngineBuiltin, "builtin"},
		{"empty means builtin", "", "builtin"},
		{"goldmark", config.EngineGoldmark, "goldmark"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			cfg.Engine = testCase.engine

			engine, err := site.NewEngine(cfg)
			require.NoError(t, err)
			assert.Equal(t, testCase.wantName, engine.Name())
		})
	}
}

func TestNewEngine_Unknown(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Engine = "pandoc"

	_, err := site.NewEngine(cfg)
	require.ErrorIs(t, err, site.ErrUnknownEngine)
}

func TestNewEngine_AnnotateCode(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.AnnotateCode = true

	engine, err := site.NewEngine(cfg)
	require.NoError(t, err)

	html, err := engine.ToHTML("```\npackage main\nfunc main() {}\n```")
	require.NoError(t, err)
	assert.Equal(t, "<div><pre><code class=\"language-go\">package main\nfunc main() {}</code></pre></div>", html)
}
