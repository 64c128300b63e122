// Package goldmark provides an alternative HTML engine backed by the goldmark
// CommonMark implementation.
package goldmark

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// EngineName identifies this engine in configuration and reports.
const EngineName = "goldmark"

// Supported Markdown flavors.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Engine converts Markdown to HTML with goldmark. Unlike the builtin
// converter it does not wrap the output in a root element.
type Engine struct {
	flavor string
	md     goldmark.Markdown
}

// New creates an engine for flavor. Unknown flavors fall back to CommonMark.
func New(flavor string) *Engine {
	f := flavorOrDefault(flavor)
	return &Engine{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return EngineName
}

// Flavor returns the configured Markdown flavor.
func (e *Engine) Flavor() string {
	return e.flavor
}

// ToHTML converts doc to HTML.
func (e *Engine) ToHTML(doc string) (string, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(doc), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	return buf.String(), nil
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

func newGoldmarkInstance(flavor string) goldmark.Markdown {
	if flavor == FlavorGFM {
		return goldmark.New(goldmark.WithExtensions(extension.GFM))
	}
	return goldmark.New()
}
