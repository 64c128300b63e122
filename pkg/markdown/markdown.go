// Package markdown converts a Markdown document into an HTML node tree.
//
// The document is segmented into blocks, each block is classified, and the
// text of inline-bearing blocks is tokenized into spans. Every block becomes
// one child of a single top-level div.
package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/gomdsite/pkg/block"
	"github.com/yaklabco/gomdsite/pkg/htmlnode"
	"github.com/yaklabco/gomdsite/pkg/inline"
)

// EngineName identifies this converter in configuration and reports.
const EngineName = "builtin"

// RootTag is the element wrapping all blocks of a document.
const RootTag = "div"

//nolint:gochecknoglobals // Compiled once, read-only.
var listMarkerPattern = regexp.MustCompile(`^(-|\d+\.) `)

// LanguageDetector guesses the language of a code block's content.
// Returning "" or "text" leaves the block unannotated.
type LanguageDetector func(code []byte) string

// Option configures a Converter.
type Option func(*Converter)

// WithCodeLanguage annotates code blocks with a class="language-X" attribute
// using detect.
func WithCodeLanguage(detect LanguageDetector) Option {
	return func(c *Converter) {
		c.detectLanguage = detect
	}
}

// Converter turns Markdown documents into node trees. It holds no per-call
// state and is safe for concurrent use.
type Converter struct {
	detectLanguage LanguageDetector
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the engine name.
func (c *Converter) Name() string {
	return EngineName
}

// ParseDocument converts doc into a tree using default options.
func ParseDocument(doc string) (*htmlnode.Parent, error) {
	return New().Parse(doc)
}

// ToHTML converts doc to an HTML string using default options.
func ToHTML(doc string) (string, error) {
	return New().ToHTML(doc)
}

// ToHTML converts doc and renders the resulting tree.
// A document without blocks fails with htmlnode.ErrEmptyChildren.
func (c *Converter) ToHTML(doc string) (string, error) {
	root, err := c.Parse(doc)
	if err != nil {
		return "", err
	}

	html, err := root.Render()
	if err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}

	return html, nil
}

// Parse converts doc into a div-rooted tree. The root of a document without
// blocks has no children, so rendering it fails.
func (c *Converter) Parse(doc string) (*htmlnode.Parent, error) {
	blocks := block.Segment(doc)
	children := make([]htmlnode.Node, 0, len(blocks))

	for i, text := range blocks {
		typ := block.Classify(text)

		node, err := c.blockNode(text, typ)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, typ, err)
		}

		children = append(children, node)
	}

	return htmlnode.NewParent(RootTag, children...), nil
}

// blockNode builds the node for one classified block.
func (c *Converter) blockNode(text string, typ block.Type) (htmlnode.Node, error) {
	switch typ.Kind {
	case block.KindCode:
		return c.codeNode(text, typ)

	case block.KindHeading:
		return spanParent(typ.Tag(), text[typ.Level+1:])

	case block.KindQuote:
		return spanParent(typ.Tag(), quoteText(text))

	case block.KindUnorderedList, block.KindOrderedList:
		lines := strings.Split(text, "\n")
		items := make([]htmlnode.Node, 0, len(lines))
		for _, line := range lines {
			item, err := spanParent("li", listMarkerPattern.ReplaceAllString(line, ""))
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return htmlnode.NewParent(typ.Tag(), items...), nil

	case block.KindParagraph:
		return spanParent(typ.Tag(), text)

	default:
		return nil, fmt.Errorf("%w: %d", block.ErrUnknownKind, typ.Kind)
	}
}

// codeNode wraps the fence-stripped content as a single code span. No inline
// parsing happens inside code blocks.
func (c *Converter) codeNode(text string, typ block.Type) (htmlnode.Node, error) {
	content := strings.TrimSpace(strings.Trim(text, "`"))

	leaf, err := inline.ToNode(inline.NewSpan(inline.SpanCode, content))
	if err != nil {
		return nil, err
	}

	if c.detectLanguage != nil {
		if lang := c.detectLanguage([]byte(content)); lang != "" && lang != "text" {
			leaf.Attrs = htmlnode.NewAttrs(htmlnode.Attr{Key: "class", Value: "language-" + lang})
		}
	}

	return htmlnode.NewParent(typ.Tag(), leaf), nil
}

// spanParent tokenizes text and wraps the resulting leaves in tag.
func spanParent(tag, text string) (*htmlnode.Parent, error) {
	spans, err := inline.Tokenize(text)
	if err != nil {
		return nil, err
	}

	children, err := inline.ToNodes(spans)
	if err != nil {
		return nil, err
	}

	return htmlnode.NewParent(tag, children...), nil
}

// quoteText strips the '>' marker and one following space from every line,
// trims trailing whitespace, and joins the lines with single spaces.
func quoteText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimPrefix(line, ">")
		line = strings.TrimPrefix(line, " ")
		lines[i] = strings.TrimRight(line, " \t\r\f\v")
	}
	return strings.Join(lines, " ")
}
