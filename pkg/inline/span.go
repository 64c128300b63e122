// Package inline tokenizes inline Markdown text into typed spans and maps
// those spans to HTML leaves.
package inline

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gomdsite/pkg/htmlnode"
)

// SpanKind classifies a span of inline text.
type SpanKind uint8

// Span kinds.
const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

// String returns a human-readable name for the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	case SpanLink:
		return "link"
	case SpanImage:
		return "image"
	default:
		return "unknown"
	}
}

var (
	// ErrMissingDestination is returned when a link or image span has no destination.
	ErrMissingDestination = errors.New("span has no destination")

	// ErrUnknownSpanKind is returned for span kinds outside the defined set.
	ErrUnknownSpanKind = errors.New("unknown span kind")
)

// TextSpan is a contiguous run of inline text with a single kind.
type TextSpan struct {
	Kind SpanKind
	Text string

	// Destination is the URL of a link or the source of an image.
	// Nil for every other kind.
	Destination *string
}

// NewSpan creates a span without a destination.
func NewSpan(kind SpanKind, text string) TextSpan {
	return TextSpan{Kind: kind, Text: text}
}

// NewLinkSpan creates a link span.
func NewLinkSpan(text, destination string) TextSpan {
	return TextSpan{Kind: SpanLink, Text: text, Destination: &destination}
}

// NewImageSpan creates an image span; alt is stored as the span text.
func NewImageSpan(alt, source string) TextSpan {
	return TextSpan{Kind: SpanImage, Text: alt, Destination: &source}
}

// ToNode maps a span to an HTML leaf.
func ToNode(span TextSpan) (*htmlnode.Leaf, error) {
	switch span.Kind {
	case SpanPlain:
		return htmlnode.NewText(span.Text), nil
	case SpanBold:
		return htmlnode.NewLeaf("b", span.Text), nil
	case SpanItalic:
		return htmlnode.NewLeaf("i", span.Text), nil
	case SpanCode:
		return htmlnode.NewLeaf("code", span.Text), nil
	case SpanLink:
		if span.Destination == nil {
			return nil, fmt.Errorf("link %q: %w", span.Text, ErrMissingDestination)
		}
		return htmlnode.NewLeaf("a", span.Text,
			htmlnode.Attr{Key: "href", Value: *span.Destination},
		), nil
	case SpanImage:
		if span.Destination == nil {
			return nil, fmt.Errorf("image %q: %w", span.Text, ErrMissingDestination)
		}
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: *span.Destination},
			htmlnode.Attr{Key: "alt", Value: span.Text},
		), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSpanKind, span.Kind)
	}
}

// ToNodes maps every span to a leaf, preserving order.
func ToNodes(spans []TextSpan) ([]htmlnode.Node, error) {
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		leaf, err := ToNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, leaf)
	}
	return nodes, nil
}
