// Package htmlnode provides a minimal HTML element tree and its serialization.
//
// A tree is built from two node variants: *Leaf, which carries a text value,
// and *Parent, which carries child nodes. Values are emitted verbatim; no
// escaping is performed.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrMissingValue is returned when a leaf without a value is rendered.
	ErrMissingValue = errors.New("leaf node has no value")

	// ErrMissingTag is returned when a parent without a tag is rendered.
	ErrMissingTag = errors.New("parent node has no tag")

	// ErrEmptyChildren is returned when a parent without children is rendered.
	ErrEmptyChildren = errors.New("parent node has no children")
)

// Node is an element of the HTML tree. The variant set is closed:
// *Leaf and *Parent are the only implementations.
type Node interface {
	// Render serializes the node and its descendants to HTML.
	Render() (string, error)

	node()
}

// Leaf is a node without children. An untagged leaf renders as bare text.
type Leaf struct {
	// Tag is the element name; empty means plain text.
	Tag string

	// Value is the element content. Nil means the value is absent.
	Value *string

	// Attrs holds element attributes. May be nil.
	Attrs *Attrs
}

// Parent is a tagged node wrapping one or more children.
type Parent struct {
	// Tag is the element name. Required.
	Tag string

	// Children are rendered in order inside the element. At least one is required.
	Children []Node

	// Attrs holds element attributes. May be nil.
	Attrs *Attrs
}

// NewLeaf creates a tagged leaf with the given value.
// Attributes are attached only when at least one is given.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	leaf := &Leaf{Tag: tag, Value: &value}
	if len(attrs) > 0 {
		leaf.Attrs = NewAttrs(attrs...)
	}
	return leaf
}

// NewText creates an untagged leaf that renders as value.
func NewText(value string) *Leaf {
	return &Leaf{Value: &value}
}

// NewParent creates a parent node with the given children.
func NewParent(tag string, children ...Node) *Parent {
	return &Parent{Tag: tag, Children: children}
}

// Render implements Node.
func (l *Leaf) Render() (string, error) {
	if l.Value == nil {
		return "", fmt.Errorf("render <%s>: %w", l.Tag, ErrMissingValue)
	}

	if l.Tag == "" {
		return *l.Value, nil
	}

	return openTag(l.Tag, l.Attrs) + *l.Value + closeTag(l.Tag), nil
}

// Render implements Node.
func (p *Parent) Render() (string, error) {
	if p.Tag == "" {
		return "", ErrMissingTag
	}

	if len(p.Children) == 0 {
		return "", fmt.Errorf("render <%s>: %w", p.Tag, ErrEmptyChildren)
	}

	var sb strings.Builder
	sb.WriteString(openTag(p.Tag, p.Attrs))
	for _, child := range p.Children {
		if child == nil {
			return "", fmt.Errorf("render <%s>: nil child: %w", p.Tag, ErrMissingValue)
		}
		html, err := child.Render()
		if err != nil {
			return "", err
		}
		sb.WriteString(html)
	}
	sb.WriteString(closeTag(p.Tag))

	return sb.String(), nil
}

func (*Leaf) node()   {}
func (*Parent) node() {}

// openTag builds "<tag attrs>". Attributes are serialized only when present,
// so an empty collection adds nothing to the element.
func openTag(tag string, attrs *Attrs) string {
	if attrs.Len() == 0 {
		return "<" + tag + ">"
	}
	return "<" + tag + attrs.HTML() + ">"
}

func closeTag(tag string) string {
	return "</" + tag + ">"
}
