// Package block splits a Markdown document into blank-line-delimited blocks
// and classifies each block's syntactic kind.
package block

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Kind classifies a block.
type Kind uint8

// Block kinds.
const (
	KindParagraph Kind = iota
	KindHeading
	KindCode
	KindQuote
	KindUnorderedList
	KindOrderedList
)

// String returns a human-readable name for the block kind.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindCode:
		return "code"
	case KindQuote:
		return "quote"
	case KindUnorderedList:
		return "unordered_list"
	case KindOrderedList:
		return "ordered_list"
	default:
		return "unknown"
	}
}

// ErrUnknownKind is returned for block kinds outside the defined set.
var ErrUnknownKind = errors.New("unknown block kind")

// Fence delimits a code block.
const Fence = "```"

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	// separatorPattern matches whitespace spanning at least one blank line.
	separatorPattern = regexp.MustCompile(`\n\s*\n`)

	headingPattern = regexp.MustCompile(`^(#{1,6}) `)
)

// Type is the classification result for a block.
type Type struct {
	Kind Kind

	// Level is the heading level (1-6) for KindHeading, zero otherwise.
	Level int
}

// Tag returns the HTML element name wrapping a block of this type.
func (t Type) Tag() string {
	switch t.Kind {
	case KindParagraph:
		return "p"
	case KindHeading:
		return "h" + strconv.Itoa(t.Level)
	case KindCode:
		return "pre"
	case KindQuote:
		return "blockquote"
	case KindUnorderedList:
		return "ul"
	case KindOrderedList:
		return "ol"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if t.Kind == KindHeading {
		return t.Kind.String() + "(" + strconv.Itoa(t.Level) + ")"
	}
	return t.Kind.String()
}

// Segment splits doc into blocks. Blocks are separated by one or more blank
// lines, trimmed of surrounding whitespace; empty blocks are dropped.
func Segment(doc string) []string {
	return lo.FilterMap(separatorPattern.Split(doc, -1), func(raw string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(raw)
		return trimmed, trimmed != ""
	})
}

// Classify determines the type of a single block. Checks run in priority
// order: code, heading, quote, unordered list, ordered list, paragraph.
func Classify(block string) Type {
	lines := strings.Split(block, "\n")

	if strings.HasPrefix(block, Fence) && strings.HasSuffix(block, Fence) {
		return Type{Kind: KindCode}
	}

	if level := HeadingLevel(lines[0]); level > 0 {
		return Type{Kind: KindHeading, Level: level}
	}

	if lo.EveryBy(lines, func(line string) bool { return strings.HasPrefix(line, ">") }) {
		return Type{Kind: KindQuote}
	}

	if lo.EveryBy(lines, func(line string) bool { return strings.HasPrefix(line, "- ") }) {
		return Type{Kind: KindUnorderedList}
	}

	if isOrderedList(lines) {
		return Type{Kind: KindOrderedList}
	}

	return Type{Kind: KindParagraph}
}

// HeadingLevel returns the number of leading '#' characters when line opens
// with 1 to 6 of them followed by a space, and 0 otherwise.
func HeadingLevel(line string) int {
	match := headingPattern.FindStringSubmatch(line)
	if match == nil {
		return 0
	}
	return len(match[1])
}

// isOrderedList reports whether line i (1-based) starts with "i. " for every line.
func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, OrderedMarker(i+1)) {
			return false
		}
	}
	return true
}

// OrderedMarker returns the list marker expected on the n-th line of an ordered list.
func OrderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}
