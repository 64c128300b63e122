package inline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnmatchedDelimiter is returned when an emphasis or code delimiter is not closed.
var ErrUnmatchedDelimiter = errors.New("unmatched delimiter")

// Delimiters for the emphasis and code passes.
const (
	DelimiterBold   = "**"
	DelimiterItalic = "_"
	DelimiterCode   = "`"
)

// Bracketed text may not contain brackets and destinations may not contain parentheses.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`)
)

// Match is a bracketed marker found in text: the text (or alt text) and its destination.
type Match struct {
	Text        string
	Destination string
}

// ExtractImages returns all non-overlapping ![alt](src) markers, left to right.
func ExtractImages(text string) []Match {
	var matches []Match
	for _, sub := range imagePattern.FindAllStringSubmatch(text, -1) {
		matches = append(matches, Match{Text: sub[1], Destination: sub[2]})
	}
	return matches
}

// ExtractLinks returns all non-overlapping [text](url) markers, left to right,
// ignoring any marker whose opening bracket directly follows '!'.
func ExtractLinks(text string) []Match {
	var matches []Match

	for offset := 0; offset < len(text); {
		loc := linkPattern.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}

		start := offset + loc[0]
		if start > 0 && text[start-1] == '!' {
			// Resume one byte later, as a scan refusing this start position would.
			offset = start + 1
			continue
		}

		matches = append(matches, Match{
			Text:        text[offset+loc[2] : offset+loc[3]],
			Destination: text[offset+loc[4] : offset+loc[5]],
		})
		offset += loc[1]
	}

	return matches
}

// SplitImages extracts image markers from plain spans.
// Images with empty alt text are consumed but produce no span.
func SplitImages(spans []TextSpan) []TextSpan {
	return splitMarkers(spans, SpanImage, ExtractImages, func(m Match) string {
		return "![" + m.Text + "](" + m.Destination + ")"
	})
}

// SplitLinks extracts link markers from plain spans.
// Links with empty text are consumed but produce no span.
func SplitLinks(spans []TextSpan) []TextSpan {
	return splitMarkers(spans, SpanLink, ExtractLinks, func(m Match) string {
		return "[" + m.Text + "](" + m.Destination + ")"
	})
}

// splitMarkers cuts each plain span at the first remaining occurrence of every
// extracted marker. Empty text before a marker and after the last one is dropped.
func splitMarkers(
	spans []TextSpan,
	kind SpanKind,
	extract func(string) []Match,
	marker func(Match) string,
) []TextSpan {
	result := make([]TextSpan, 0, len(spans))

	for _, span := range spans {
		if span.Kind != SpanPlain {
			result = append(result, span)
			continue
		}

		matches := extract(span.Text)
		if len(matches) == 0 {
			result = append(result, span)
			continue
		}

		remaining := span.Text
		for _, match := range matches {
			literal := marker(match)
			idx := strings.Index(remaining, literal)
			if idx < 0 {
				continue
			}

			before := remaining[:idx]
			remaining = remaining[idx+len(literal):]

			if before != "" {
				result = append(result, NewSpan(SpanPlain, before))
			}
			if match.Text != "" {
				destination := match.Destination
				result = append(result, TextSpan{Kind: kind, Text: match.Text, Destination: &destination})
			}
		}

		if remaining != "" {
			result = append(result, NewSpan(SpanPlain, remaining))
		}
	}

	return result
}

// SplitDelimiter splits each plain span on delimiter, alternating plain and
// kind spans. Empty parts are dropped. A plain span with an odd number of
// delimiters fails with ErrUnmatchedDelimiter.
func SplitDelimiter(spans []TextSpan, delimiter string, kind SpanKind) ([]TextSpan, error) {
	result := make([]TextSpan, 0, len(spans))

	for _, span := range spans {
		if span.Kind != SpanPlain {
			result = append(result, span)
			continue
		}

		parts := strings.Split(span.Text, delimiter)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w %q in %q", ErrUnmatchedDelimiter, delimiter, span.Text)
		}

		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				result = append(result, NewSpan(SpanPlain, part))
			} else {
				result = append(result, NewSpan(kind, part))
			}
		}
	}

	return result, nil
}

// Tokenize converts inline Markdown text into spans. Passes run in a fixed
// order: images, links, bold, italic, code. Each pass only subdivides spans
// that are still plain.
func Tokenize(text string) ([]TextSpan, error) {
	spans := []TextSpan{NewSpan(SpanPlain, text)}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)

	passes := []struct {
		delimiter string
		kind      SpanKind
	}{
		{DelimiterBold, SpanBold},
		{DelimiterItalic, SpanItalic},
		{DelimiterCode, SpanCode},
	}

	for _, pass := range passes {
		var err error
		spans, err = SplitDelimiter(spans, pass.delimiter, pass.kind)
		if err != nil {
			return nil, err
		}
	}

	return spans, nil
}
