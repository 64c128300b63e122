package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdsite/pkg/block"
)

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"order preserved", "A\n\nB\n\nC", []string{"A", "B", "C"}},
		{
			name: "paragraphs",
			doc:  "\nThis is **bolded** paragraph\n\nThis is another paragraph\n",
			want: []string{"This is **bolded** paragraph", "This is another paragraph"},
		},
		{
			name: "single newlines stay inside a block",
			doc:  "\nFirst line\nSecond line\n\nThird line\nFourth line\n",
			want: []string{"First line\nSecond line", "Third line\nFourth line"},
		},
		{"list block", "\n- Item 1\n- Item 2\n", []string{"- Item 1\n- Item 2"}},
		{
			name: "whitespace-only blank lines separate",
			doc:  "one\n   \t\n\n\ntwo\n \n  three  ",
			want: []string{"one", "two", "three"},
		},
		{"empty", "", []string{}},
		{"whitespace only", " \n\n\t\n ", []string{}},
		{
			name: "mixed content",
			doc: "\nThis is **bolded** paragraph\n\n" +
				"This is another paragraph with _italic_ text and `code` here\n" +
				"This is the same paragraph on a new line\n\n" +
				"- This is a list\n- with items\n",
			want: []string{
				"This is **bolded** paragraph",
				"This is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line",
				"- This is a list\n- with items",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, block.Segment(testCase.doc))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block string
		want  block.Type
	}{
		{"paragraph", "just text", block.Type{Kind: block.KindParagraph}},
		{"heading 1", "# Title", block.Type{Kind: block.KindHeading, Level: 1}},
		{"heading 3", "### Heading", block.Type{Kind: block.KindHeading, Level: 3}},
		{"heading 6", "###### Deep", block.Type{Kind: block.KindHeading, Level: 6}},
		{"seven hashes", "####### Too deep", block.Type{Kind: block.KindParagraph}},
		{"hash without space", "#hashtag", block.Type{Kind: block.KindParagraph}},
		{"heading decided by first line", "## Title\nmore text", block.Type{Kind: block.KindHeading, Level: 2}},
		{"code", "```\nfmt.Println()\n```", block.Type{Kind: block.KindCode}},
		{"code wins over heading", "```# not a heading```", block.Type{Kind: block.KindCode}},
		{"unterminated fence", "```\ncode", block.Type{Kind: block.KindParagraph}},
		{"quote", "> one\n> two", block.Type{Kind: block.KindQuote}},
		{"quote without space", ">tight", block.Type{Kind: block.KindQuote}},
		{"partial quote", "> one\ntwo", block.Type{Kind: block.KindParagraph}},
		{"unordered list", "- Item one\n- Item two", block.Type{Kind: block.KindUnorderedList}},
		{"indented continuation", "- Item one\n  continued", block.Type{Kind: block.KindParagraph}},
		{"dash without space", "-Item", block.Type{Kind: block.KindParagraph}},
		{"ordered list", "1. First\n2. Second\n3. Third", block.Type{Kind: block.KindOrderedList}},
		{"ordered list starting at 2", "2. First\n3. Second", block.Type{Kind: block.KindParagraph}},
		{"ordered list with gap", "1. First\n3. Second", block.Type{Kind: block.KindParagraph}},
		{"ordered list without space", "1.First", block.Type{Kind: block.KindParagraph}},
		{"ordered list past nine", "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j",
			block.Type{Kind: block.KindOrderedList}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, block.Classify(testCase.block))
		})
	}
}

func TestType_Tag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  block.Type
		want string
	}{
		{block.Type{Kind: block.KindParagraph}, "p"},
		{block.Type{Kind: block.KindHeading, Level: 1}, "h1"},
		{block.Type{Kind: block.KindHeading, Level: 4}, "h4"},
		{block.Type{Kind: block.KindCode}, "pre"},
		{block.Type{Kind: block.KindQuote}, "blockquote"},
		{block.Type{Kind: block.KindUnorderedList}, "ul"},
		{block.Type{Kind: block.KindOrderedList}, "ol"},
		{block.Type{Kind: block.Kind(99)}, ""},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, testCase.typ.Tag(), testCase.typ.String())
	}
}

func TestType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "heading(3)", block.Type{Kind: block.KindHeading, Level: 3}.String())
	assert.Equal(t, "ordered_list", block.Type{Kind: block.KindOrderedList}.String())
	assert.Equal(t, "unknown", block.Kind(99).String())
}

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, block.HeadingLevel("## Two"))
	assert.Equal(t, 0, block.HeadingLevel(" # indented"))
	assert.Equal(t, 0, block.HeadingLevel(""))
}
