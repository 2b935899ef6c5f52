package skipplan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dskaw/typingcore/lexer"
)

func TestComputeSkippableLineBreakRanges(t *testing.T) {
	assert.Equal(t, []lexer.TextRange{{5, 6}}, computeSkippableLineBreakRanges("a\n//x\nb", []lexer.TextRange{{2, 5}}))
}

func TestLeadingIndentation(t *testing.T) {
	assert.Equal(t, []lexer.TextRange{{0, 2}}, leadingIndentation("  abc"))
	assert.Equal(t, []lexer.TextRange{{0, 2}, {6, 8}}, leadingIndentation("  abc\n  def"))
	assert.Nil(t, leadingIndentation("abc"))
}

func TestTrailingWhitespace(t *testing.T) {
	assert.Equal(t, []lexer.TextRange{{3, 5}}, trailingWhitespace("abc  "))
	assert.Equal(t, []lexer.TextRange{{3, 5}}, trailingWhitespace("abc  \ndef"))
	assert.Nil(t, trailingWhitespace("abc"))
}

func TestPreCommentPadding(t *testing.T) {
	text := "a   //x"
	comments := []lexer.TextRange{{4, 7}}
	assert.Equal(t, []lexer.TextRange{{1, 4}}, preCommentPadding(text, comments))

	// comment already at column 0 of its line: no padding
	text2 := "//x\ny"
	comments2 := []lexer.TextRange{{0, 3}}
	assert.Nil(t, preCommentPadding(text2, comments2))
}

func TestPlanComposition(t *testing.T) {
	// the entire first line is indentation plus a comment, so its
	// terminating newline is itself skippable; everything folds into one
	// contiguous range covering the whole line.
	text := "  //x\nb"
	comments := []lexer.TextRange{{2, 5}}

	skips := Plan(text, comments, Options{
		IncludeComments:        false,
		SkipLeadingIndentation: true,
		TrimTrailingWhitespace: true,
	})

	assert.Equal(t, []lexer.TextRange{{0, 6}}, skips)
}

func TestPlanIncludeCommentsSkipsNoLineBreaks(t *testing.T) {
	text := "//x\nb"
	comments := []lexer.TextRange{{0, 3}}

	skips := Plan(text, comments, Options{IncludeComments: true})
	assert.Nil(t, skips)
}
