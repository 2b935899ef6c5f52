package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommentRangesCFamily(t *testing.T) {
	assert.Equal(t, []TextRange{{2, 5}}, ParseCommentRanges("a //b\nc", "x.ts"))

	assert.Equal(t, []TextRange{{0, 11}}, ParseCommentRanges("/* block */", "x.go"))

	// a "//" inside a string literal is not a comment opener
	assert.Nil(t, ParseCommentRanges(`"a // b"`, "x.go"))

	// unterminated block comment closes at end-of-input
	text := "code /* unterminated"
	assert.Equal(t, []TextRange{{5, len(text)}}, ParseCommentRanges(text, "x.c"))

	// backslash-escaped quote inside a string does not end it early
	assert.Nil(t, ParseCommentRanges(`"a \" // b"`, "x.go"))

	// unknown extension yields nothing
	assert.Nil(t, ParseCommentRanges("// comment", "x.unknown"))
}

func TestParseCommentRangesPython(t *testing.T) {
	assert.Equal(t, []TextRange{{22, 27}}, ParseCommentRanges("s = '# not a comment'\n# yes", "x.py"))

	// triple-quoted string always a comment range, delimiter to delimiter
	assert.Equal(t, []TextRange{{4, 13}}, ParseCommentRanges("x = \"\"\"doc\"\"\"\n", "x.py"))

	// string prefixes (r, b, u, f, case-insensitive, up to two letters)
	assert.Equal(t, []TextRange{{4, 15}}, ParseCommentRanges("y = rb\"\"\"doc\"\"\"\n", "x.py"))

	// a "#" inside a single-quoted string is not a comment opener
	assert.Nil(t, ParseCommentRanges(`s = '#'`, "x.py"))
}
