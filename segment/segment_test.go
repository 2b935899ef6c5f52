package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskaw/typingcore/lexer"
)

func TestSplitByLineCount(t *testing.T) {
	normalized := "line1\nline2\nline3\n"
	segments := Split(normalized, 2, 1000)

	require.Len(t, segments, 2)

	assert.Equal(t, 0, segments[0].Index)
	assert.Equal(t, 1, segments[0].StartLine)
	assert.Equal(t, 2, segments[0].EndLine)
	assert.Equal(t, "line1\nline2", segments[0].Text)
	assert.Equal(t, 0, segments[0].StartOffset)
	assert.Equal(t, 11, segments[0].EndOffset)

	assert.Equal(t, 1, segments[1].Index)
	assert.Equal(t, 3, segments[1].StartLine)
	assert.Equal(t, 4, segments[1].EndLine)
	assert.Equal(t, "line3\n", segments[1].Text)

	totalChars := 0
	for _, s := range segments {
		totalChars += len(s.Text)
	}
	// one inter-segment newline (between "line2" and "line3") was consumed
	// but not assigned to either segment's text
	assert.Equal(t, len(normalized), totalChars+1)

	assert.LessOrEqual(t, segments[0].EndOffset, segments[1].StartOffset)
	for _, s := range segments {
		assert.Equal(t, s.Text, normalized[s.StartOffset:s.EndOffset])
	}
}

func TestSplitByCharCap(t *testing.T) {
	normalized := "aaaa\nbbbb\ncccc\n"
	// each line is 4 chars; a cap of 6 means a second line's added cost
	// (4 + 1 for the separating newline = 5) always pushes past it, so
	// every line flushes on its own. Only the final segment (which also
	// absorbs the dangling empty line after the last "\n") keeps its
	// trailing newline.
	segments := Split(normalized, 100, 6)
	require.Len(t, segments, 3)
	assert.Equal(t, "aaaa", segments[0].Text)
	assert.Equal(t, "bbbb", segments[1].Text)
	assert.Equal(t, "cccc\n", segments[2].Text)
}

func TestSplitOversizeLine(t *testing.T) {
	normalized := "abcdefghij"
	segments := Split(normalized, 10, 4)

	require.Len(t, segments, 3)
	for _, s := range segments {
		assert.Equal(t, 1, s.StartLine)
		assert.Equal(t, 1, s.EndLine)
	}
	assert.Equal(t, "abcd", segments[0].Text)
	assert.Equal(t, "efgh", segments[1].Text)
	assert.Equal(t, "ij", segments[2].Text)
}

func TestSplitEmpty(t *testing.T) {
	segments := Split("", 10, 100)
	require.Len(t, segments, 1)
	assert.Equal(t, "", segments[0].Text)
}

func TestSplitCoercesNonPositiveInputs(t *testing.T) {
	segments := Split("abc", 0, 0)
	require.Len(t, segments, 1)
	assert.Equal(t, "abc", segments[0].Text)
}

func TestAttachCommentRanges(t *testing.T) {
	normalized := "a//b\nc"
	segments := Split(normalized, 1, 1000)
	require.Len(t, segments, 2)

	global := lexer.ParseCommentRanges(normalized, "x.go")
	segments = AttachCommentRanges(segments, global)

	require.Len(t, segments[0].CommentRanges, 1)
	assert.Equal(t, lexer.TextRange{1, 4}, segments[0].CommentRanges[0])
	assert.Empty(t, segments[1].CommentRanges)
}
