package typingcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareEndToEnd(t *testing.T) {
	content := "func f() {\n\t// comment\n\treturn 1\n}\n"
	opts := Options{
		LinesPerSegment:        10,
		TabWidth:               4,
		MaxSegmentChars:        2000,
		SlackN:                 3,
		IncludeComments:        false,
		SkipLeadingIndentation: true,
		TrimTrailingWhitespace: true,
		AutoSkipBlankLines:     true,
	}

	prepared := Prepare("req-1", content, "f.go", opts)
	require.Len(t, prepared, 1)

	ps := prepared[0]
	assert.Equal(t, 1, ps.StartLine)
	assert.Equal(t, 5, ps.EndLine)
	assert.NotEmpty(t, ps.CommentRanges)
	assert.NotEmpty(t, ps.SkipRanges)

	session := NewSession(ps, opts)
	// typing exactly what the engine currently expects must drive it to
	// completion regardless of how much of the text is skip-covered
	for i := 0; i < len(ps.Text) && !session.IsComplete(); i++ {
		session.HandleKey(ps.Text[session.Cursor()])
	}
	assert.True(t, session.IsComplete())
	assert.Equal(t, 0, session.Incorrect())
}

func TestPrepareCoercesOutOfRangeOptions(t *testing.T) {
	prepared := Prepare("req-2", "abc", "f.txt", Options{LinesPerSegment: -5, TabWidth: 999, MaxSegmentChars: 1})
	require.Len(t, prepared, 1)
	assert.Equal(t, "abc", prepared[0].Text)
}
