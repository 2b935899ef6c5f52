package typingcore

import (
	"github.com/dskaw/typingcore/engine"
	"github.com/dskaw/typingcore/lexer"
	"github.com/dskaw/typingcore/segment"
	"github.com/dskaw/typingcore/skipplan"
)

// PreparedSegment is one element of the output of Prepare: a segment ready
// to be shown, along with the skip ranges a session for it should use.
type PreparedSegment struct {
	segment.Segment
	SkipRanges []lexer.TextRange
}

// Prepare runs the full text-preparation pipeline — normalize, lex
// comments, segment, attach per-segment comment ranges, then plan skip
// ranges for each segment — and returns one PreparedSegment per segment of
// content. It is a pure function of its inputs and is safe to run on a
// background worker; requestID is not consulted here, it exists purely so
// the caller can correlate a result (or its absence) back to the request
// that asked for it.
func Prepare(requestID, content, fileName string, opts Options) []PreparedSegment {
	opts = opts.Coerced()

	normalized := Normalize(content, opts.TabWidth)
	commentRanges := lexer.ParseCommentRanges(normalized, fileName)

	segments := segment.Split(normalized, opts.LinesPerSegment, opts.MaxSegmentChars)
	segments = segment.AttachCommentRanges(segments, commentRanges)

	prepared := make([]PreparedSegment, len(segments))
	for i, seg := range segments {
		skipRanges := skipplan.Plan(seg.Text, seg.CommentRanges, skipplan.Options{
			IncludeComments:        opts.IncludeComments,
			SkipLeadingIndentation: opts.SkipLeadingIndentation,
			TrimTrailingWhitespace: opts.TrimTrailingWhitespace,
		})
		prepared[i] = PreparedSegment{Segment: seg, SkipRanges: skipRanges}
	}
	return prepared
}

// NewSession builds a typing engine session for one prepared segment.
func NewSession(ps PreparedSegment, opts Options) *engine.State {
	opts = opts.Coerced()
	return engine.Create(ps.Text, opts.SlackN, opts.AutoSkipBlankLines, ps.SkipRanges, opts.AllowWhitespaceAdvanceToNewline)
}
