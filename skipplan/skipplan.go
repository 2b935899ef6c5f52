// Package skipplan computes the skip ranges of a segment: the positions a
// typing session shows but does not require the user to type.
package skipplan

import (
	"github.com/dskaw/typingcore/internal/textlines"
	"github.com/dskaw/typingcore/lexer"
)

// Options controls which categories of skip range are computed.
// autoSkipBlankLines is deliberately absent: it is handled by the typing
// engine at keystroke time, not by this planner.
type Options struct {
	IncludeComments        bool
	SkipLeadingIndentation bool
	TrimTrailingWhitespace bool
}

// Plan composes the engine-ready skip ranges for segment text T, given its
// (segment-local) comment ranges and the policy flags in opts. The result
// is merged, sorted, non-overlapping, and clipped to [0, len(text)].
func Plan(text string, commentRanges []lexer.TextRange, opts Options) []lexer.TextRange {
	n := len(text)

	var skipSpace []lexer.TextRange
	if opts.SkipLeadingIndentation {
		skipSpace = append(skipSpace, leadingIndentation(text)...)
	}
	if !opts.IncludeComments {
		skipSpace = append(skipSpace, preCommentPadding(text, commentRanges)...)
	}
	if opts.TrimTrailingWhitespace {
		skipSpace = append(skipSpace, trailingWhitespace(text)...)
	}

	var baseSkip []lexer.TextRange
	if !opts.IncludeComments {
		baseSkip = append(append(baseSkip, commentRanges...), skipSpace...)
	} else {
		baseSkip = skipSpace
	}
	baseSkip = lexer.Merge(baseSkip, n)

	var lineBreakSkip []lexer.TextRange
	if !opts.IncludeComments {
		lineBreakSkip = computeSkippableLineBreakRanges(text, baseSkip)
	}

	return lexer.Merge(append(append([]lexer.TextRange{}, baseSkip...), lineBreakSkip...), n)
}

// leadingIndentation returns, for each line, the maximal run of ASCII
// spaces at the start of the line.
func leadingIndentation(text string) []lexer.TextRange {
	var out []lexer.TextRange
	for _, ln := range textlines.Split(text) {
		i := ln.Start
		for i < ln.End && text[i] == ' ' {
			i++
		}
		if i > ln.Start {
			out = append(out, lexer.TextRange{ln.Start, i})
		}
	}
	return out
}

// trailingWhitespace returns, for each line, the maximal run of ' ' or '\t'
// immediately before the line terminator (or end-of-input for the last
// line).
func trailingWhitespace(text string) []lexer.TextRange {
	var out []lexer.TextRange
	for _, ln := range textlines.Split(text) {
		i := ln.End
		for i > ln.Start && (text[i-1] == ' ' || text[i-1] == '\t') {
			i--
		}
		if i < ln.End {
			out = append(out, lexer.TextRange{i, ln.End})
		}
	}
	return out
}

// preCommentPadding returns, for each comment range not starting at column
// 0 of its line, the run of spaces immediately preceding it, bounded below
// by the start of the line.
func preCommentPadding(text string, comments []lexer.TextRange) []lexer.TextRange {
	if len(comments) == 0 {
		return nil
	}
	lines := textlines.Split(text)
	var out []lexer.TextRange
	for _, c := range comments {
		li := textlines.LineAt(lines, c.Start)
		lineStart := lines[li].Start
		if c.Start == lineStart {
			continue
		}
		i := c.Start
		for i > lineStart && text[i-1] == ' ' {
			i--
		}
		if i < c.Start {
			out = append(out, lexer.TextRange{i, c.Start})
		}
	}
	return out
}

// computeSkippableLineBreakRanges returns, for each "\n" in text, its own
// single-byte range when the entire content of the line it terminates is
// covered by base (e.g. the line is comment-only, or already-skippable
// whitespace).
func computeSkippableLineBreakRanges(text string, base []lexer.TextRange) []lexer.TextRange {
	var out []lexer.TextRange
	for _, ln := range textlines.Split(text) {
		if !ln.HasNewline {
			continue
		}
		if lineFullyCovered(ln.Start, ln.End, base) {
			out = append(out, lexer.TextRange{ln.End, ln.End + 1})
		}
	}
	return out
}

// lineFullyCovered reports whether [start, end) is entirely contained in
// the union of the sorted, non-overlapping ranges.
func lineFullyCovered(start, end int, ranges []lexer.TextRange) bool {
	if start == end {
		return true
	}
	pos := start
	for _, r := range ranges {
		if r.Start > pos {
			return false
		}
		if r.End > pos {
			pos = r.End
		}
		if pos >= end {
			return true
		}
	}
	return pos >= end
}
