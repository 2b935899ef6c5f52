// Package segment splits normalized source text into fixed-size chunks
// with exact offset mapping back to the original string.
package segment

import (
	"math"

	"github.com/dskaw/typingcore/internal/textlines"
	"github.com/dskaw/typingcore/lexer"
)

// Segment is a contiguous slice of normalized text presented as one unit
// of typing practice.
type Segment struct {
	Index                  int
	StartLine, EndLine     int // 1-based, inclusive
	Text                   string
	StartOffset, EndOffset int // byte offsets into the normalized string
	CommentRanges          []lexer.TextRange // segment-local byte offsets
}

// Split partitions normalized into segments bounded by linesPerSegment and
// maxSegmentChars. linesPerSegment is coerced to at least 1; a non-positive
// maxSegmentChars is treated as unbounded. A single physical line longer
// than maxSegmentChars is split into its own run of same-line segments.
func Split(normalized string, linesPerSegment, maxSegmentChars int) []Segment {
	if linesPerSegment < 1 {
		linesPerSegment = 1
	}
	if maxSegmentChars <= 0 {
		maxSegmentChars = math.MaxInt32
	}

	lines := textlines.Split(normalized)
	var out []Segment

	pendingStart := -1
	currentLines := 0
	currentChars := 0

	emit := func(fromLine, toLine int) {
		startOffset := lines[fromLine].Start
		endOffset := lines[toLine].End
		out = append(out, Segment{
			Index:       len(out),
			StartLine:   fromLine + 1,
			EndLine:     toLine + 1,
			Text:        normalized[startOffset:endOffset],
			StartOffset: startOffset,
			EndOffset:   endOffset,
		})
	}

	resetPending := func() {
		pendingStart = -1
		currentLines = 0
		currentChars = 0
	}

	for li, ln := range lines {
		lineLen := ln.Len()

		if lineLen > maxSegmentChars {
			if currentLines > 0 {
				emit(pendingStart, li-1)
				resetPending()
			}
			for off := 0; off < lineLen; off += maxSegmentChars {
				end := off + maxSegmentChars
				if end > lineLen {
					end = lineLen
				}
				out = append(out, Segment{
					Index:       len(out),
					StartLine:   li + 1,
					EndLine:     li + 1,
					Text:        normalized[ln.Start+off : ln.Start+end],
					StartOffset: ln.Start + off,
					EndOffset:   ln.Start + end,
				})
			}
			continue
		}

		addedCost := lineLen
		if currentLines > 0 {
			addedCost++ // the "\n" separating this line from the previous one
		}

		if currentLines > 0 && (currentLines+1 > linesPerSegment || currentChars+addedCost > maxSegmentChars) {
			emit(pendingStart, li-1)
			pendingStart = li
			currentLines = 1
			currentChars = lineLen
			continue
		}

		if currentLines == 0 {
			pendingStart = li
		}
		currentLines++
		currentChars += addedCost
	}

	if currentLines > 0 {
		emit(pendingStart, len(lines)-1)
	}

	return out
}

// AttachCommentRanges intersects the global comment range list with each
// segment's [StartOffset, EndOffset) window, translating to segment-local
// offsets. Both lists are already sorted by start offset, so a single
// shared cursor avoids rescanning comments already passed.
func AttachCommentRanges(segments []Segment, commentRanges []lexer.TextRange) []Segment {
	cursor := 0
	for i := range segments {
		segments[i].CommentRanges = lexer.Intersect(commentRanges, segments[i].StartOffset, segments[i].EndOffset, &cursor)
	}
	return segments
}
