// Package textlines finds physical line boundaries in a normalized string.
//
// It is shared by the segmenter (which groups lines into segments) and the
// skip-range planner (which inspects individual lines for indentation and
// trailing whitespace), so the left-to-right pass over "\n" occurrences is
// only written once.
package textlines

import "strings"

// Line describes one physical line of a string. Start and End bound the
// line's content, excluding its terminating newline. HasNewline is false
// only for the last line when the string does not end in "\n".
type Line struct {
	Start, End int
	HasNewline bool
}

// Len returns the content length of the line, excluding the newline.
func (l Line) Len() int {
	return l.End - l.Start
}

// Split walks s once and returns its physical lines in order.
func Split(s string) []Line {
	var lines []Line
	start := 0
	for {
		idx := strings.IndexByte(s[start:], '\n')
		if idx == -1 {
			lines = append(lines, Line{Start: start, End: len(s), HasNewline: false})
			return lines
		}
		end := start + idx
		lines = append(lines, Line{Start: start, End: end, HasNewline: true})
		start = end + 1
	}
}

// LineAt returns the index into lines containing byte offset pos, under the
// convention that a position exactly on a newline belongs to the line it
// terminates (not the line that follows).
func LineAt(lines []Line, pos int) int {
	lo, hi := 0, len(lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lines[mid].Start <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
