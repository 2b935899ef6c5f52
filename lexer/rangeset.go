// Package lexer classifies byte ranges of normalized source text as
// comments (or comment-equivalent string literals, for Python), and
// provides the range-merging primitive shared by the skip-range planner.
package lexer

import "sort"

// TextRange is a half-open byte range [Start, End) in some reference
// string.
type TextRange struct {
	Start, End int
}

// Len returns the number of bytes covered by r.
func (r TextRange) Len() int {
	return r.End - r.Start
}

// TotalLen sums the lengths of ranges.
func TotalLen(ranges []TextRange) int {
	total := 0
	for _, r := range ranges {
		total += r.Len()
	}
	return total
}

// Merge clamps every range to [0, n], drops empties, sorts by (start, end)
// and folds adjacent or overlapping ranges into one. The result is sorted,
// non-overlapping, and order-insensitive with respect to the input.
func Merge(ranges []TextRange, n int) []TextRange {
	clamped := make([]TextRange, 0, len(ranges))
	for _, r := range ranges {
		start, end := r.Start, r.End
		if start < 0 {
			start = 0
		}
		if end > n {
			end = n
		}
		if start < end {
			clamped = append(clamped, TextRange{start, end})
		}
	}
	if len(clamped) == 0 {
		return nil
	}
	sort.Slice(clamped, func(i, j int) bool {
		if clamped[i].Start != clamped[j].Start {
			return clamped[i].Start < clamped[j].Start
		}
		return clamped[i].End < clamped[j].End
	})

	result := make([]TextRange, 0, len(clamped))
	current := clamped[0]
	for _, next := range clamped[1:] {
		if next.Start <= current.End {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		result = append(result, current)
		current = next
	}
	result = append(result, current)
	return result
}

// Contains reports whether pos lies inside one of the sorted, non-overlapping
// ranges, returning that range when it does. It runs in O(log n) by binary
// searching for the first range whose End exceeds pos.
func Contains(ranges []TextRange, pos int) (TextRange, bool) {
	idx := sort.Search(len(ranges), func(i int) bool { return ranges[i].End > pos })
	if idx < len(ranges) && ranges[idx].Start <= pos {
		return ranges[idx], true
	}
	return TextRange{}, false
}

// Intersect clips global (sorted, non-overlapping) ranges to [lo, hi) and
// translates the result to be relative to lo. Both ranges and the walk are
// assumed sorted, so callers iterating multiple windows left-to-right can
// reuse cursor to avoid rescanning from the start each time.
func Intersect(ranges []TextRange, lo, hi int, cursor *int) []TextRange {
	if cursor == nil {
		z := 0
		cursor = &z
	}
	for *cursor < len(ranges) && ranges[*cursor].End <= lo {
		*cursor++
	}
	var out []TextRange
	for i := *cursor; i < len(ranges) && ranges[i].Start < hi; i++ {
		start := ranges[i].Start
		end := ranges[i].End
		if start < lo {
			start = lo
		}
		if end > hi {
			end = hi
		}
		if start < end {
			out = append(out, TextRange{start - lo, end - lo})
		}
	}
	return out
}
