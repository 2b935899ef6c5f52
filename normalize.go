package typingcore

import "strings"

// Normalize converts input to the canonical form every other component
// operates on: a leading byte-order mark is dropped, CRLF and lone CR
// collapse to LF, and horizontal tabs expand to tabWidth spaces (or are
// deleted when tabWidth is 0). tabWidth is coerced to a non-negative
// integer before use.
func Normalize(input string, tabWidth int) string {
	if tabWidth < 0 {
		tabWidth = 0
	}

	input = strings.TrimPrefix(input, "﻿")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	if !strings.Contains(input, "\t") {
		return input
	}
	return strings.ReplaceAll(input, "\t", strings.Repeat(" ", tabWidth))
}
