package lexer

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// cFamilyExtensions lists the file extensions (without the leading dot,
// already lowercased) that select the C-family comment lexer.
var cFamilyExtensions = map[string]bool{
	"c": true, "h": true, "cpp": true, "cc": true, "hpp": true,
	"java": true, "js": true, "ts": true, "tsx": true, "go": true,
	"rs": true, "cs": true, "kt": true, "swift": true, "php": true,
	"rb": true, "scala": true, "m": true, "mm": true,
}

// ParseCommentRanges returns the comment ranges of text, choosing a lexer
// mode from fileName's extension. Unrecognized extensions yield no ranges.
func ParseCommentRanges(text string, fileName string) []TextRange {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	switch {
	case ext == "py":
		return parsePython(text)
	case cFamilyExtensions[ext]:
		return parseCFamily(text)
	default:
		return nil
	}
}

type cFamilyState int

const (
	cCode cFamilyState = iota
	cLineComment
	cBlockComment
	cSingleQuote
	cDoubleQuote
	cTemplate
)

// parseCFamily lexes C-family source (C, Java, JS/TS, Go, Rust, ...) for
// "//" line comments and "/* */" block comments, skipping over '...', "..."
// and `...` so that a comment marker inside a string literal is not
// mistaken for the start of a comment. Quoted states never end on a bare
// newline: the lexer is deliberately tolerant of malformed/unterminated
// input and always recovers at end-of-input.
func parseCFamily(text string) []TextRange {
	var ranges []TextRange
	state := cCode
	rangeStart := 0
	i := 0
	n := len(text)

	for i < n {
		switch state {
		case cCode:
			switch {
			case hasPrefixAt(text, i, "//"):
				state, rangeStart, i = cLineComment, i, i+2
			case hasPrefixAt(text, i, "/*"):
				state, rangeStart, i = cBlockComment, i, i+2
			case text[i] == '\'':
				state, i = cSingleQuote, i+1
			case text[i] == '"':
				state, i = cDoubleQuote, i+1
			case text[i] == '`':
				state, i = cTemplate, i+1
			default:
				i++
			}
		case cLineComment:
			if text[i] == '\n' {
				ranges = append(ranges, TextRange{rangeStart, i})
				state = cCode
				continue
			}
			i++
		case cBlockComment:
			if hasPrefixAt(text, i, "*/") {
				i += 2
				ranges = append(ranges, TextRange{rangeStart, i})
				state = cCode
				continue
			}
			i++
		case cSingleQuote, cDoubleQuote, cTemplate:
			quote := quoteFor(state)
			switch {
			case text[i] == '\\':
				i = skipEscaped(text, i)
			case text[i] == quote:
				state, i = cCode, i+1
			default:
				i++
			}
		}
	}

	switch state {
	case cLineComment, cBlockComment:
		ranges = append(ranges, TextRange{rangeStart, n})
	}
	return ranges
}

func quoteFor(s cFamilyState) byte {
	switch s {
	case cSingleQuote:
		return '\''
	case cDoubleQuote:
		return '"'
	default:
		return '`'
	}
}

// skipEscaped advances past a backslash and the code unit it escapes,
// decoding as a rune so a multi-byte escaped character is not split.
func skipEscaped(text string, backslashPos int) int {
	if backslashPos+1 >= len(text) {
		return len(text)
	}
	_, w := utf8.DecodeRuneInString(text[backslashPos+1:])
	if w == 0 {
		return len(text)
	}
	return backslashPos + 1 + w
}

func hasPrefixAt(text string, i int, prefix string) bool {
	return strings.HasPrefix(text[i:], prefix)
}

type pyState int

const (
	pyCode pyState = iota
	pyLineComment
	pySingleQuote
	pyDoubleQuote
	pyTripleSingle
	pyTripleDouble
)

// parsePython lexes Python source for "#" line comments and treats
// triple-quoted string literals as comment-equivalent ranges,
// unconditionally (matching how doc-strings and module-level literals are
// used, regardless of whether they occur in docstring position — an
// intentional over-approximation, not a bug). Single-quoted strings emit no
// range; they are pass-through states only, so a quote character or '#'
// inside a string literal is not mistaken for a comment opener.
func parsePython(text string) []TextRange {
	var ranges []TextRange
	state := pyCode
	rangeStart := 0
	i := 0
	n := len(text)

	for i < n {
		switch state {
		case pyCode:
			if prefixLen := pythonStringPrefixLen(text, i); prefixLen > 0 || text[i] == '\'' || text[i] == '"' {
				openerStart := i
				quotePos := i + prefixLen
				switch {
				case hasPrefixAt(text, quotePos, "'''"):
					state, rangeStart, i = pyTripleSingle, openerStart, quotePos+3
				case hasPrefixAt(text, quotePos, `"""`):
					state, rangeStart, i = pyTripleDouble, openerStart, quotePos+3
				case text[quotePos] == '\'':
					state, i = pySingleQuote, quotePos+1
				case text[quotePos] == '"':
					state, i = pyDoubleQuote, quotePos+1
				default:
					i++
				}
				continue
			}
			switch {
			case text[i] == '#':
				state, rangeStart, i = pyLineComment, i, i+1
			default:
				i++
			}
		case pyLineComment:
			if text[i] == '\n' {
				ranges = append(ranges, TextRange{rangeStart, i})
				state = pyCode
				continue
			}
			i++
		case pySingleQuote, pyDoubleQuote:
			quote := byte('\'')
			if state == pyDoubleQuote {
				quote = '"'
			}
			switch {
			case text[i] == '\\':
				i = skipEscaped(text, i)
			case text[i] == quote:
				state, i = pyCode, i+1
			default:
				i++
			}
		case pyTripleSingle, pyTripleDouble:
			triple := "'''"
			if state == pyTripleDouble {
				triple = `"""`
			}
			if hasPrefixAt(text, i, triple) {
				i += 3
				ranges = append(ranges, TextRange{rangeStart, i})
				state = pyCode
				continue
			}
			i++
		}
	}

	switch state {
	case pyLineComment, pyTripleSingle, pyTripleDouble:
		ranges = append(ranges, TextRange{rangeStart, n})
	}
	return ranges
}

// pythonStringPrefixLen recognizes the short run of r/b/u/f letters
// (case-insensitive, at most two) that may precede a Python string opener,
// returning its byte length when immediately followed by a quote, or 0
// otherwise. xid.Start mirrors the identifier-start check the teacher
// scanner uses before committing to scanning an identifier.
func pythonStringPrefixLen(text string, i int) int {
	j := i
	letters := 0
	for letters < 2 && j < len(text) {
		r, w := utf8.DecodeRuneInString(text[j:])
		if !xid.Start(r) {
			break
		}
		switch unicode.ToLower(r) {
		case 'r', 'b', 'u', 'f':
		default:
			return 0
		}
		j += w
		letters++
	}
	if letters == 0 {
		return 0
	}
	if j < len(text) && (text[j] == '\'' || text[j] == '"') {
		return j - i
	}
	return 0
}
