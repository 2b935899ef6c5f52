// Package engine implements the strict keystroke-accounted typing state
// machine: a per-segment session that consumes individual keystrokes and a
// single backspace primitive, and exposes per-character marks and
// aggregate counters.
package engine

import (
	"github.com/dskaw/typingcore/lexer"
)

// State is one typing session over a fixed segment text. It is not
// thread-safe: operations must be strictly ordered by caller sequence, as
// in a single-controller scanner.
type State struct {
	text                            string
	slackN                          int
	autoSkipBlankLines              bool
	allowWhitespaceAdvanceToNewline bool
	skipRanges                      []lexer.TextRange

	cursor   int
	typedEnd int

	errorActive             bool
	firstErrorIndex         int
	firstErrorTypedProgress int
	locked                  bool

	marks          []Mark
	countedCorrect []bool
	typedPositions []int

	typeableChars   int
	typedKeystrokes int
	incorrect       int
	collateral      int
	backspaces      int
	correctChars    int
}

// Create builds a new engine session over text. skipRanges need not be
// pre-merged; they are merged and clipped to [0, len(text)] here.
func Create(text string, slackN int, autoSkipBlankLines bool, skipRanges []lexer.TextRange, allowWhitespaceAdvanceToNewline bool) *State {
	if slackN < 0 {
		slackN = 0
	}
	n := len(text)
	merged := lexer.Merge(skipRanges, n)

	s := &State{
		text:                            text,
		slackN:                          slackN,
		autoSkipBlankLines:              autoSkipBlankLines,
		allowWhitespaceAdvanceToNewline: allowWhitespaceAdvanceToNewline,
		skipRanges:                      merged,
		marks:                           make([]Mark, n),
		countedCorrect:                  make([]bool, n),
		typeableChars:                   n - lexer.TotalLen(merged),
	}
	for i := range s.marks {
		s.marks[i] = Untouched
	}
	s.skipForward()
	return s
}

// Text returns the segment text the engine was created with.
func (s *State) Text() string { return s.text }

// Cursor returns the current logical position.
func (s *State) Cursor() int { return s.cursor }

// TypedEnd returns the furthest position the user has physically typed
// through, excluding positions advanced by auto-skip.
func (s *State) TypedEnd() int { return s.typedEnd }

// ErrorActive reports whether there is an unresolved mismatch.
func (s *State) ErrorActive() bool { return s.errorActive }

// FirstErrorIndex returns the position where the active error began; only
// meaningful while ErrorActive is true.
func (s *State) FirstErrorIndex() int { return s.firstErrorIndex }

// Locked reports whether slack was exceeded and normal input is ignored.
func (s *State) Locked() bool { return s.locked }

// Marks returns the per-character marks, one per byte of text.
func (s *State) Marks() []Mark { return s.marks }

// TypeableChars returns len(text) minus the total length of skip ranges.
func (s *State) TypeableChars() int { return s.typeableChars }

// TypedKeystrokes returns the count of all handleKey/handleBackspace calls.
func (s *State) TypedKeystrokes() int { return s.typedKeystrokes }

// Incorrect returns the number of keystrokes that produced an INCORRECT mark.
func (s *State) Incorrect() int { return s.incorrect }

// Collateral returns the number of keystrokes marked COLLATERAL while an
// error was active but within slack.
func (s *State) Collateral() int { return s.collateral }

// Backspaces returns the number of handleBackspace calls.
func (s *State) Backspaces() int { return s.backspaces }

// CorrectChars returns the number of positions currently counted as
// CORRECT; see the mark-rewrite invariant in setMark.
func (s *State) CorrectChars() int { return s.correctChars }

// IsComplete reports whether the cursor has reached the end of text with
// no unresolved error and no lock.
func (s *State) IsComplete() bool {
	return s.cursor >= len(s.text) && !s.errorActive && !s.locked
}

// skipForward advances the cursor past any skip range it currently lies
// inside, by binary search over the sorted range list.
func (s *State) skipForward() {
	for {
		r, ok := lexer.Contains(s.skipRanges, s.cursor)
		if !ok {
			return
		}
		s.cursor = r.End
	}
}

// setMark is the single routed writer for marks[i]; it reconciles
// countedCorrect and correctChars so that direct assignment to marks is
// never needed elsewhere.
func (s *State) setMark(i int, m Mark, counted bool) {
	if i < 0 || i >= len(s.marks) {
		return
	}
	if s.countedCorrect[i] && !(m == Correct && counted) {
		s.correctChars--
		s.countedCorrect[i] = false
	}
	s.marks[i] = m
	if m == Correct && counted && !s.countedCorrect[i] {
		s.countedCorrect[i] = true
		s.correctChars++
	}
}

// HandleKey consumes one character of input. See the state-machine design
// notes: a locked session still counts the keystroke but never advances.
func (s *State) HandleKey(ch byte) {
	s.typedKeystrokes++
	if s.locked {
		return
	}

	s.skipForward()
	n := len(s.text)
	if s.cursor >= n {
		return
	}

	expected := s.text[s.cursor]

	if !s.errorActive {
		effective := ch
		if s.allowWhitespaceAdvanceToNewline && ch == ' ' && expected == '\n' {
			effective = '\n'
		}
		if effective == expected {
			pos := s.cursor
			if ch == '\n' && s.autoSkipBlankLines {
				s.setMark(pos, Correct, true)
				s.typedPositions = append(s.typedPositions, pos)
				s.typedEnd = pos
				s.cursor = pos + 1
				s.skipForward()
				for s.cursor < n && s.text[s.cursor] == '\n' {
					s.setMark(s.cursor, Correct, false)
					s.cursor++
					s.skipForward()
				}
				return
			}
			s.setMark(pos, Correct, true)
			s.typedPositions = append(s.typedPositions, pos)
			s.typedEnd = pos
			s.cursor = pos + 1
			s.skipForward()
			return
		}

		pos := s.cursor
		s.setMark(pos, Incorrect, false)
		s.typedPositions = append(s.typedPositions, pos)
		s.typedEnd = pos
		s.errorActive = true
		s.firstErrorIndex = pos
		s.firstErrorTypedProgress = len(s.typedPositions) - 1
		s.incorrect++
		s.cursor = pos + 1
		s.skipForward()
		return
	}

	typedDistance := len(s.typedPositions) - s.firstErrorTypedProgress
	if typedDistance <= s.slackN {
		pos := s.cursor
		s.setMark(pos, Collateral, false)
		s.typedPositions = append(s.typedPositions, pos)
		s.typedEnd = pos
		s.collateral++
		s.cursor = pos + 1
		s.skipForward()
		return
	}

	s.locked = true
}

// HandleBackspace undoes the last typed position, clearing an active error
// if the cursor retreats to or past where it began.
func (s *State) HandleBackspace() {
	s.typedKeystrokes++
	s.backspaces++
	s.locked = false

	if len(s.typedPositions) == 0 {
		return
	}
	last := len(s.typedPositions) - 1
	pos := s.typedPositions[last]
	s.typedPositions = s.typedPositions[:last]

	s.cursor = pos
	s.typedEnd = pos
	s.setMark(pos, Untouched, false)

	if s.errorActive && s.cursor <= s.firstErrorIndex {
		s.errorActive = false
		s.firstErrorIndex = 0
		s.firstErrorTypedProgress = 0
	}
}
