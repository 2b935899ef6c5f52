// Package statedump renders an engine session as a human-readable table,
// for use by the CLI and in tests that want to eyeball a failure.
package statedump

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/alecthomas/repr"

	"github.com/dskaw/typingcore/engine"
)

// Dump renders one row per character of s's text: its mark, and a
// repr-quoted view of the character itself so control characters like "\n"
// are visible instead of breaking the table layout.
func Dump(s *engine.State) string {
	var out bytes.Buffer
	writer := tabwriter.NewWriter(&out, 0, 0, 4, ' ', 0)

	text := s.Text()
	marks := s.Marks()
	for i := 0; i < len(text); i++ {
		fmt.Fprintf(writer, "%d\t%s\t%s\t\n", i, repr.String(string(text[i])), marks[i])
	}
	fmt.Fprintln(writer, "----\t------\t------\t")
	fmt.Fprintf(writer, "cursor=%d\ttypedEnd=%d\terrorActive=%v\t\n", s.Cursor(), s.TypedEnd(), s.ErrorActive())
	fmt.Fprintf(writer, "locked=%v\tcomplete=%v\t\t\n", s.Locked(), s.IsComplete())
	fmt.Fprintf(writer, "correct=%d\tincorrect=%d\tcollateral=%d\t\n", s.CorrectChars(), s.Incorrect(), s.Collateral())

	writer.Flush()
	return out.String()
}

// Summary renders a single-line counters-only view, for compact logging.
func Summary(s *engine.State) string {
	return fmt.Sprintf(
		"cursor=%d typeable=%d typed=%d incorrect=%d collateral=%d backspaces=%d correct=%d complete=%v",
		s.Cursor(), s.TypeableChars(), s.TypedKeystrokes(), s.Incorrect(), s.Collateral(), s.Backspaces(), s.CorrectChars(), s.IsComplete(),
	)
}
