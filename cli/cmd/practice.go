package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dskaw/typingcore"
	"github.com/dskaw/typingcore/internal/statedump"
)

var (
	practiceSegmentIndex int
	practiceScript       string
	practiceDebug        bool
)

// practiceCmd drives an engine session from a scripted sequence of
// keystrokes instead of a live terminal, so an Attempt can be produced and
// inspected without a UI. A backspace in the script is written as the
// literal two characters "\b"; every other rune is typed as-is. This
// command never persists its output: it writes the Attempt as JSON to
// stdout and nothing else, staying clear of the core's persistence
// boundary.
var practiceCmd = &cobra.Command{
	Use:   "practice <file>",
	Short: "Simulate a typing session over one segment of a file from a scripted keystroke sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return fmt.Errorf("expected exactly one file argument")
		}
		filePath := args[0]

		config, err := LoadConfig()
		if err != nil {
			return err
		}
		opts := effectiveOptions(cmd, config.Options())

		content, err := os.ReadFile(filePath)
		if err != nil {
			return err
		}

		prepared := typingcore.Prepare(filePath, string(content), filePath, opts)
		if practiceSegmentIndex < 0 || practiceSegmentIndex >= len(prepared) {
			return errors.Errorf("segment index %d out of range (file has %d segments)", practiceSegmentIndex, len(prepared))
		}
		ps := prepared[practiceSegmentIndex]

		session := typingcore.NewSession(ps, opts)

		startAt := time.Now().UnixMilli()
		keys := []byte(practiceScript)
		for i := 0; i < len(keys); i++ {
			if keys[i] == '\\' && i+1 < len(keys) && keys[i+1] == 'b' {
				session.HandleBackspace()
				i++
				continue
			}
			session.HandleKey(keys[i])
		}
		endAt := time.Now().UnixMilli()

		if practiceDebug {
			fmt.Fprintln(os.Stderr, statedump.Dump(session))
		}

		attempt := typingcore.AssembleAttempt(session, opts, filePath, filePath, ps.Index, ps.StartLine, ps.EndLine, startAt, endAt)

		encoded, err := json.MarshalIndent(attempt, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	},
}

func init() {
	practiceCmd.Flags().IntVar(&practiceSegmentIndex, "segment", 0, "index of the segment to practice")
	practiceCmd.Flags().StringVar(&practiceScript, "script", "", `scripted keystrokes to feed the engine; "\b" means backspace`)
	practiceCmd.Flags().BoolVar(&practiceDebug, "debug", false, "print a per-character state dump to stderr before the Attempt")
	rootCmd.AddCommand(practiceCmd)
}
