package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dskaw/typingcore"
	"github.com/dskaw/typingcore/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the comment ranges the lexer finds in a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return fmt.Errorf("expected exactly one file argument")
		}
		filePath := args[0]

		content, err := os.ReadFile(filePath)
		if err != nil {
			return err
		}

		normalized := typingcore.Normalize(string(content), tabWidthOrDefault())
		ranges := lexer.ParseCommentRanges(normalized, filePath)
		for _, r := range ranges {
			fmt.Printf("[%d, %d): %q\n", r.Start, r.End, normalized[r.Start:r.End])
		}
		return nil
	},
}

func tabWidthOrDefault() int {
	if tabWidth != 0 {
		return tabWidth
	}
	return typingcore.DefaultOptions().TabWidth
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
