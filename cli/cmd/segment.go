package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dskaw/typingcore"
)

var segmentCmd = &cobra.Command{
	Use:   "segment <file>",
	Short: "Split a file into practice segments and print their boundaries",
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
		for _, ps := range prepared {
			fmt.Printf("segment %d: lines %d-%d, %d bytes, %d comment ranges, %d skip ranges\n",
				ps.Index, ps.StartLine, ps.EndLine, len(ps.Text), len(ps.CommentRanges), len(ps.SkipRanges))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(segmentCmd)
}
