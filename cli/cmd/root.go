package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "practicecli",
		Short:        "practicecli",
		SilenceUsage: true,
		Long:         `CLI tool for preparing and driving typing-practice sessions over source files. See README.md.`,
	}

	directory string
	verbose   bool

	linesPerSegment int
	tabWidth        int
	slackN          int
	maxSegmentChars int
	includeComments bool
)

// Log is the logger shared by every subcommand; its level is raised by
// --verbose before the chosen command's RunE runs.
var Log = logrus.StandardLogger()

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to directory and subtree which will be scanned for practice sources")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&linesPerSegment, "lines-per-segment", 0, "override practice.yaml's linesPerSegment (applied only when passed)")
	rootCmd.PersistentFlags().IntVar(&tabWidth, "tab-width", 0, "override practice.yaml's tabWidth (applied only when passed)")
	rootCmd.PersistentFlags().IntVar(&slackN, "slack", 0, "override practice.yaml's slackN (applied only when passed)")
	rootCmd.PersistentFlags().IntVar(&maxSegmentChars, "max-segment-chars", 0, "override practice.yaml's maxSegmentChars (applied only when passed)")
	rootCmd.PersistentFlags().BoolVar(&includeComments, "include-comments", false, "type through comments instead of skipping them")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			Log.SetLevel(logrus.DebugLevel)
		}
	}

	return rootCmd.Execute()
}

func init() {
}
