package cmd

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dskaw/typingcore"
)

// Config is the on-disk shape of practice.yaml: the subset of
// typingcore.Options a project wants to pin, plus which file extensions
// should be considered practice sources when scanning a directory.
type Config struct {
	LinesPerSegment        int      `yaml:"linesPerSegment"`
	TabWidth               int      `yaml:"tabWidth"`
	SlackN                 int      `yaml:"slackN"`
	MaxSegmentChars        int      `yaml:"maxSegmentChars"`
	IncludeComments        bool     `yaml:"includeComments"`
	SkipLeadingIndentation bool     `yaml:"skipLeadingIndentation"`
	TrimTrailingWhitespace bool     `yaml:"trimTrailingWhitespace"`
	AutoSkipBlankLines     bool     `yaml:"autoSkipBlankLines"`
	Extensions             []string `yaml:"extensions"`
}

// LoadConfig reads practice.yaml from directory, falling back to the
// library defaults when the file is absent.
func LoadConfig() (Config, error) {
	def := typingcore.DefaultOptions()
	result := Config{
		LinesPerSegment:        def.LinesPerSegment,
		TabWidth:               def.TabWidth,
		SlackN:                 def.SlackN,
		MaxSegmentChars:        def.MaxSegmentChars,
		IncludeComments:        def.IncludeComments,
		SkipLeadingIndentation: def.SkipLeadingIndentation,
		TrimTrailingWhitespace: def.TrimTrailingWhitespace,
		AutoSkipBlankLines:     def.AutoSkipBlankLines,
		Extensions:             []string{"go", "py", "js", "ts", "java", "c", "cpp", "rs"},
	}

	configFilename := path.Join(directory, "practice.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return result, nil
	}

	yamlFile, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading practice.yaml")
	}
	if err := yaml.Unmarshal(yamlFile, &result); err != nil {
		return Config{}, errors.Wrap(err, "parsing practice.yaml")
	}
	return result, nil
}

// Options converts c to the library's Options type.
func (c Config) Options() typingcore.Options {
	return typingcore.Options{
		LinesPerSegment:        c.LinesPerSegment,
		TabWidth:               c.TabWidth,
		SlackN:                 c.SlackN,
		MaxSegmentChars:        c.MaxSegmentChars,
		IncludeComments:        c.IncludeComments,
		SkipLeadingIndentation: c.SkipLeadingIndentation,
		TrimTrailingWhitespace: c.TrimTrailingWhitespace,
		AutoSkipBlankLines:     c.AutoSkipBlankLines,
	}
}

// effectiveOptions layers command-line overrides supplied on cmd on top of
// base, but only for flags the user actually passed.
func effectiveOptions(cmd *cobra.Command, base typingcore.Options) typingcore.Options {
	flags := cmd.Flags()
	if flags.Changed("lines-per-segment") {
		base.LinesPerSegment = linesPerSegment
	}
	if flags.Changed("tab-width") {
		base.TabWidth = tabWidth
	}
	if flags.Changed("slack") {
		base.SlackN = slackN
	}
	if flags.Changed("max-segment-chars") {
		base.MaxSegmentChars = maxSegmentChars
	}
	if flags.Changed("include-comments") {
		base.IncludeComments = includeComments
	}
	return base.Coerced()
}
