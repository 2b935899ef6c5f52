package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dskaw/typingcore"
	"github.com/dskaw/typingcore/internal/corpusfs"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Walk --directory and report the practice sources found, with their segment counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			_ = cmd.Help()
			return fmt.Errorf("too many arguments")
		}

		config, err := LoadConfig()
		if err != nil {
			return err
		}
		opts := effectiveOptions(cmd, config.Options())

		extensions := make(map[string]bool, len(config.Extensions))
		for _, ext := range config.Extensions {
			extensions[strings.ToLower(ext)] = true
		}

		corpus := corpusfs.CorpusFS{}
		var relPaths []string

		err = filepath.Walk(directory, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(info.Name()), "."))
			if !extensions[ext] {
				return nil
			}
			contentBytes, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(directory, path)
			if err != nil {
				rel = path
			}
			Log.Debugf("found practice source %s", rel)
			corpus.Add(rel, string(contentBytes))
			relPaths = append(relPaths, rel)
			return nil
		})
		if err != nil {
			return err
		}

		sort.Strings(relPaths)
		if len(relPaths) == 0 {
			fmt.Println("No practice sources found under", directory)
			return nil
		}

		for _, rel := range relPaths {
			f, err := corpus.Open(rel)
			if err != nil {
				return err
			}
			content, err := fs.ReadFile(corpus, rel)
			_ = f.Close()
			if err != nil {
				return err
			}
			prepared := typingcore.Prepare(rel, string(content), rel, opts)
			fmt.Printf("%s: %d segment(s)\n", rel, len(prepared))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
