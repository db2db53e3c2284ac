package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epubkit",
		Short: "Inspect, normalize, and build EPUB files",
		Long: `epubkit reads and writes EPUB container files.

It can summarize an existing book, rewrite one into a normalized
archive layout, and compile a directory of Markdown files into a
new EPUB.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newRepackCmd())
	cmd.AddCommand(newBuildCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
