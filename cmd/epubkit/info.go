package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/yuanying/epubkit/internal/epub"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.epub>",
		Short: "Print book metadata and a chapter summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := epub.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, b.Metadata.Describe())
			fmt.Fprintf(out, "Chapters: %d\n", len(b.Chapters))

			for i, c := range b.Chapters {
				title := c.Title
				words := 0
				if info, err := epub.InspectChapter(c); err == nil {
					if info.DisplayTitle != "" {
						title = info.DisplayTitle
					}
					words = info.WordCount
				} else {
					log.Printf("warning: could not inspect chapter %q: %v", c.Title, err)
				}
				fmt.Fprintf(out, "  %d. %s (%d words)\n", i+1, title, words)
			}
			return nil
		},
	}
}
