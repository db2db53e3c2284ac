package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/yuanying/epubkit/internal/epub"
)

func newRepackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repack <in.epub>",
		Short: "Load a book and write it back in normalized layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			outputPath, _ := cmd.Flags().GetString("output")
			if outputPath == "" {
				outputPath = inputPath
			}

			b, err := epub.Load(inputPath)
			if err != nil {
				return err
			}

			log.Printf("Repacking: %s -> %s (%d chapters)", inputPath, outputPath, len(b.Chapters))
			if err := epub.Save(b, outputPath); err != nil {
				return err
			}
			log.Printf("Done: %s", outputPath)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (default: rewrite the input in place)")
	return cmd
}
