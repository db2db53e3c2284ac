package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuanying/epubkit/internal/book"
	"github.com/yuanying/epubkit/internal/epub"
	"github.com/yuanying/epubkit/internal/mdimport"
)

type buildOptions struct {
	Output string
	Cover  string
	Meta   book.Metadata
}

// defaultBuildOutput names the archive after the source directory
func defaultBuildOutput(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == "." || base == string(filepath.Separator) {
		base = "book"
	}
	return base + ".epub"
}

func readBuildOptions(cmd *cobra.Command, args []string) buildOptions {
	var opts buildOptions
	opts.Output, _ = cmd.Flags().GetString("output")
	opts.Cover, _ = cmd.Flags().GetString("cover")
	opts.Meta.Title, _ = cmd.Flags().GetString("title")
	opts.Meta.Author, _ = cmd.Flags().GetString("author")
	opts.Meta.Publisher, _ = cmd.Flags().GetString("publisher")
	opts.Meta.Language, _ = cmd.Flags().GetString("language")
	opts.Meta.Identifier, _ = cmd.Flags().GetString("identifier")
	opts.Meta.Description, _ = cmd.Flags().GetString("description")

	if opts.Output == "" {
		opts.Output = defaultBuildOutput(args[0])
	}
	if opts.Meta.Title == "" {
		opts.Meta.Title = strings.TrimSuffix(filepath.Base(opts.Output), filepath.Ext(opts.Output))
	}
	return opts
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <dir>",
		Short: "Compile a directory of Markdown files into an EPUB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := readBuildOptions(cmd, args)

			b, err := mdimport.BuildBook(args[0], opts.Meta)
			if err != nil {
				return err
			}

			if opts.Cover != "" {
				data, err := os.ReadFile(opts.Cover)
				if err != nil {
					return fmt.Errorf("failed to read cover image: %w", err)
				}
				cover, err := epub.PrepareCover(data)
				if err != nil {
					return err
				}
				b.Cover = cover
			}

			log.Printf("Building: %s -> %s (%d chapters)", args[0], opts.Output, len(b.Chapters))
			if err := epub.Save(b, opts.Output); err != nil {
				return err
			}
			log.Printf("Done: %s", opts.Output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (default: directory name with .epub extension)")
	cmd.Flags().String("title", "", "Book title (default: output filename)")
	cmd.Flags().String("author", "", "Book author")
	cmd.Flags().String("publisher", "", "Book publisher")
	cmd.Flags().String("language", "", "Book language code")
	cmd.Flags().String("identifier", "", "Book identifier, e.g. ISBN")
	cmd.Flags().String("description", "", "Book description")
	cmd.Flags().String("cover", "", "Cover image file to embed")
	return cmd
}
