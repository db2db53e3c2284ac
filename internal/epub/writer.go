package epub

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuanying/epubkit/internal/book"
)

const (
	oebpsDir = "OEBPS"
	opfPath  = "OEBPS/content.opf"
)

// Save writes the book as an EPUB archive at path. Chapters without a
// resource path get a unique title-derived one assigned first; the layout
// is assembled in a staging directory, zipped, and the staging directory
// removed whatever the outcome.
func Save(b *book.Book, path string) error {
	if err := save(b, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func save(b *book.Book, path string) error {
	if ok, msg := b.ValidateMetadata(); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidMetadata, msg)
	}

	staging, err := newStagingDir("epubkit-save")
	if err != nil {
		return err
	}
	defer os.RemoveAll(staging)

	assignFilePaths(b)

	coverHref := ""
	if b.Cover != nil {
		coverHref = coverFileName(b.Cover.MediaType)
	}

	opfData, err := renderOPF(b, coverHref)
	if err != nil {
		return err
	}
	if err := writeStagingFile(staging, opfPath, opfData); err != nil {
		return err
	}

	containerData, err := renderContainer(opfPath)
	if err != nil {
		return err
	}
	if err := writeStagingFile(staging, containerPath, containerData); err != nil {
		return err
	}

	ncxData, err := renderNCX(b)
	if err != nil {
		return err
	}
	if err := writeStagingFile(staging, oebpsDir+"/"+ncxName, ncxData); err != nil {
		return err
	}

	// Chapter content goes out verbatim, which keeps a load-save round
	// trip byte-stable
	for _, c := range b.Chapters {
		if err := writeStagingFile(staging, oebpsDir+"/"+c.FilePath, []byte(c.Content)); err != nil {
			return err
		}
	}

	if b.Cover != nil {
		if err := writeStagingFile(staging, oebpsDir+"/"+coverHref, b.Cover.Data); err != nil {
			return err
		}
	}

	return packArchive(staging, path)
}

// writeStagingFile writes one archive-relative file under the staging root,
// creating intermediate directories as needed
func writeStagingFile(staging, rel string, data []byte) error {
	if !isSafeEntry(rel) {
		return fmt.Errorf("unsafe resource path: %s", rel)
	}
	target := filepath.Join(staging, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}
