package epub

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/yuanying/epubkit/internal/book"
)

// Load reads the EPUB archive at path into a Book. The archive is unpacked
// into a private staging directory which is removed before Load returns,
// whatever the outcome.
func Load(path string) (*book.Book, error) {
	b, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

func load(path string) (*book.Book, error) {
	// The existence check runs before any staging directory is created,
	// so a missing archive leaves the filesystem untouched
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}

	staging, err := newStagingDir("epubkit-load")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(staging)

	if err := extractArchive(path, staging); err != nil {
		return nil, err
	}

	containerData, err := os.ReadFile(filepath.Join(staging, filepath.FromSlash(containerPath)))
	if err != nil {
		return nil, ErrInvalidStructure
	}

	opfRel, err := findRootfile(containerData)
	if err != nil {
		return nil, err
	}

	opfFile := filepath.Join(staging, filepath.FromSlash(opfRel))
	opfData, err := os.ReadFile(opfFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoRootfile, opfRel)
	}

	doc, err := parseOPF(opfData)
	if err != nil {
		return nil, err
	}

	b := &book.Book{Metadata: doc.Metadata}
	opfDir := filepath.Dir(opfFile)

	for _, idref := range doc.Spine {
		if ch, ok := resolveChapter(opfDir, doc, idref); ok {
			b.Chapters = append(b.Chapters, ch)
		}
	}

	loadCover(b, doc, opfDir)

	return b, nil
}

// resolveChapter turns one spine idref into a chapter when its manifest
// entry and target file both exist. Anything unresolvable is skipped with
// a warning; lenient by design, the reading order simply loses that entry.
func resolveChapter(opfDir string, doc *packageDoc, idref string) (*book.Chapter, bool) {
	if idref == "" {
		log.Printf("warning: spine itemref without idref, skipping")
		return nil, false
	}
	entry, ok := doc.Manifest[idref]
	if !ok {
		log.Printf("warning: spine idref %q has no manifest entry, skipping", idref)
		return nil, false
	}

	data, err := os.ReadFile(filepath.Join(opfDir, filepath.FromSlash(entry.Href)))
	if err != nil {
		log.Printf("warning: chapter file %s not readable, skipping", entry.Href)
		return nil, false
	}

	title := deriveID(entry.Href)
	if title == "" {
		title = "Untitled"
	}

	return &book.Chapter{
		Title:    title,
		Content:  string(data),
		FilePath: entry.Href,
	}, true
}
