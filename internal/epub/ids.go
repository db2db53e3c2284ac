package epub

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/yuanying/epubkit/internal/book"
)

// unsafeNameChars matches characters that cannot appear in archive entry names
var unsafeNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// deriveID returns the manifest id for a resource path: the filename without
// its extension. The writer uses it for manifest ids and spine idrefs alike,
// so the two sections always agree.
func deriveID(resourcePath string) string {
	base := path.Base(resourcePath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// fallbackName builds an archive-safe filename stem from a chapter title
func fallbackName(title string) string {
	name := unsafeNameChars.ReplaceAllString(title, "_")
	name = strings.TrimSpace(name)
	if name == "" {
		name = "chapter"
	}
	return name
}

// assignFilePaths gives every chapter without a resource path a unique
// title-derived one. Paths already assigned are never touched, which keeps
// them stable across a load-save round trip.
func assignFilePaths(b *book.Book) {
	taken := make(map[string]bool)
	for _, c := range b.Chapters {
		if c.FilePath != "" {
			taken[c.FilePath] = true
		}
	}

	for _, c := range b.Chapters {
		if c.FilePath != "" {
			continue
		}
		stem := fallbackName(c.Title)
		candidate := stem + ".xhtml"
		for n := 2; taken[candidate]; n++ {
			candidate = fmt.Sprintf("%s_%d.xhtml", stem, n)
		}
		c.FilePath = candidate
		taken[candidate] = true
	}
}
