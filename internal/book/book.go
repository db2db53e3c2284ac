package book

import (
	"errors"
	"strings"
)

// ErrNilChapter is returned by AddChapter when passed a nil chapter
var ErrNilChapter = errors.New("chapter must not be nil")

// Cover is an optional cover image carried alongside the chapters
type Cover struct {
	Data      []byte
	MediaType string // "image/jpeg" or "image/png"
}

// Book owns one Metadata instance and an ordered chapter list.
// Chapter order is reading order and becomes the spine order when written.
type Book struct {
	Metadata Metadata
	Chapters []*Chapter
	Cover    *Cover
}

// AddChapter appends a chapter to the end of the reading order
func (b *Book) AddChapter(c *Chapter) error {
	if c == nil {
		return ErrNilChapter
	}
	b.Chapters = append(b.Chapters, c)
	return nil
}

// FindChapterByTitle returns the first chapter whose title matches,
// ignoring case, or nil when there is none
func (b *Book) FindChapterByTitle(title string) *Chapter {
	for _, c := range b.Chapters {
		if strings.EqualFold(c.Title, title) {
			return c
		}
	}
	return nil
}

// RemoveChapterByTitle removes the first chapter matching the title,
// preserving the order of the remaining chapters. It reports whether
// a chapter was removed.
func (b *Book) RemoveChapterByTitle(title string) bool {
	for i, c := range b.Chapters {
		if strings.EqualFold(c.Title, title) {
			b.Chapters = append(b.Chapters[:i], b.Chapters[i+1:]...)
			return true
		}
	}
	return false
}

// ValidateMetadata checks the fields required before a book can be written.
// Problems accumulate into a newline-joined message.
func (b *Book) ValidateMetadata() (bool, string) {
	var problems []string

	if strings.TrimSpace(b.Metadata.Title) == "" {
		problems = append(problems, "Title is missing.")
	}
	if strings.TrimSpace(b.Metadata.Author) == "" {
		problems = append(problems, "Author is missing.")
	}

	if len(problems) > 0 {
		return false, strings.Join(problems, "\n")
	}
	return true, "Metadata is valid."
}
