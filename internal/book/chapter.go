package book

import (
	"fmt"
	"strings"
)

// Chapter is a single content unit of a book
type Chapter struct {
	Title    string
	Content  string // serialized XHTML document text
	FilePath string // resource path inside the archive; empty until assigned
}

// IsValid reports whether the chapter can be written, with a human-readable
// message. The title is checked before the content, so the message for a
// chapter missing both is always about the title.
func (c *Chapter) IsValid() (bool, string) {
	if strings.TrimSpace(c.Title) == "" {
		return false, "Chapter title is missing."
	}
	if strings.TrimSpace(c.Content) == "" {
		return false, "Chapter content is missing."
	}
	return true, "Chapter is valid."
}

// Describe returns the chapter title and its resource path
func (c *Chapter) Describe() string {
	path := c.FilePath
	if path == "" {
		path = "N/A"
	}
	return fmt.Sprintf("Title: %s\nFile: %s", c.Title, path)
}
