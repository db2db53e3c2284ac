package epub

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/yuanying/epubkit/internal/book"
)

// ChapterInfo is a read-only view over a chapter's XHTML, used for display
type ChapterInfo struct {
	DisplayTitle string
	PlainText    string
	WordCount    int
}

// InspectChapter parses a chapter's content and extracts its display title
// and readable text. The display title prefers the document <title>, then
// the first h1-h3 heading; it stays empty when the markup has neither.
// The model title is untouched, this is presentation only.
func InspectChapter(c *book.Chapter) (*ChapterInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(c.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse chapter %q: %w", c.Title, err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1, h2, h3").First().Text())
	}

	text := collapseWhitespace(doc.Find("body").Text())

	return &ChapterInfo{
		DisplayTitle: title,
		PlainText:    text,
		WordCount:    len(strings.Fields(text)),
	}, nil
}

// collapseWhitespace reduces whitespace runs to single spaces
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
