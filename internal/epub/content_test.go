package epub

import (
	"testing"

	"github.com/yuanying/epubkit/internal/book"
)

func TestInspectChapter(t *testing.T) {
	c := &book.Chapter{
		Title: "raw-title",
		Content: `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>The Real Title</title></head>
<body>
  <h1>The Real Title</h1>
  <p>One   two
  three.</p>
</body>
</html>`,
	}

	info, err := InspectChapter(c)
	if err != nil {
		t.Fatalf("InspectChapter failed: %v", err)
	}

	if info.DisplayTitle != "The Real Title" {
		t.Errorf("DisplayTitle = %q, want %q", info.DisplayTitle, "The Real Title")
	}
	if info.PlainText != "The Real Title One two three." {
		t.Errorf("PlainText = %q, want collapsed body text", info.PlainText)
	}
	if info.WordCount != 6 {
		t.Errorf("WordCount = %d, want 6", info.WordCount)
	}
}

func TestInspectChapter_HeadingFallback(t *testing.T) {
	c := &book.Chapter{
		Title:   "x",
		Content: `<html><body><h2>From Heading</h2><p>text</p></body></html>`,
	}

	info, err := InspectChapter(c)
	if err != nil {
		t.Fatalf("InspectChapter failed: %v", err)
	}
	if info.DisplayTitle != "From Heading" {
		t.Errorf("DisplayTitle = %q, want %q", info.DisplayTitle, "From Heading")
	}
}

func TestInspectChapter_NoTitle(t *testing.T) {
	c := &book.Chapter{
		Title:   "x",
		Content: `<html><body><p>just a paragraph</p></body></html>`,
	}

	info, err := InspectChapter(c)
	if err != nil {
		t.Fatalf("InspectChapter failed: %v", err)
	}
	if info.DisplayTitle != "" {
		t.Errorf("DisplayTitle = %q, want empty", info.DisplayTitle)
	}
	if info.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", info.WordCount)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  a  b  ", "a b"},
		{"a\n\tb\n", "a b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := collapseWhitespace(tt.in); got != tt.want {
			t.Errorf("collapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
