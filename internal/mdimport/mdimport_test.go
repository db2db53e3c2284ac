package mdimport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuanying/epubkit/internal/book"
)

// writeSource lays out a markdown source tree for BuildBook
func writeSource(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			t.Fatalf("failed to create source dir: %v", err)
		}
		if err := os.WriteFile(target, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestBuildBook(t *testing.T) {
	dir := writeSource(t, map[string]string{
		"01-intro.md":    "# Introduction\n\nWelcome to the book.\n",
		"02-middle.md":   "Some text without a heading.\n",
		"03-end.md":      "# The End\n\nGoodbye.\n",
		".hidden.md":     "# Hidden\n",
		"~scratch.md":    "# Scratch\n",
		"_draft.md":      "# Draft\n",
		"notes.txt":      "not markdown",
		".git/obj.md":    "# Not a chapter\n",
		"04-nested/a.md": "# Nested\n\nStill included.\n",
	})

	meta := book.Metadata{Title: "My Book", Author: "An Author"}
	b, err := BuildBook(dir, meta)
	if err != nil {
		t.Fatalf("BuildBook failed: %v", err)
	}

	if b.Metadata.Title != "My Book" || b.Metadata.Author != "An Author" {
		t.Errorf("metadata = %q / %q, want My Book / An Author", b.Metadata.Title, b.Metadata.Author)
	}

	want := []string{"Introduction", "02-middle", "The End", "Nested"}
	if len(b.Chapters) != len(want) {
		t.Fatalf("chapter count = %d, want %d", len(b.Chapters), len(want))
	}
	for i, title := range want {
		if b.Chapters[i].Title != title {
			t.Errorf("chapter[%d].Title = %q, want %q", i, b.Chapters[i].Title, title)
		}
	}
}

func TestBuildBook_ChapterContent(t *testing.T) {
	dir := writeSource(t, map[string]string{
		"ch.md": "# Title & More\n\nA *styled* paragraph.\n",
	})

	b, err := BuildBook(dir, book.Metadata{Title: "T", Author: "A"})
	if err != nil {
		t.Fatalf("BuildBook failed: %v", err)
	}

	content := b.Chapters[0].Content
	for _, fragment := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<html xmlns="http://www.w3.org/1999/xhtml">`,
		"<title>Title &amp; More</title>",
		"<em>styled</em>",
		"</html>",
	} {
		if !strings.Contains(content, fragment) {
			t.Errorf("chapter content missing %q:\n%s", fragment, content)
		}
	}

	if b.Chapters[0].FilePath != "" {
		t.Errorf("FilePath = %q, want unassigned", b.Chapters[0].FilePath)
	}
}

func TestBuildBook_EmptyDir(t *testing.T) {
	dir := t.TempDir()

	if _, err := BuildBook(dir, book.Metadata{Title: "T", Author: "A"}); err == nil {
		t.Error("BuildBook on an empty directory succeeded, want error")
	}
}

func TestFirstHeading_SkipsLowerLevels(t *testing.T) {
	dir := writeSource(t, map[string]string{
		"ch.md": "## Subheading\n\n# Real Title\n\nbody\n",
	})

	b, err := BuildBook(dir, book.Metadata{Title: "T", Author: "A"})
	if err != nil {
		t.Fatalf("BuildBook failed: %v", err)
	}
	if b.Chapters[0].Title != "Real Title" {
		t.Errorf("Title = %q, want %q", b.Chapters[0].Title, "Real Title")
	}
}
