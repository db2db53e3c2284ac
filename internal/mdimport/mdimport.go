// Package mdimport compiles a directory of Markdown files into a book,
// one chapter per file, in lexical filename order.
package mdimport

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yuanying/epubkit/internal/book"
)

var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// BuildBook walks dir and turns every Markdown file into a chapter.
// Files and directories whose names start with a dot, underscore or tilde
// are skipped. The chapter title is the file's first level-1 heading, or
// the filename stem when it has none.
func BuildBook(dir string, meta book.Metadata) (*book.Book, error) {
	b := &book.Book{Metadata: meta}

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != dir && isIgnoredName(name) {
				return filepath.SkipDir
			}
			return nil
		}
		if isIgnoredName(name) || !markdownExts[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		ch, err := buildChapter(p)
		if err != nil {
			return err
		}
		return b.AddChapter(ch)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build book from %s: %w", dir, err)
	}

	if len(b.Chapters) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", dir)
	}
	return b, nil
}

func isIgnoredName(name string) bool {
	if name == "" {
		return true
	}
	switch name[0] {
	case '.', '_', '~':
		return true
	}
	return false
}

// buildChapter converts one Markdown file into a chapter with an XHTML body
func buildChapter(path string) (*book.Chapter, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithRendererOptions(ghtml.WithXHTML()))

	title := firstHeading(md, src)
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	var rendered bytes.Buffer
	if err := md.Convert(src, &rendered); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", path, err)
	}

	normalized, err := normalizeFragment(rendered.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to normalize %s: %w", path, err)
	}

	return &book.Chapter{
		Title:   title,
		Content: wrapXHTML(title, normalized),
	}, nil
}

// firstHeading returns the text of the document's first level-1 heading
func firstHeading(md goldmark.Markdown, src []byte) string {
	doc := md.Parser().Parse(text.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			return strings.TrimSpace(string(h.Text(src)))
		}
	}
	return ""
}

// normalizeFragment reparses rendered HTML and serializes it back, so the
// chapter body is well-formed markup whatever the renderer produced
func normalizeFragment(fragment []byte) (string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(fragment), ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for _, node := range nodes {
		if err := html.Render(&buf, node); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// wrapXHTML puts a chapter body into a minimal XHTML document shell
func wrapXHTML(title, body string) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<html xmlns=\"http://www.w3.org/1999/xhtml\">\n")
	fmt.Fprintf(&b, "<head><title>%s</title></head>\n", html.EscapeString(title))
	b.WriteString("<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
