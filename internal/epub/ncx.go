package epub

import (
	"encoding/xml"
	"fmt"

	"github.com/yuanying/epubkit/internal/book"
)

const ncxXmlns = "http://www.daisy.org/z3986/2005/ncx/"

// ncxDoc serves both emission and parsing of toc.ncx. NCX children live in
// a single default namespace, so one set of tags covers both directions.
type ncxDoc struct {
	XMLName  xml.Name  `xml:"ncx"`
	Xmlns    string    `xml:"xmlns,attr"`
	Version  string    `xml:"version,attr"`
	Head     ncxHead   `xml:"head"`
	DocTitle ncxText   `xml:"docTitle"`
	NavMap   ncxNavMap `xml:"navMap"`
}

type ncxHead struct {
	Meta []ncxMeta `xml:"meta"`
}

type ncxMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

type ncxText struct {
	Text string `xml:"text"`
}

type ncxNavMap struct {
	Points []ncxNavPoint `xml:"navPoint"`
}

type ncxNavPoint struct {
	ID        string     `xml:"id,attr"`
	PlayOrder int        `xml:"playOrder,attr"`
	Label     string     `xml:"navLabel>text"`
	Content   ncxContent `xml:"content"`
}

type ncxContent struct {
	Src string `xml:"src,attr"`
}

// renderNCX produces toc.ncx with one navPoint per chapter in reading order.
// Labels are the chapter titles, sources their resource paths.
func renderNCX(b *book.Book) ([]byte, error) {
	doc := ncxDoc{
		Xmlns:   ncxXmlns,
		Version: "2005-1",
		Head: ncxHead{
			Meta: []ncxMeta{
				{Name: "dtb:uid", Content: b.Metadata.Identifier},
				{Name: "dtb:depth", Content: "1"},
				{Name: "dtb:totalPageCount", Content: "0"},
				{Name: "dtb:maxPageNumber", Content: "0"},
			},
		},
		DocTitle: ncxText{Text: b.Metadata.Title},
	}

	for i, c := range b.Chapters {
		doc.NavMap.Points = append(doc.NavMap.Points, ncxNavPoint{
			ID:        fmt.Sprintf("navpoint-%d", i+1),
			PlayOrder: i + 1,
			Label:     c.Title,
			Content:   ncxContent{Src: c.FilePath},
		})
	}

	body, err := xml.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render NCX: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// parseNCX reads a toc.ncx document back into its structural form
func parseNCX(data []byte) (*ncxDoc, error) {
	var doc ncxDoc
	if err := xml.Unmarshal(stripBOM(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse NCX: %w", err)
	}
	return &doc, nil
}
