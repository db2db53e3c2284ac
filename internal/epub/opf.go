package epub

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/yuanying/epubkit/internal/book"
)

const (
	opfXmlns = "http://www.idpf.org/2007/opf"
	dcXmlns  = "http://purl.org/dc/elements/1.1/"

	xhtmlMediaType = "application/xhtml+xml"
	ncxMediaType   = "application/x-dtbncx+xml"

	ncxName       = "toc.ncx"
	ncxItemID     = "ncx"
	coverItemID   = "cover-image"
	identifierRef = "book-id"
)

// Parse-side structs. Element tags carry the Dublin Core namespace URL so
// any prefix the producer chose still matches.
type opfPackage struct {
	XMLName  xml.Name      `xml:"package"`
	Metadata []opfMetadata `xml:"metadata"`
	Manifest opfManifest   `xml:"manifest"`
	Spine    opfSpine      `xml:"spine"`
}

type opfMetadata struct {
	Title       []string  `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creator     []string  `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Publisher   []string  `xml:"http://purl.org/dc/elements/1.1/ publisher"`
	Date        []string  `xml:"http://purl.org/dc/elements/1.1/ date"`
	Language    []string  `xml:"http://purl.org/dc/elements/1.1/ language"`
	Identifier  []string  `xml:"http://purl.org/dc/elements/1.1/ identifier"`
	Description []string  `xml:"http://purl.org/dc/elements/1.1/ description"`
	Meta        []opfMeta `xml:"meta"`
}

type opfMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

type opfManifest struct {
	Items []opfItem `xml:"item"`
}

type opfItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr,omitempty"`
}

type opfSpine struct {
	ItemRefs []opfItemRef `xml:"itemref"`
}

type opfItemRef struct {
	IDRef string `xml:"idref,attr"`
}

// packageDoc is the parsed form of content.opf that the loader consumes.
// Manifest hrefs stay raw (OPF-relative), the loader resolves them.
type packageDoc struct {
	Metadata book.Metadata
	Manifest map[string]manifestEntry
	Spine    []string // idrefs in document order
	CoverID  string
}

type manifestEntry struct {
	Href       string
	MediaType  string
	Properties string
}

// parseOPF parses content.opf. Manifest items missing an id or href are
// skipped without error; the spine keeps every idref and the loader decides
// what resolves.
func parseOPF(data []byte) (*packageDoc, error) {
	var pkg opfPackage
	if err := xml.Unmarshal(stripBOM(data), &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse OPF: %w", err)
	}

	doc := &packageDoc{
		Manifest: make(map[string]manifestEntry),
	}

	// Only the first metadata element counts
	if len(pkg.Metadata) > 0 {
		doc.Metadata = parseMetadata(&pkg.Metadata[0])
		doc.CoverID = findCoverID(&pkg.Metadata[0])
	} else {
		doc.Metadata = parseMetadata(&opfMetadata{})
	}

	for _, item := range pkg.Manifest.Items {
		if item.ID == "" || item.Href == "" {
			continue
		}
		doc.Manifest[item.ID] = manifestEntry{
			Href:       item.Href,
			MediaType:  item.MediaType,
			Properties: item.Properties,
		}
	}

	for _, ref := range pkg.Spine.ItemRefs {
		doc.Spine = append(doc.Spine, ref.IDRef)
	}

	return doc, nil
}

// parseMetadata extracts the first value of each Dublin Core field, with
// the documented defaults for a missing title or creator
func parseMetadata(meta *opfMetadata) book.Metadata {
	md := book.Metadata{
		Title:       firstOf(meta.Title),
		Author:      firstOf(meta.Creator),
		Publisher:   firstOf(meta.Publisher),
		Language:    firstOf(meta.Language),
		Identifier:  firstOf(meta.Identifier),
		Description: firstOf(meta.Description),
		PubDate:     parsePubDate(firstOf(meta.Date)),
	}

	if md.Title == "" {
		md.Title = "Unknown Title"
	}
	if md.Author == "" {
		md.Author = "Unknown Author"
	}
	return md
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// parsePubDate accepts the date shapes found in the wild, most specific
// first. Anything else is treated as absent.
func parsePubDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// findCoverID returns the manifest id named by a meta name="cover" element
func findCoverID(meta *opfMetadata) string {
	for _, m := range meta.Meta {
		if m.Name == "cover" && m.Content != "" {
			return m.Content
		}
	}
	return ""
}

// Emit-side structs. Tags carry literal dc: prefixes and the metadata
// element declares the matching xmlns:dc.
type packageOut struct {
	XMLName  xml.Name    `xml:"package"`
	Xmlns    string      `xml:"xmlns,attr"`
	UniqueID string      `xml:"unique-identifier,attr,omitempty"`
	Version  string      `xml:"version,attr"`
	Metadata metadataOut `xml:"metadata"`
	Manifest manifestOut `xml:"manifest"`
	Spine    spineOut    `xml:"spine"`
}

type metadataOut struct {
	XmlnsDC     string         `xml:"xmlns:dc,attr"`
	Title       string         `xml:"dc:title"`
	Creator     string         `xml:"dc:creator"`
	Publisher   string         `xml:"dc:publisher,omitempty"`
	Date        string         `xml:"dc:date,omitempty"`
	Language    string         `xml:"dc:language,omitempty"`
	Identifier  *identifierOut `xml:"dc:identifier,omitempty"`
	Description string         `xml:"dc:description,omitempty"`
	Meta        []opfMeta      `xml:"meta,omitempty"`
}

type identifierOut struct {
	Value string `xml:",chardata"`
	ID    string `xml:"id,attr,omitempty"`
}

type manifestOut struct {
	Items []opfItem `xml:"item"`
}

type spineOut struct {
	Toc      string       `xml:"toc,attr,omitempty"`
	ItemRefs []opfItemRef `xml:"itemref"`
}

// renderOPF produces the content.opf document for a book whose chapters all
// have resource paths assigned. coverHref names the packaged cover image and
// may be empty.
func renderOPF(b *book.Book, coverHref string) ([]byte, error) {
	meta := metadataOut{
		XmlnsDC:     dcXmlns,
		Title:       b.Metadata.Title,
		Creator:     b.Metadata.Author,
		Publisher:   b.Metadata.Publisher,
		Language:    b.Metadata.Language,
		Description: b.Metadata.Description,
	}
	if b.Metadata.PubDate != nil {
		meta.Date = b.Metadata.PubDate.Format("2006-01-02")
	}

	pkg := packageOut{
		Xmlns:    opfXmlns,
		Version:  "2.0",
		Metadata: meta,
		Spine:    spineOut{Toc: ncxItemID},
	}
	if b.Metadata.Identifier != "" {
		pkg.UniqueID = identifierRef
		pkg.Metadata.Identifier = &identifierOut{Value: b.Metadata.Identifier, ID: identifierRef}
	}

	pkg.Manifest.Items = append(pkg.Manifest.Items, opfItem{
		ID:        ncxItemID,
		Href:      ncxName,
		MediaType: ncxMediaType,
	})
	for _, c := range b.Chapters {
		id := deriveID(c.FilePath)
		pkg.Manifest.Items = append(pkg.Manifest.Items, opfItem{
			ID:        id,
			Href:      c.FilePath,
			MediaType: xhtmlMediaType,
		})
		pkg.Spine.ItemRefs = append(pkg.Spine.ItemRefs, opfItemRef{IDRef: id})
	}
	if coverHref != "" && b.Cover != nil {
		pkg.Manifest.Items = append(pkg.Manifest.Items, opfItem{
			ID:        coverItemID,
			Href:      coverHref,
			MediaType: b.Cover.MediaType,
		})
		pkg.Metadata.Meta = append(pkg.Metadata.Meta, opfMeta{Name: "cover", Content: coverItemID})
	}

	body, err := xml.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render OPF: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
