package epub

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/yuanying/epubkit/internal/book"
)

const (
	maxCoverWidth    = 1600
	coverJPEGQuality = 85
)

// detectCover finds the cover image entry in a parsed package. The EPUB 2
// meta name="cover" pointer is tried first, then the EPUB 3 cover-image
// manifest property.
func detectCover(doc *packageDoc) (manifestEntry, bool) {
	if doc.CoverID != "" {
		if entry, ok := doc.Manifest[doc.CoverID]; ok {
			return entry, true
		}
	}
	for _, entry := range doc.Manifest {
		for _, prop := range strings.Fields(entry.Properties) {
			if prop == "cover-image" {
				return entry, true
			}
		}
	}
	return manifestEntry{}, false
}

// loadCover attaches the package's cover image to the book when one is
// declared and readable. A book without a cover is perfectly fine.
func loadCover(b *book.Book, doc *packageDoc, opfDir string) {
	entry, ok := detectCover(doc)
	if !ok {
		return
	}

	data, err := os.ReadFile(filepath.Join(opfDir, filepath.FromSlash(entry.Href)))
	if err != nil {
		log.Printf("warning: cover image %s not readable, skipping", entry.Href)
		return
	}

	mediaType := entry.MediaType
	if mediaType == "" {
		mediaType = mediaTypeForExt(filepath.Ext(entry.Href))
	}
	b.Cover = &book.Cover{Data: data, MediaType: mediaType}
}

func mediaTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

// coverFileName returns the archive filename a cover is written under
func coverFileName(mediaType string) string {
	if mediaType == "image/png" {
		return "cover.png"
	}
	return "cover.jpg"
}

// PrepareCover normalizes raw image bytes for embedding: images wider than
// maxCoverWidth are downscaled, and everything except PNGs with transparency
// is re-encoded as JPEG. Transparent PNGs stay PNG to preserve alpha.
func PrepareCover(data []byte) (*book.Cover, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover image: %w", err)
	}

	if img.Bounds().Dx() > maxCoverWidth {
		img = imaging.Resize(img, maxCoverWidth, 0, imaging.Lanczos)
	}

	if format == "png" && hasAlpha(img) {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode cover PNG: %w", err)
		}
		return &book.Cover{Data: buf.Bytes(), MediaType: "image/png"}, nil
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: coverJPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode cover JPEG: %w", err)
	}
	return &book.Cover{Data: buf.Bytes(), MediaType: "image/jpeg"}, nil
}

func hasAlpha(img image.Image) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a < 0xFFFF {
				return true
			}
		}
	}
	return false
}
