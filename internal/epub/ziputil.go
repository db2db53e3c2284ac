package epub

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const mimetypeContent = "application/epub+zip"

// isSafeEntry checks whether a zip entry name stays inside the archive root
// once cleaned. Absolute paths and traversal segments are rejected.
func isSafeEntry(name string) bool {
	cleaned := path.Clean(name)
	if strings.HasPrefix(cleaned, "/") {
		return false
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return false
	}
	return true
}

// stripBOM removes a leading UTF-8 byte order mark, which some producers
// prepend to XML files and encoding/xml does not accept
func stripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}

// extractArchive unpacks the ZIP archive at src into dstDir
func extractArchive(src, dstDir string) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if !isSafeEntry(f.Name) {
			return fmt.Errorf("unsafe archive entry path: %s", f.Name)
		}

		target := filepath.Join(dstDir, filepath.FromSlash(f.Name))
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", f.Name, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", f.Name, err)
		}
		if err := extractEntry(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("failed to extract %s: %w", f.Name, err)
	}
	return nil
}

// packArchive zips the tree under srcDir into a new EPUB archive at dst.
// The mimetype entry is written first and stored uncompressed, as EPUB
// readers expect; everything else is deflated.
func packArchive(srcDir, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	if err := writeArchiveEntries(zw, srcDir); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

func writeArchiveEntries(zw *zip.Writer, srcDir string) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return fmt.Errorf("failed to write mimetype: %w", err)
	}
	if _, err := w.Write([]byte(mimetypeContent)); err != nil {
		return fmt.Errorf("failed to write mimetype: %w", err)
	}

	return filepath.Walk(srcDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if name == "mimetype" {
			// already written as the stored first entry
			return nil
		}

		in, err := os.Open(p)
		if err != nil {
			return err
		}
		defer in.Close()

		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return err
		}
		_, err = io.Copy(w, in)
		return err
	})
}
