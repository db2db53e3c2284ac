package epub

import (
	"encoding/xml"
	"fmt"
)

const (
	containerPath  = "META-INF/container.xml"
	containerXmlns = "urn:oasis:names:tc:opendocument:xmlns:container"
	opfMediaType   = "application/oebps-package+xml"
)

// containerDoc is the parse-side shape of META-INF/container.xml
type containerDoc struct {
	Rootfiles struct {
		Rootfile []struct {
			FullPath  string `xml:"full-path,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"rootfile"`
	} `xml:"rootfiles"`
}

// containerOut is the emit-side shape, pinning the attributes EPUB 2 requires
type containerOut struct {
	XMLName   xml.Name             `xml:"container"`
	Version   string               `xml:"version,attr"`
	Xmlns     string               `xml:"xmlns,attr"`
	Rootfiles containerOutRootfile `xml:"rootfiles"`
}

type containerOutRootfile struct {
	Rootfile []rootfileOut `xml:"rootfile"`
}

type rootfileOut struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// findRootfile parses container.xml content and returns the archive-relative
// OPF path. Only a rootfile declaring the package media type counts, and it
// must carry a full-path attribute.
func findRootfile(data []byte) (string, error) {
	var c containerDoc
	if err := xml.Unmarshal(stripBOM(data), &c); err != nil {
		return "", fmt.Errorf("%w: malformed container.xml: %v", ErrInvalidStructure, err)
	}

	for _, rf := range c.Rootfiles.Rootfile {
		if rf.MediaType == opfMediaType {
			if rf.FullPath == "" {
				return "", ErrNoRootfile
			}
			return rf.FullPath, nil
		}
	}
	return "", ErrNoRootfile
}

// renderContainer produces the container.xml document pointing at opfPath
func renderContainer(opfPath string) ([]byte, error) {
	c := containerOut{
		Version: "1.0",
		Xmlns:   containerXmlns,
		Rootfiles: containerOutRootfile{
			Rootfile: []rootfileOut{
				{FullPath: opfPath, MediaType: opfMediaType},
			},
		},
	}

	body, err := xml.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render container.xml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
