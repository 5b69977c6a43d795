package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document summarises an exported PDF.
type Document struct {
	Pages int
	Text  string
}

// InspectFile reads a PDF from disk.
func InspectFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Inspect(data)
}

// Inspect extracts the page count and plain text of a PDF.
func Inspect(data []byte) (*Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	var text strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		text.WriteString(content)
	}

	return &Document{Pages: numPages, Text: text.String()}, nil
}

// Contains reports whether every needle appears in the document text,
// ignoring whitespace differences introduced by PDF text extraction.
func (d *Document) Contains(needles ...string) bool {
	haystack := strings.Join(strings.Fields(d.Text), "")
	for _, n := range needles {
		if !strings.Contains(haystack, strings.Join(strings.Fields(n), "")) {
			return false
		}
	}
	return true
}
