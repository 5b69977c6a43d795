package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resumeforge/internal/config"
	"github.com/jonathan/resumeforge/internal/export"
)

// getBinaryPath returns the path to the resumeforge binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resumeforge"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resumeforge ./cmd/resumeforge'", binaryPath)
	}

	return binaryPath
}

// useTestConfig installs default settings and a browserless PDF renderer
// that prints text as a one-page PDF.
func useTestConfig(t *testing.T, text string) {
	t.Helper()
	prevConfig, prevRenderer := appConfig, pdfRenderer
	t.Cleanup(func() {
		appConfig, pdfRenderer = prevConfig, prevRenderer
	})

	appConfig = config.Defaults()
	appConfig.OutputPath = filepath.Join(t.TempDir(), "resume.pdf")
	pdfRenderer = func(context.Context, string, export.PageOptions) ([]byte, error) {
		return testPDF(text), nil
	}
}

// testPDF builds a one-page PDF with a single line of Helvetica text.
func testPDF(text string) []byte {
	content := fmt.Sprintf("BT /F1 18 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}
