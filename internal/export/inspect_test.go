package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPDF builds a one-page PDF with a single line of Helvetica text.
func minimalPDF(text string) []byte {
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

func TestInspect_ReadsPagesAndText(t *testing.T) {
	doc, err := Inspect(minimalPDF("Hello Resume"))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Pages)
	assert.True(t, doc.Contains("Hello"), "text was %q", doc.Text)
}

func TestInspectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, minimalPDF("Skills"), 0644))

	doc, err := InspectFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Pages)

	_, err = InspectFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestInspect_RejectsGarbage(t *testing.T) {
	_, err := Inspect([]byte("not a pdf"))
	assert.Error(t, err)
}

func TestDocument_ContainsIgnoresWhitespace(t *testing.T) {
	doc := &Document{Text: "Grace  Hopper\nRear Admiral"}
	assert.True(t, doc.Contains("Grace Hopper", "RearAdmiral"))
	assert.False(t, doc.Contains("COBOL"))
}
