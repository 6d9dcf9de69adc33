package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alauddinGen-Z/SLA/internal/common"
)

// buildPDF assembles a one-page PDF whose content stream is given verbatim,
// computing the xref offsets so the file is well formed.
func buildPDF(t *testing.T, content string) []byte {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content)+1, content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	return buf.Bytes()
}

func TestTextPDF(t *testing.T) {
	data := buildPDF(t, "BT /F1 12 Tf 72 720 Td (Uptime below 99.9% earns a 10% credit) Tj ET")

	text, err := Text(data, "contract.pdf")
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if !strings.Contains(text, "Uptime below 99.9%") {
		t.Errorf("extracted text missing page content: %q", text)
	}
}

func TestTextPDFCaseInsensitiveExtension(t *testing.T) {
	data := buildPDF(t, "BT /F1 12 Tf 72 720 Td (SLA terms) Tj ET")

	text, err := Text(data, "CONTRACT.PDF")
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if !strings.Contains(text, "SLA terms") {
		t.Errorf("extracted text missing page content: %q", text)
	}
}

func TestTextPDFNoExtractableText(t *testing.T) {
	data := buildPDF(t, "BT ET")

	_, err := Text(data, "scan.pdf")
	if err == nil {
		t.Fatal("expected error for PDF without text content")
	}
	if !errors.Is(err, common.ErrExtraction) {
		t.Errorf("expected extraction error, got %v", err)
	}
	if common.UserMessage(err) != "document contains no extractable text (OCR not supported)" {
		t.Errorf("unexpected message: %q", common.UserMessage(err))
	}
}

func TestTextPDFMalformed(t *testing.T) {
	_, err := Text([]byte("not a pdf at all"), "broken.pdf")
	if err == nil {
		t.Fatal("expected error for malformed PDF")
	}
	if !errors.Is(err, common.ErrExtraction) {
		t.Errorf("expected extraction error, got %v", err)
	}
}

func TestTextPlainPassthrough(t *testing.T) {
	in := "Section 4.2: vendor shall maintain 99.95% uptime.\n"

	got, err := Text([]byte(in), "contract.txt")
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if got != in {
		t.Errorf("plain text should pass through unchanged: %q", got)
	}
}

func TestTextPlainEmptyAllowed(t *testing.T) {
	// Only the PDF branch enforces non-emptiness.
	got, err := Text(nil, "empty.txt")
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
