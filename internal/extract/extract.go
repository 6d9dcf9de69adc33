package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/alauddinGen-Z/SLA/constants"
	"github.com/alauddinGen-Z/SLA/internal/common"
)

// Text turns an uploaded blob into plain text, branching on the declared
// filename. PDF files are parsed page by page; everything else is decoded
// as UTF-8 text unchanged.
func Text(data []byte, filename string) (string, error) {
	if constants.IsPDF(filename) {
		return pdfText(data)
	}
	return string(data), nil
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", common.NewAppError("EXTRACTION_ERROR", "failed to parse PDF document", common.ErrExtraction)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document;
			// the emptiness check below catches fully opaque files.
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", common.NewAppError("EXTRACTION_ERROR",
			"document contains no extractable text (OCR not supported)", common.ErrExtraction)
	}
	return b.String(), nil
}
