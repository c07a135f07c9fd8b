// Package pdftext pulls plain text out of a PDF so the text parser can
// work on it. Scanned PDFs without a text layer come back empty; running
// OCR on those is a caller concern.
package pdftext

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// ExtractFile returns the concatenated plain text of every page in the
// PDF at path, pages separated by a newline. Pages whose text cannot be
// decoded are skipped rather than failing the whole document.
func ExtractFile(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}
