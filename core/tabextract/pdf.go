// ABOUTME: PDF text extraction for the document acquirer
// ABOUTME: Walks every page and concatenates text items into a synthetic HTML envelope

package tabextract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText extracts plain text from a PDF document. Text items
// are joined by spaces within a page; pages are separated by a blank
// line.
func extractPDFText(data []byte) (text string, err error) {
	// The pdf library panics on some malformed documents; a broken PDF
	// must surface as an extraction error, not a crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var pages []string
	for num := 1; num <= reader.NumPage(); num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		items := make([]string, 0, len(content.Text))
		for _, item := range content.Text {
			items = append(items, item.S)
		}
		pages = append(pages, strings.Join(items, " "))
	}

	return strings.TrimSpace(strings.Join(pages, "\n\n")), nil
}

// wrapPDFText wraps extracted PDF text in a minimal HTML envelope so
// downstream parsing is uniform across document types.
func wrapPDFText(text string) string {
	return `<html><head><title>PDF Document</title></head><body><article><div class="pdf-content">` +
		strings.TrimSpace(text) + `</div></article></body></html>`
}

// wrapPDFError wraps an extraction failure as an error envelope. The
// envelope is kept as the acquisition content so the degraded document
// remains observable, but the pipeline classifies the failure directly.
func wrapPDFError(err error) string {
	return `<html><body>Error parsing PDF: ` + err.Error() + `</body></html>`
}
