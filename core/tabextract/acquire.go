// ABOUTME: Document acquisition for the tab pipeline
// ABOUTME: Fetches the page behind the active tab and normalizes it to a serialized document

package tabextract

import (
	"context"
	"fmt"
	"io"
	"strings"

	"quizzer-app-api/core/domain"
	"quizzer-app-api/core/interfaces"
)

// RawDocument is the acquisition result handed to the pipeline.
// Content is always an HTML serialization: the page itself for HTML
// documents, or a synthetic envelope around extracted text for PDFs.
// An unsupported content type yields an empty Content.
type RawDocument struct {
	Content     string
	ContentType string

	// PDFErr records a failed PDF extraction. Content then holds the
	// error envelope rather than article text.
	PDFErr error
}

// DocumentAcquirer obtains raw page content for a tab.
type DocumentAcquirer interface {
	Acquire(ctx context.Context, tab domain.TabInfo) (*RawDocument, error)
}

// HTTPAcquirer fetches the tab's URL over HTTP and branches on the
// declared content type.
type HTTPAcquirer struct {
	client interfaces.HTTPClient
	logger interfaces.Logger
}

// NewHTTPAcquirer creates an acquirer backed by the given HTTP client.
func NewHTTPAcquirer(client interfaces.HTTPClient, logger interfaces.Logger) *HTTPAcquirer {
	return &HTTPAcquirer{
		client: client,
		logger: logger,
	}
}

// Acquire fetches the document. The tab's declared content type wins
// over the response header so a client that already knows it is looking
// at a PDF viewer gets the PDF path regardless of transport quirks.
func (a *HTTPAcquirer) Acquire(ctx context.Context, tab domain.TabInfo) (*RawDocument, error) {
	resp, err := a.client.Get(ctx, tab.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching tab content: %w", err)
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("fetching tab content: server returned %d", resp.StatusCode())
	}

	contentType := tab.ContentType
	if contentType == "" {
		contentType = resp.Header("Content-Type")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading tab content: %w", err)
	}

	switch {
	case strings.Contains(contentType, "html"), strings.Contains(contentType, "text"):
		return &RawDocument{Content: string(data), ContentType: contentType}, nil

	case strings.Contains(contentType, "pdf"):
		text, err := extractPDFText(data)
		if err != nil {
			a.logger.Error("PDF text extraction failed", map[string]interface{}{
				"url":   tab.URL,
				"error": err.Error(),
			})
			return &RawDocument{
				Content:     wrapPDFError(err),
				ContentType: contentType,
				PDFErr:      err,
			}, nil
		}
		return &RawDocument{Content: wrapPDFText(text), ContentType: contentType}, nil
	}

	// Unsupported document type: nothing to extract.
	a.logger.Debug("Unsupported content type", map[string]interface{}{
		"url":          tab.URL,
		"content_type": contentType,
	})
	return &RawDocument{ContentType: contentType}, nil
}
