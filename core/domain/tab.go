// ABOUTME: Domain models for tab extraction
// ABOUTME: Defines the normalized article and tab data structures consumed by all generators

package domain

// TabInfo describes the active browser tab as reported by the client.
type TabInfo struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	FavIconURL  string `json:"favIconUrl,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// Article represents structured content extracted by the readability parser.
// TextContent is the canonical field downstream generators work from.
// Title and TextContent are rewritten in place by the translation step of
// the pipeline; everything else is read-only after extraction.
type Article struct {
	Title       string `json:"title"`
	Content     string `json:"content"`     // HTML content
	Markdown    string `json:"markdown"`    // Markdown rendition of Content, best-effort
	TextContent string `json:"textContent"` // Plain text content
	Excerpt     string `json:"excerpt"`
	Byline      string `json:"byline"`
	Length      int    `json:"length"`
	Dir         string `json:"dir"` // "ltr" or "rtl"
	SiteName    string `json:"siteName"`
}

// TabData is the result of one extraction cycle. It is immutable after
// creation and shared by all downstream generation tasks.
//
// Language always holds the ISO code of the original page content as
// detected, even when the article text was translated afterwards.
type TabData struct {
	Title      string   `json:"title"`
	DOMContent string   `json:"domContent"`
	Favicon    string   `json:"favicon,omitempty"`
	Article    *Article `json:"article"`
	Language   string   `json:"language"`
}
