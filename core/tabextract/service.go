// ABOUTME: Tab extraction pipeline producing one normalized TabData per request
// ABOUTME: Composes document acquisition, readability extraction, language detection and translation

package tabextract

import (
	"context"
	"encoding/json"
	"net/url"
	"sort"
	"strings"
	"time"

	"quizzer-app-api/core/domain"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
	"quizzer-app-api/core/registry"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// internalPagePrefixes are browser-specific schemes that cannot be
// scraped. Rejected before any content acquisition is attempted.
var internalPagePrefixes = []string{
	"chrome://",
	"chrome-extension://",
	"edge://",
	"brave://",
	"arc://",
	"about:",
}

// rtlLanguages are language codes rendered right-to-left.
var rtlLanguages = map[string]bool{
	"ar": true,
	"he": true,
	"fa": true,
	"ur": true,
	"yi": true,
}

// Service runs the tab extraction pipeline. Each Extract call is
// strictly sequential internally; concurrency only arises from
// independent top-level requests.
type Service struct {
	deps           interfaces.Dependencies
	registry       *registry.Registry
	caps           interfaces.Capabilities
	acquirer       DocumentAcquirer
	converter      *md.Converter
	targetLanguage string
}

// NewService creates a tab extraction service. targetLanguage is the
// language all textual TabData fields are normalized to ("en").
func NewService(deps interfaces.Dependencies, reg *registry.Registry, caps interfaces.Capabilities, acquirer DocumentAcquirer, targetLanguage string) *Service {
	return &Service{
		deps:           deps,
		registry:       reg,
		caps:           caps,
		acquirer:       acquirer,
		converter:      md.NewConverter("", true, nil),
		targetLanguage: targetLanguage,
	}
}

// Extract produces one normalized TabData from the given tab, or a
// typed error. It never returns a partially populated TabData.
func (s *Service) Extract(ctx context.Context, tab domain.TabInfo) (*domain.TabData, error) {
	if tab.URL == "" || tab.Title == "" {
		return nil, &cerrors.TabExtractionError{
			Reason:  cerrors.ReasonNoTab,
			Message: "No valid active tab found",
		}
	}

	for _, prefix := range internalPagePrefixes {
		if strings.HasPrefix(tab.URL, prefix) {
			return nil, &cerrors.TabExtractionError{
				Reason:  cerrors.ReasonNotReaderable,
				Message: "Page not readerable",
			}
		}
	}

	if cached := s.cachedTabData(ctx, tab.URL); cached != nil {
		s.deps.Logger.Debug("Returning cached tab data", map[string]interface{}{
			"url": tab.URL,
		})
		return cached, nil
	}

	doc, err := s.acquirer.Acquire(ctx, tab)
	if err != nil {
		s.deps.Logger.Error("Document acquisition failed", map[string]interface{}{
			"url":   tab.URL,
			"error": err.Error(),
		})
		return nil, &cerrors.TabExtractionError{
			Reason:  cerrors.ReasonNoContent,
			Message: "Page not readerable - content could not be extracted",
		}
	}

	if doc.PDFErr != nil {
		return nil, &cerrors.TabExtractionError{
			Reason:  cerrors.ReasonNotReaderable,
			Message: "Page not readerable - PDF extraction failed: " + doc.PDFErr.Error(),
		}
	}

	if doc.Content == "" {
		return nil, &cerrors.TabExtractionError{
			Reason:  cerrors.ReasonNoContent,
			Message: "Page not readerable - content could not be extracted",
		}
	}

	// Cheap classifier first; full extraction only runs when the page
	// plausibly holds an article.
	if !readability.Check(strings.NewReader(doc.Content)) {
		return nil, &cerrors.TabExtractionError{
			Reason:  cerrors.ReasonNotReaderable,
			Message: "Page not readerable",
		}
	}

	pageURL, _ := url.Parse(tab.URL)
	extracted, err := readability.FromReader(strings.NewReader(doc.Content), pageURL)
	if err != nil {
		s.deps.Logger.Error("Readability extraction failed", map[string]interface{}{
			"url":   tab.URL,
			"error": err.Error(),
		})
		return nil, &cerrors.TabExtractionError{
			Reason:  cerrors.ReasonNotReaderable,
			Message: "Failed to extract article content",
		}
	}

	article := &domain.Article{
		Title:       extracted.Title,
		Content:     extracted.Content,
		TextContent: extracted.TextContent,
		Excerpt:     extracted.Excerpt,
		Byline:      extracted.Byline,
		Length:      extracted.Length,
		SiteName:    extracted.SiteName,
	}
	article.Markdown = s.renderMarkdown(tab.URL, article.Content)

	language, err := s.detectLanguage(ctx, article.TextContent, tab.Title)
	if err != nil {
		return nil, err
	}
	article.Dir = textDirection(language)

	tabTitle := tab.Title
	if language != "" && language != s.targetLanguage {
		if err := s.translate(ctx, language, article, &tabTitle); err != nil {
			return nil, err
		}
	}

	tabData := &domain.TabData{
		Title:      tabTitle,
		DOMContent: doc.Content,
		Favicon:    s.favicon(tab, doc.Content),
		Article:    article,
		Language:   language,
	}
	s.storeTabData(ctx, tab.URL, tabData)
	return tabData, nil
}

// tabDataTTL bounds how long an extracted page is served from cache
// before re-extraction. Pages change; fifteen minutes keeps repeat
// generation requests against the same tab cheap without going stale.
const tabDataTTL = 15 * time.Minute

func tabDataKey(pageURL string) string {
	return "tabdata:" + pageURL
}

// cachedTabData returns the cached extraction for pageURL, or nil.
// Cache failures are soft: extraction proceeds as if uncached.
func (s *Service) cachedTabData(ctx context.Context, pageURL string) *domain.TabData {
	if s.deps.Cache == nil {
		return nil
	}
	raw, err := s.deps.Cache.Get(ctx, tabDataKey(pageURL))
	if err != nil || raw == nil {
		return nil
	}
	var tabData domain.TabData
	if err := json.Unmarshal(raw, &tabData); err != nil {
		s.deps.Logger.Warn("Discarding corrupt cached tab data", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return nil
	}
	return &tabData
}

func (s *Service) storeTabData(ctx context.Context, pageURL string, tabData *domain.TabData) {
	if s.deps.Cache == nil {
		return
	}
	raw, err := json.Marshal(tabData)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, tabDataKey(pageURL), raw, tabDataTTL); err != nil {
		s.deps.Logger.Warn("Failed to cache tab data", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
	}
}

// renderMarkdown converts article HTML to markdown. Best-effort: a
// conversion failure never fails the extraction.
func (s *Service) renderMarkdown(pageURL, content string) string {
	if content == "" {
		return ""
	}
	markdown, err := s.converter.ConvertString(content)
	if err != nil {
		s.deps.Logger.Debug("Failed to convert HTML to markdown", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return ""
	}
	return markdown
}

// detectLanguage returns the dominant language of the article text,
// falling back to the tab title when no article text exists. An empty
// candidate list yields "" (unknown), never an error.
func (s *Service) detectLanguage(ctx context.Context, textContent, tabTitle string) (string, error) {
	handle, err := s.registry.Acquire(ctx, registry.NameLanguageDetector, s.caps.Detector(), nil)
	if err != nil {
		return "", err
	}
	detector, ok := handle.(interfaces.LanguageDetector)
	if !ok {
		return "", &cerrors.ModelAcquisitionError{
			Name: registry.NameLanguageDetector,
			Err:  errWrongInstance,
		}
	}

	sample := textContent
	if sample == "" {
		sample = tabTitle
	}

	candidates, err := detector.Detect(ctx, sample)
	if err != nil {
		return "", &cerrors.ModelAcquisitionError{Name: registry.NameLanguageDetector, Err: err}
	}

	language := topCandidate(candidates)
	s.deps.Logger.Debug("Detected language", map[string]interface{}{"language": language})
	return language, nil
}

// translate rewrites the article text, article title and tab title to
// the target language, in that order, each only when non-empty. Any
// single failure aborts: consumers assume all fields share one language.
func (s *Service) translate(ctx context.Context, source string, article *domain.Article, tabTitle *string) error {
	name := registry.TranslatorName(source, s.targetLanguage)
	handle, err := s.registry.Acquire(ctx, name, s.caps.Translator(source, s.targetLanguage), nil)
	if err != nil {
		return err
	}
	translator, ok := handle.(interfaces.Translator)
	if !ok {
		return &cerrors.ModelAcquisitionError{Name: name, Err: errWrongInstance}
	}

	if article.TextContent != "" {
		translated, err := translator.Translate(ctx, article.TextContent)
		if err != nil {
			return &cerrors.TranslationError{Source: source, Target: s.targetLanguage, Field: "textContent", Err: err}
		}
		article.TextContent = translated
	}
	if article.Title != "" {
		translated, err := translator.Translate(ctx, article.Title)
		if err != nil {
			return &cerrors.TranslationError{Source: source, Target: s.targetLanguage, Field: "articleTitle", Err: err}
		}
		article.Title = translated
	}
	if *tabTitle != "" {
		translated, err := translator.Translate(ctx, *tabTitle)
		if err != nil {
			return &cerrors.TranslationError{Source: source, Target: s.targetLanguage, Field: "tabTitle", Err: err}
		}
		*tabTitle = translated
	}
	return nil
}

// favicon returns the tab-reported icon URL, falling back to a
// best-effort lookup of icon link tags in the document.
func (s *Service) favicon(tab domain.TabInfo, content string) string {
	if tab.FavIconURL != "" {
		return tab.FavIconURL
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	for _, selector := range []string{`link[rel="icon"]`, `link[rel="shortcut icon"]`} {
		if href, ok := doc.Find(selector).First().Attr("href"); ok {
			return resolveRef(tab.URL, href)
		}
	}
	return ""
}

// resolveRef resolves href against the page URL so relative icon paths
// come back absolute.
func resolveRef(pageURL, href string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// topCandidate picks the highest-confidence candidate. The sort is
// stable so ties keep the detector's response order.
func topCandidate(candidates []interfaces.LanguageCandidate) string {
	if len(candidates) == 0 {
		return ""
	}
	ranked := make([]interfaces.LanguageCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})
	return ranked[0].Language
}

// textDirection maps a language code to a writing direction.
func textDirection(language string) string {
	if rtlLanguages[language] {
		return "rtl"
	}
	return "ltr"
}
