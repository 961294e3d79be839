// ABOUTME: Article summarization via the dedicated summarizer model
// ABOUTME: Uses tldr/long/markdown options rather than a language model session

package generate

import (
	"context"

	"quizzer-app-api/core/domain"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
	"quizzer-app-api/core/registry"
)

var summaryOptions = interfaces.SummarizerOptions{
	Type:   "tldr",
	Length: "long",
	Format: "markdown",
}

// Summary produces a markdown tl;dr summary of the article's text.
func (s *Service) Summary(ctx context.Context, article *domain.Article) (string, error) {
	if article == nil || article.TextContent == "" {
		return "", &cerrors.GenerationError{Task: "summary", Message: "no article text to summarize"}
	}

	handle, err := s.registry.Acquire(ctx, registry.NameSummarizer, s.caps.Summarizer(summaryOptions), nil)
	if err != nil {
		return "", err
	}
	summarizer, ok := handle.(interfaces.Summarizer)
	if !ok {
		return "", &cerrors.ModelAcquisitionError{Name: registry.NameSummarizer, Err: errWrongInstance}
	}

	summary, err := summarizer.Summarize(ctx, article.TextContent)
	if err != nil {
		return "", &cerrors.GenerationError{Task: "summary", Message: "summarization failed", Err: err}
	}

	s.deps.Logger.Info("summary generated", map[string]interface{}{
		"length": len(summary),
	})
	return summary, nil
}
