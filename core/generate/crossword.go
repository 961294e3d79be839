// ABOUTME: Crossword generation from extracted article text
// ABOUTME: The model picks words and hints, the layout collaborator places them

package generate

import (
	"context"
	"strings"

	"quizzer-app-api/core/domain"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
	"quizzer-app-api/core/registry"
)

const crosswordPrompt = "Pick notable single words from the following article and write a " +
	"crossword-style hint for each. Answers must be single words without spaces.\n\nArticle:\n"

// Crossword generates a laid-out crossword puzzle from the article's
// text.
func (s *Service) Crossword(ctx context.Context, article *domain.Article) (*domain.CrosswordLayout, error) {
	if article == nil || article.TextContent == "" {
		return nil, &cerrors.GenerationError{Task: "crossword", Message: "no article text to generate from"}
	}

	model, err := s.languageModel(ctx, registry.NameCrosswordGenerator)
	if err != nil {
		return nil, err
	}

	var out struct {
		Words []domain.WordClue `json:"words"`
	}
	err = withSession(ctx, model, "crossword", func(session interfaces.LanguageModelSession) error {
		return promptJSON(ctx, session, "crossword", crosswordPrompt+article.TextContent, crosswordSchema, &out)
	})
	if err != nil {
		return nil, err
	}

	words := make([]domain.WordClue, 0, len(out.Words))
	for _, w := range out.Words {
		answer := strings.ToUpper(strings.TrimSpace(w.Answer))
		if answer == "" || strings.ContainsAny(answer, " \t") {
			continue
		}
		words = append(words, domain.WordClue{Answer: answer, Hint: w.Hint})
	}
	if len(words) == 0 {
		return nil, &cerrors.GenerationError{Task: "crossword", Message: "model returned no usable words"}
	}

	layout := s.layout(words)
	if len(layout.Result) == 0 {
		return nil, &cerrors.GenerationError{Task: "crossword", Message: "no words could be placed on the grid"}
	}

	s.deps.Logger.Info("crossword generated", map[string]interface{}{
		"words":  len(words),
		"placed": len(layout.Result),
		"rows":   layout.Rows,
		"cols":   layout.Cols,
	})
	return &layout, nil
}
