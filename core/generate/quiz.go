// ABOUTME: Quiz generation from extracted article text
// ABOUTME: Validates that every question's answer is one of its options

package generate

import (
	"context"
	"fmt"

	"quizzer-app-api/core/domain"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
	"quizzer-app-api/core/registry"
)

const quizPrompt = "Generate a multiple-choice quiz based on the following article. " +
	"Each question has exactly four options, one correct answer taken verbatim from the options, " +
	"a short explanation, and a topical category.\n\nArticle:\n"

// Quiz generates a multiple-choice quiz from the article's text.
func (s *Service) Quiz(ctx context.Context, article *domain.Article) (*domain.Quiz, error) {
	if article == nil || article.TextContent == "" {
		return nil, &cerrors.GenerationError{Task: "quiz", Message: "no article text to generate from"}
	}

	model, err := s.languageModel(ctx, registry.NameQuizGenerator)
	if err != nil {
		return nil, err
	}

	var quiz domain.Quiz
	err = withSession(ctx, model, "quiz", func(session interfaces.LanguageModelSession) error {
		return promptJSON(ctx, session, "quiz", quizPrompt+article.TextContent, quizSchema, &quiz)
	})
	if err != nil {
		return nil, err
	}

	if len(quiz.Questions) == 0 {
		return nil, &cerrors.GenerationError{Task: "quiz", Message: "model returned no questions"}
	}
	for i, q := range quiz.Questions {
		if err := validateQuestion(q); err != nil {
			return nil, &cerrors.GenerationError{Task: "quiz", Message: fmt.Sprintf("question %d is invalid: %v", i+1, err)}
		}
	}

	s.deps.Logger.Info("quiz generated", map[string]interface{}{
		"questions": len(quiz.Questions),
	})
	return &quiz, nil
}

func validateQuestion(q domain.Question) error {
	if q.Question == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("no options")
	}
	seen := make(map[string]bool, len(q.Options))
	found := false
	for _, opt := range q.Options {
		if seen[opt] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
		if opt == q.Answer {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("answer %q is not among the options", q.Answer)
	}
	return nil
}
