// ABOUTME: Flashcard generation from a selected text passage
// ABOUTME: Persists created cards so they can be reviewed later

package generate

import (
	"context"
	"encoding/json"

	"quizzer-app-api/core/domain"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
	"quizzer-app-api/core/registry"
)

const flashcardPrompt = "Turn the following passage into a single flashcard with a short title " +
	"on the front and a concise explanation on the back.\n\nPassage:\n"

// Flashcard generates a flashcard from a text passage and persists it.
func (s *Service) Flashcard(ctx context.Context, text string) (*domain.Flashcard, error) {
	if text == "" {
		return nil, &cerrors.GenerationError{Task: "flashcard", Message: "no text to generate from"}
	}

	model, err := s.languageModel(ctx, registry.NameFlashcardGenerator)
	if err != nil {
		return nil, err
	}

	var card domain.Flashcard
	err = withSession(ctx, model, "flashcard", func(session interfaces.LanguageModelSession) error {
		return promptJSON(ctx, session, "flashcard", flashcardPrompt+text, flashcardSchema, &card)
	})
	if err != nil {
		return nil, err
	}
	if card.Title == "" || card.Content == "" {
		return nil, &cerrors.GenerationError{Task: "flashcard", Message: "model returned an empty flashcard"}
	}
	card.TextExtract = text

	if err := s.saveFlashcard(ctx, card); err != nil {
		return nil, err
	}

	s.deps.Logger.Info("flashcard generated", map[string]interface{}{
		"title": card.Title,
	})
	return &card, nil
}

// Flashcards lists all persisted flashcards, oldest first.
func (s *Service) Flashcards(ctx context.Context) ([]domain.Flashcard, error) {
	raw, err := s.store.Get(ctx, interfaces.KeyFlashcards)
	if err != nil {
		return nil, &cerrors.GenerationError{Task: "flashcard", Message: "failed to load flashcards", Err: err}
	}
	if raw == nil {
		return nil, nil
	}
	var cards []domain.Flashcard
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, &cerrors.GenerationError{Task: "flashcard", Message: "corrupt flashcard store", Err: err}
	}
	return cards, nil
}

func (s *Service) saveFlashcard(ctx context.Context, card domain.Flashcard) error {
	cards, err := s.Flashcards(ctx)
	if err != nil {
		return err
	}
	cards = append(cards, card)
	encoded, err := json.Marshal(cards)
	if err != nil {
		return &cerrors.GenerationError{Task: "flashcard", Message: "failed to serialize flashcards", Err: err}
	}
	if err := s.store.Set(ctx, interfaces.KeyFlashcards, encoded); err != nil {
		return &cerrors.GenerationError{Task: "flashcard", Message: "failed to persist flashcard", Err: err}
	}
	return nil
}
