package handlers

import (
	"context"

	"quizzer-app-api/core/domain"
)

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// mockExtractor implements TabExtractor with a function field
type mockExtractor struct {
	extractFunc func(ctx context.Context, tab domain.TabInfo) (*domain.TabData, error)
	calls       int
}

func (m *mockExtractor) Extract(ctx context.Context, tab domain.TabInfo) (*domain.TabData, error) {
	m.calls++
	if m.extractFunc != nil {
		return m.extractFunc(ctx, tab)
	}
	return &domain.TabData{}, nil
}

// mockGenerator implements Generator with function fields
type mockGenerator struct {
	summaryFunc     func(article *domain.Article) (string, error)
	quizFunc        func(article *domain.Article) (*domain.Quiz, error)
	crosswordFunc   func(article *domain.Article) (*domain.CrosswordLayout, error)
	suggestionsFunc func() (*domain.SuggestionSet, error)
	flashcardFunc   func(text string) (*domain.Flashcard, error)
	flashcardsFunc  func() ([]domain.Flashcard, error)
	scoreFunc       func(image []byte, description string) (*domain.ImageScore, error)
}

func (m *mockGenerator) Summary(ctx context.Context, article *domain.Article) (string, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(article)
	}
	return "", nil
}

func (m *mockGenerator) Quiz(ctx context.Context, article *domain.Article) (*domain.Quiz, error) {
	if m.quizFunc != nil {
		return m.quizFunc(article)
	}
	return &domain.Quiz{}, nil
}

func (m *mockGenerator) Crossword(ctx context.Context, article *domain.Article) (*domain.CrosswordLayout, error) {
	if m.crosswordFunc != nil {
		return m.crosswordFunc(article)
	}
	return &domain.CrosswordLayout{}, nil
}

func (m *mockGenerator) Suggestions(ctx context.Context) (*domain.SuggestionSet, error) {
	if m.suggestionsFunc != nil {
		return m.suggestionsFunc()
	}
	return &domain.SuggestionSet{}, nil
}

func (m *mockGenerator) Flashcard(ctx context.Context, text string) (*domain.Flashcard, error) {
	if m.flashcardFunc != nil {
		return m.flashcardFunc(text)
	}
	return &domain.Flashcard{}, nil
}

func (m *mockGenerator) Flashcards(ctx context.Context) ([]domain.Flashcard, error) {
	if m.flashcardsFunc != nil {
		return m.flashcardsFunc()
	}
	return nil, nil
}

func (m *mockGenerator) ScoreImage(ctx context.Context, image []byte, description string) (*domain.ImageScore, error) {
	if m.scoreFunc != nil {
		return m.scoreFunc(image, description)
	}
	return &domain.ImageScore{}, nil
}

// mockHistory implements AnswerHistory
type mockHistory struct {
	recordFunc func(entry domain.AnswerHistoryEntry) error
	listFunc   func() ([]domain.AnswerHistoryEntry, error)
	recorded   []domain.AnswerHistoryEntry
}

func (m *mockHistory) Record(ctx context.Context, entry domain.AnswerHistoryEntry) error {
	m.recorded = append(m.recorded, entry)
	if m.recordFunc != nil {
		return m.recordFunc(entry)
	}
	return nil
}

func (m *mockHistory) List(ctx context.Context) ([]domain.AnswerHistoryEntry, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}
