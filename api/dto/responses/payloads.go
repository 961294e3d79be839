// ABOUTME: Typed success payloads for each API operation
// ABOUTME: Each embeds the envelope so the payload flattens into it

package responses

import "quizzer-app-api/core/domain"

// TabExtractResponse carries the extracted tab data.
type TabExtractResponse struct {
	Envelope
	TabData *domain.TabData `json:"tabData,omitempty"`
}

// SummaryResponse carries a markdown article summary.
type SummaryResponse struct {
	Envelope
	Summary string `json:"summary,omitempty"`
}

// QuizResponse carries a generated quiz.
type QuizResponse struct {
	Envelope
	Quiz *domain.Quiz `json:"quiz,omitempty"`
}

// CrosswordResponse carries a laid-out crossword puzzle.
type CrosswordResponse struct {
	Envelope
	CrosswordLayout *domain.CrosswordLayout `json:"crosswordLayout,omitempty"`
}

// SuggestionsResponse carries follow-up study suggestions.
type SuggestionsResponse struct {
	Envelope
	Suggestions []domain.CategorySuggestion `json:"suggestions,omitempty"`
}

// FlashcardResponse carries one generated flashcard.
type FlashcardResponse struct {
	Envelope
	Flashcard *domain.Flashcard `json:"flashcard,omitempty"`
}

// FlashcardListResponse carries all persisted flashcards.
type FlashcardListResponse struct {
	Envelope
	Flashcards []domain.Flashcard `json:"flashcards"`
}

// ImageScoreResponse carries an image/description match grade.
type ImageScoreResponse struct {
	Envelope
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning,omitempty"`
}

// HistoryResponse carries the stored answer history.
type HistoryResponse struct {
	Envelope
	History []domain.AnswerHistoryEntry `json:"history"`
}
