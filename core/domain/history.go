// ABOUTME: Domain models for the answer history
// ABOUTME: Append-only quiz answer records consumed by suggestion generation

package domain

import "time"

// AnswerHistoryEntry records one answered quiz question. Entries without
// a QuizCategory cannot be attributed to a topic and are excluded from
// suggestion generation.
type AnswerHistoryEntry struct {
	Question       string    `json:"question"`
	SelectedAnswer string    `json:"selectedAnswer"`
	CorrectAnswer  string    `json:"correctAnswer"`
	IsCorrect      bool      `json:"isCorrect"`
	QuizCategory   string    `json:"quizCategory,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
