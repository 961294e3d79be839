// ABOUTME: Domain model for flashcards
// ABOUTME: A single flashcard generated from a user-selected text span

package domain

// Flashcard is a study card generated from a selected text span.
// TextExtract preserves the span the card was generated from.
type Flashcard struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	TextExtract string `json:"textExtract"`
}
