// ABOUTME: Domain models for learning suggestions
// ABOUTME: Per-category suggestion records generated from the answer history

package domain

// CategorySuggestion is one per-topic learning suggestion record. The
// model only produces categories present in the supplied answer history.
type CategorySuggestion struct {
	Category      string   `json:"category"`
	Emoji         string   `json:"emoji,omitempty"`
	Score         int      `json:"score"`
	Summary       string   `json:"summary"`
	Suggestions   []string `json:"suggestions"`
	SearchQueries []string `json:"searchQueries"`
}

// SuggestionSet is the full suggestion payload cached between
// regenerations.
type SuggestionSet struct {
	Categories []CategorySuggestion `json:"categories"`
}
