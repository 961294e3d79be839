// ABOUTME: Domain models for crossword and word-game generation
// ABOUTME: Word/hint pairs from the model plus the spatial layout fed to the UI

package domain

// WordClue is one answer/hint pair produced by the language model.
type WordClue struct {
	Answer string `json:"answer"`
	Hint   string `json:"hint"`
}

// PlacedWord is a word assigned grid coordinates and an orientation by
// the layout engine. Row and Col are 1-based.
type PlacedWord struct {
	Answer      string `json:"answer"`
	Hint        string `json:"hint"`
	Row         int    `json:"row,omitempty"`
	Col         int    `json:"col,omitempty"`
	Orientation string `json:"orientation"` // "across", "down" or "none" when unplaced
	Position    int    `json:"position"`
}

// CrosswordLayout is the final puzzle layout consumed by the UI.
type CrosswordLayout struct {
	Result []PlacedWord `json:"result"`
	Rows   int          `json:"rows"`
	Cols   int          `json:"cols"`
}
