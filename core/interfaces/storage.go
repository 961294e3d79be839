// ABOUTME: Storage interface for flat key-value persistence
// ABOUTME: Backs the answer history, flashcards and cached suggestions

package interfaces

import "context"

// Well-known store keys shared between the core and its callers.
const (
	KeyAnswerHistory       = "answerHistory"
	KeyFlashcards          = "flashcards"
	KeyFollowupSuggestions = "followupSuggestions"
)

// KeyValueStore is a flat persistent store for JSON-encoded values.
// Implementations can be SQLite, Redis, or any durable backend.
type KeyValueStore interface {
	// Get retrieves the value stored under key.
	// A missing key returns (nil, nil), not an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key.
	// Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
