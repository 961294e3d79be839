// ABOUTME: Answer history service backed by the key-value store
// ABOUTME: Appends answered questions and invalidates cached suggestions

package history

import (
	"context"
	"encoding/json"
	"time"

	"quizzer-app-api/core/domain"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
)

// Service records and lists answered quiz questions. The history is
// capped at limit entries, dropping the oldest first.
type Service struct {
	store  interfaces.KeyValueStore
	logger interfaces.Logger
	limit  int
}

// NewService creates a history service. limit must be positive.
func NewService(store interfaces.KeyValueStore, logger interfaces.Logger, limit int) *Service {
	return &Service{store: store, logger: logger, limit: limit}
}

// Record appends one answered question. Because the history changed,
// any cached follow-up suggestions are dropped so the next request
// regenerates them.
func (s *Service) Record(ctx context.Context, entry domain.AnswerHistoryEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	entries, err := s.List(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	if len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}

	encoded, err := json.Marshal(entries)
	if err != nil {
		return cerrors.WrapError(err, "failed to serialize answer history")
	}
	if err := s.store.Set(ctx, interfaces.KeyAnswerHistory, encoded); err != nil {
		return cerrors.WrapError(err, "failed to persist answer history")
	}

	if err := s.store.Delete(ctx, interfaces.KeyFollowupSuggestions); err != nil {
		s.logger.Warn("failed to invalidate cached suggestions", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.logger.Debug("answer recorded", map[string]interface{}{
		"category": entry.QuizCategory,
		"correct":  entry.IsCorrect,
		"entries":  len(entries),
	})
	return nil
}

// List returns the stored history, oldest first.
func (s *Service) List(ctx context.Context) ([]domain.AnswerHistoryEntry, error) {
	raw, err := s.store.Get(ctx, interfaces.KeyAnswerHistory)
	if err != nil {
		return nil, cerrors.WrapError(err, "failed to load answer history")
	}
	if raw == nil {
		return nil, nil
	}
	var entries []domain.AnswerHistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, cerrors.WrapError(err, "corrupt answer history")
	}
	return entries, nil
}
