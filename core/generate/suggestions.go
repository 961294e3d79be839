// ABOUTME: Follow-up study suggestions derived from the answer history
// ABOUTME: Caches the generated set until the history changes again

package generate

import (
	"context"
	"encoding/json"

	"quizzer-app-api/core/domain"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
	"quizzer-app-api/core/registry"
)

const suggestionsSeed = "You are a study coach. You will receive the user's past quiz answers " +
	"one at a time as JSON. When asked, group their performance into categories and " +
	"suggest what to study next, with a confidence score per category. " +
	"Only reference categories and topics that appear in the supplied answers, and " +
	"do not repeat questions or categories. Always address the user in second person (\"you\"). " +
	"Until asked to generate suggestions, only wait for further input."

// suggestionRecord is the per-answer payload serialized into the
// session. Only these four fields are shared with the model.
type suggestionRecord struct {
	CorrectAnswer  string `json:"correctAnswer"`
	Question       string `json:"question"`
	SelectedAnswer string `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// Suggestions generates category suggestions from the stored answer
// history. A cached set is returned as-is; recording a new answer
// invalidates it.
func (s *Service) Suggestions(ctx context.Context) (*domain.SuggestionSet, error) {
	cached, err := s.store.Get(ctx, interfaces.KeyFollowupSuggestions)
	if err != nil {
		s.deps.Logger.Warn("failed to read cached suggestions", map[string]interface{}{
			"error": err.Error(),
		})
	} else if cached != nil {
		var set domain.SuggestionSet
		if err := json.Unmarshal(cached, &set); err == nil {
			s.deps.Logger.Debug("returning cached suggestions", nil)
			return &set, nil
		}
		s.deps.Logger.Warn("discarding corrupt cached suggestions", nil)
	}

	history, err := s.answerHistory(ctx)
	if err != nil {
		return nil, err
	}

	model, err := s.languageModel(ctx, registry.NameSuggestionGenerator)
	if err != nil {
		return nil, err
	}

	var set domain.SuggestionSet
	err = withSession(ctx, model, "suggestions", func(session interfaces.LanguageModelSession) error {
		if err := session.Append(ctx, interfaces.Message{Role: "system", Content: suggestionsSeed}); err != nil {
			return &cerrors.GenerationError{Task: "suggestions", Message: "failed to seed session", Err: err}
		}
		for _, entry := range history {
			// Entries without a quiz category predate tagging and
			// carry no signal for grouping.
			if entry.QuizCategory == "" {
				continue
			}
			payload, err := json.Marshal(suggestionRecord{
				CorrectAnswer:  entry.CorrectAnswer,
				Question:       entry.Question,
				SelectedAnswer: entry.SelectedAnswer,
				IsCorrect:      entry.IsCorrect,
			})
			if err != nil {
				return &cerrors.GenerationError{Task: "suggestions", Message: "failed to serialize answer", Err: err}
			}
			if err := session.Append(ctx, interfaces.Message{Role: "user", Content: string(payload)}); err != nil {
				return &cerrors.GenerationError{Task: "suggestions", Message: "failed to append answer", Err: err}
			}
		}
		return promptJSON(ctx, session, "suggestions", "Generate suggestions.", suggestionsSchema, &set)
	})
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(&set); err == nil {
		if err := s.store.Set(ctx, interfaces.KeyFollowupSuggestions, encoded); err != nil {
			s.deps.Logger.Warn("failed to cache suggestions", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	s.deps.Logger.Info("suggestions generated", map[string]interface{}{
		"categories": len(set.Categories),
	})
	return &set, nil
}

func (s *Service) answerHistory(ctx context.Context) ([]domain.AnswerHistoryEntry, error) {
	raw, err := s.store.Get(ctx, interfaces.KeyAnswerHistory)
	if err != nil {
		return nil, &cerrors.GenerationError{Task: "suggestions", Message: "failed to load answer history", Err: err}
	}
	if raw == nil {
		return nil, nil
	}
	var history []domain.AnswerHistoryEntry
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, &cerrors.GenerationError{Task: "suggestions", Message: "corrupt answer history", Err: err}
	}
	return history, nil
}
