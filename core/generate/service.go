// ABOUTME: Generation service for all language-model-backed tasks
// ABOUTME: Quiz, suggestions, crossword, flashcard, image scoring and summary generation

package generate

import (
	"context"
	"errors"

	"quizzer-app-api/core/domain"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
	"quizzer-app-api/core/registry"
)

// LayoutFunc assigns grid coordinates and orientation to a word/hint
// list. Treated as a pure external collaborator.
type LayoutFunc func(words []domain.WordClue) domain.CrosswordLayout

// errWrongInstance is returned when a capability produced a handle of
// an unexpected instance type.
var errWrongInstance = errors.New("capability returned an instance of the wrong type")

// Service runs generation tasks against models obtained from the
// registry. Tasks sharing the language model never prompt it directly:
// each wraps its work in an isolated session clone.
type Service struct {
	deps     interfaces.Dependencies
	registry *registry.Registry
	caps     interfaces.Capabilities
	store    interfaces.KeyValueStore
	layout   LayoutFunc
}

// NewService creates a generation service.
func NewService(deps interfaces.Dependencies, reg *registry.Registry, caps interfaces.Capabilities, store interfaces.KeyValueStore, layout LayoutFunc) *Service {
	return &Service{
		deps:     deps,
		registry: reg,
		caps:     caps,
		store:    store,
		layout:   layout,
	}
}

// languageModel acquires the shared language model under the given
// logical name.
func (s *Service) languageModel(ctx context.Context, name string) (interfaces.LanguageModel, error) {
	handle, err := s.registry.Acquire(ctx, name, s.caps.LanguageModel(), nil)
	if err != nil {
		return nil, err
	}
	model, ok := handle.(interfaces.LanguageModel)
	if !ok {
		return nil, &cerrors.ModelAcquisitionError{Name: name, Err: errWrongInstance}
	}
	return model, nil
}
