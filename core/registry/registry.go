// ABOUTME: Model registry service for acquiring and memoizing AI model instances
// ABOUTME: Collapses concurrent acquisitions per logical name into one create/download

package registry

import (
	"context"
	"sync"

	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
)

// Default logical names for models that need no per-configuration
// distinctness. Translators use TranslatorName instead.
const (
	NameSummarizer          = "summarizer"
	NameLanguageDetector    = "language-detector"
	NameQuizGenerator       = "quiz-generator"
	NameSuggestionGenerator = "suggestion-generator"
	NameCrosswordGenerator  = "crossword-generator"
	NameFlashcardGenerator  = "flashcard-generator"
	NameImageScorer         = "image-scorer"
)

// TranslatorName builds the logical name for a translator configured
// for one language pair, e.g. "translator-de-en".
func TranslatorName(source, target string) string {
	return "translator-" + source + "-" + target
}

// entry is one cache slot. It is installed before the asynchronous
// create completes so racing acquisitions await the same in-flight
// result instead of starting a second download.
type entry struct {
	done   chan struct{}
	handle interfaces.ModelHandle
	err    error
}

// Registry is the single source of truth for obtaining a usable AI
// model instance by logical name. Handles are memoized for the lifetime
// of the process; a restart is the only eviction path. The registry is
// constructor-injected into every component that needs model access.
type Registry struct {
	logger interfaces.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty registry.
func New(logger interfaces.Logger) *Registry {
	return &Registry{
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// Acquire returns the model instance cached under name, creating it on
// first request. Availability is checked once per creation; a status
// outside {downloadable, downloading, available} fails with a
// ModelAcquisitionError. monitor observes download progress and may be
// nil. Failed acquisitions are not cached, so a later call retries.
func (r *Registry) Acquire(ctx context.Context, name string, capability interfaces.ModelCapability, monitor interfaces.DownloadMonitor) (interfaces.ModelHandle, error) {
	r.mu.Lock()
	if e, ok := r.entries[name]; ok {
		r.mu.Unlock()
		return r.await(ctx, e)
	}

	e := &entry{done: make(chan struct{})}
	r.entries[name] = e
	r.mu.Unlock()

	handle, err := r.create(ctx, name, capability, monitor)
	if err != nil {
		// Do not cache failures: a download may succeed later.
		r.mu.Lock()
		delete(r.entries, name)
		r.mu.Unlock()
		e.err = err
		close(e.done)
		return nil, err
	}

	e.handle = handle
	close(e.done)
	return handle, nil
}

// await blocks until an in-flight acquisition settles or ctx expires.
func (r *Registry) await(ctx context.Context, e *entry) (interfaces.ModelHandle, error) {
	select {
	case <-e.done:
		return e.handle, e.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// create runs one availability/create/readiness sequence.
func (r *Registry) create(ctx context.Context, name string, capability interfaces.ModelCapability, monitor interfaces.DownloadMonitor) (interfaces.ModelHandle, error) {
	status, err := capability.Availability(ctx)
	if err != nil {
		return nil, &cerrors.ModelAcquisitionError{Name: name, Err: err}
	}
	if !status.Usable() {
		r.logger.Error("Model not available", map[string]interface{}{
			"model":  name,
			"status": string(status),
		})
		return nil, &cerrors.ModelAcquisitionError{Name: name, Status: string(status)}
	}

	progress := func(loaded float64) {
		r.logger.Info("Model download progress", map[string]interface{}{
			"model":  name,
			"loaded": loaded,
		})
		if monitor != nil {
			monitor(loaded)
		}
	}

	handle, err := capability.Create(ctx, progress)
	if err != nil {
		return nil, &cerrors.ModelAcquisitionError{Name: name, Err: err}
	}

	// Creation completing does not mean the model accepts prompts yet.
	if err := handle.AwaitReady(ctx); err != nil {
		return nil, &cerrors.ModelAcquisitionError{Name: name, Err: err}
	}

	r.logger.Debug("Model acquired", map[string]interface{}{"model": name})
	return handle, nil
}
