// ABOUTME: Model capability and instance contracts for the AI model layer
// ABOUTME: Closed set of capabilities the registry acquires and the generators consume

package interfaces

import (
	"context"
	"encoding/json"
)

// AvailabilityStatus is the download state reported by a model
// capability before creation.
type AvailabilityStatus string

// Availability states. Anything the backend reports outside the three
// usable states is treated as a hard unavailability.
const (
	AvailabilityUnavailable  AvailabilityStatus = "unavailable"
	AvailabilityDownloadable AvailabilityStatus = "downloadable"
	AvailabilityDownloading  AvailabilityStatus = "downloading"
	AvailabilityAvailable    AvailabilityStatus = "available"
)

// Usable reports whether a status permits creating the model.
func (s AvailabilityStatus) Usable() bool {
	switch s {
	case AvailabilityDownloadable, AvailabilityDownloading, AvailabilityAvailable:
		return true
	}
	return false
}

// DownloadMonitor observes download progress during model creation.
// Loaded is a fraction between 0 and 1. Advisory only: surfaced for UX,
// never part of the functional contract.
type DownloadMonitor func(loaded float64)

// ModelCapability is one member of the closed capability set
// (language model, summarizer, translator, detector). The registry is
// generic over this interface rather than switching on identity.
type ModelCapability interface {
	// Availability reports the current download state of the model.
	Availability(ctx context.Context) (AvailabilityStatus, error)

	// Create instantiates the model, triggering a download if needed.
	// monitor may be nil. The returned handle may not yet be ready to
	// accept work; callers await AwaitReady before use.
	Create(ctx context.Context, monitor DownloadMonitor) (ModelHandle, error)
}

// ModelHandle is an opaque resident model instance cached by the
// registry. Concrete handles additionally implement one of the
// instance interfaces below.
type ModelHandle interface {
	// AwaitReady blocks until the model's own readiness signal, which
	// can lag behind creation.
	AwaitReady(ctx context.Context) error
}

// SummarizerOptions configures a summarizer capability.
type SummarizerOptions struct {
	Type   string // "tldr", "key-points", "teaser", "headline"
	Length string // "short", "medium", "long"
	Format string // "plain-text", "markdown"
}

// Summarizer produces a single summary for a text.
type Summarizer interface {
	ModelHandle
	Summarize(ctx context.Context, text string) (string, error)
}

// Translator translates text for one fixed language pair.
type Translator interface {
	ModelHandle
	Translate(ctx context.Context, text string) (string, error)
}

// LanguageCandidate is one detector result. Candidates arrive
// confidence-ranked or unranked; selection is the caller's concern.
type LanguageCandidate struct {
	Language   string
	Confidence float64
}

// LanguageDetector determines candidate languages for a text.
type LanguageDetector interface {
	ModelHandle
	Detect(ctx context.Context, text string) ([]LanguageCandidate, error)
}

// Message is one role-tagged context entry appended to a session.
// Image carries an optional multimodal payload.
type Message struct {
	Role    string // "system" or "user"
	Content string
	Image   []byte
}

// LanguageModel is the shared conversational model. Once sessions are
// in play it is only ever used as a cloning factory, never prompted
// directly.
type LanguageModel interface {
	ModelHandle
	// Clone creates an isolated session owning its own conversation
	// state. Cloning never affects the shared handle or other sessions.
	Clone(ctx context.Context) (LanguageModelSession, error)
}

// LanguageModelSession is an ephemeral, exclusively-owned conversation.
// Created immediately before a task's first prompt and destroyed on
// every exit path after its last response.
type LanguageModelSession interface {
	// Append adds a context message without prompting.
	Append(ctx context.Context, msg Message) error

	// Prompt issues a terminal prompt. constraint is a JSON-Schema-shaped
	// structure the model output must conform to; nil means free text.
	Prompt(ctx context.Context, text string, constraint json.RawMessage) (string, error)

	// Destroy releases the session. Safe to call exactly once.
	Destroy()
}

// Capabilities bundles the capability constructors available to the
// core, keyed by the configuration each model category recognizes.
type Capabilities interface {
	LanguageModel() ModelCapability
	Summarizer(opts SummarizerOptions) ModelCapability
	Translator(sourceLanguage, targetLanguage string) ModelCapability
	Detector() ModelCapability
}
