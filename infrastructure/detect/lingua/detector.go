// ABOUTME: Language detector capability backed by the lingua library
// ABOUTME: Runs fully in-process, no model download involved

package lingua

import (
	"context"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"

	"quizzer-app-api/core/interfaces"
)

// Capability exposes lingua as a detector model capability. Building
// the lingua detector loads its language profiles, so it is deferred to
// the first Create and shared by all handles afterwards.
type Capability struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// NewCapability creates a lingua detector capability.
func NewCapability() *Capability {
	return &Capability{}
}

// Availability always reports available: the language profiles ship
// with the binary.
func (c *Capability) Availability(ctx context.Context) (interfaces.AvailabilityStatus, error) {
	return interfaces.AvailabilityAvailable, nil
}

// Create builds the shared lingua detector and returns a handle to it.
func (c *Capability) Create(ctx context.Context, monitor interfaces.DownloadMonitor) (interfaces.ModelHandle, error) {
	c.once.Do(func() {
		if monitor != nil {
			monitor(0)
		}
		c.detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
		if monitor != nil {
			monitor(1)
		}
	})
	return &handle{detector: c.detector}, nil
}

type handle struct {
	detector lingua.LanguageDetector
}

// AwaitReady is immediate: the detector is fully built by Create.
func (h *handle) AwaitReady(ctx context.Context) error {
	return nil
}

// Detect returns confidence-ranked language candidates for text,
// identified by lowercase ISO 639-1 codes.
func (h *handle) Detect(ctx context.Context, text string) ([]interfaces.LanguageCandidate, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	values := h.detector.ComputeLanguageConfidenceValues(text)
	candidates := make([]interfaces.LanguageCandidate, 0, len(values))
	for _, v := range values {
		candidates = append(candidates, interfaces.LanguageCandidate{
			Language:   strings.ToLower(v.Language().IsoCode639_1().String()),
			Confidence: v.Value(),
		})
	}
	return candidates, nil
}
