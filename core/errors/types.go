// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides the fixed error taxonomy propagated end-to-end to the API envelope

package errors

import (
	"errors"
	"fmt"
)

// Error type tags carried in the response envelope so the consuming
// surface can render specific guidance instead of a generic banner.
const (
	TypeTabExtraction    = "tab_extraction"
	TypeModelAcquisition = "model_acquisition"
	TypeGeneration       = "generation"
	TypeTranslation      = "translation"
	TypeUnknown          = "unknown"
)

// Reasons for a TabExtractionError. "no tab" may be retried; the others
// require the user to navigate elsewhere.
const (
	ReasonNoTab         = "no_tab"
	ReasonNotReaderable = "not_readerable"
	ReasonNoContent     = "no_content"
)

// TabExtractionError represents a terminal failure of the tab pipeline:
// no valid active tab, an internal-scheme page, a non-extractable
// content type, or a failed readability check.
type TabExtractionError struct {
	Reason  string
	Message string
}

// Error implements the error interface
func (e *TabExtractionError) Error() string {
	return e.Message
}

// ModelAcquisitionError represents an AI capability that is unavailable
// or whose download/create sequence failed. Retryable: a download may
// complete later.
type ModelAcquisitionError struct {
	Name   string
	Status string
	Err    error
}

// Error implements the error interface
func (e *ModelAcquisitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model %s could not be acquired: %s", e.Name, e.Err)
	}
	return fmt.Sprintf("model %s not available: %s", e.Name, e.Status)
}

// Unwrap exposes the underlying cause
func (e *ModelAcquisitionError) Unwrap() error {
	return e.Err
}

// GenerationError represents a model response that failed to parse
// against the expected structure. A quality failure of one attempt, not
// evidence of unavailability.
type GenerationError struct {
	Task    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s generation failed: %s: %s", e.Task, e.Message, e.Err)
	}
	return fmt.Sprintf("%s generation failed: %s", e.Task, e.Message)
}

// Unwrap exposes the underlying cause
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// TranslationError represents a translation step that failed after
// language detection indicated translation was required. The pipeline
// never returns a partially translated TabData.
type TranslationError struct {
	Source string
	Target string
	Field  string
	Err    error
}

// Error implements the error interface
func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation of %s from %s to %s failed: %s", e.Field, e.Source, e.Target, e.Err)
}

// Unwrap exposes the underlying cause
func (e *TranslationError) Unwrap() error {
	return e.Err
}

// IsTabExtraction checks if an error is a TabExtractionError
func IsTabExtraction(err error) bool {
	var target *TabExtractionError
	return errors.As(err, &target)
}

// IsModelAcquisition checks if an error is a ModelAcquisitionError
func IsModelAcquisition(err error) bool {
	var target *ModelAcquisitionError
	return errors.As(err, &target)
}

// IsGeneration checks if an error is a GenerationError
func IsGeneration(err error) bool {
	var target *GenerationError
	return errors.As(err, &target)
}

// IsTranslation checks if an error is a TranslationError
func IsTranslation(err error) bool {
	var target *TranslationError
	return errors.As(err, &target)
}

// TypeOf classifies an error into the fixed errorType taxonomy. Callers
// branch on this tag, never on message substrings.
func TypeOf(err error) string {
	switch {
	case err == nil:
		return ""
	case IsTabExtraction(err):
		return TypeTabExtraction
	case IsModelAcquisition(err):
		return TypeModelAcquisition
	case IsTranslation(err):
		return TypeTranslation
	case IsGeneration(err):
		return TypeGeneration
	default:
		return TypeUnknown
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
