// ABOUTME: Request payloads for the API operations
// ABOUTME: Validation mirrors what the core services require

package requests

import (
	"errors"

	"quizzer-app-api/core/domain"
)

// TabExtractRequest asks for content extraction of one tab.
type TabExtractRequest struct {
	Tab domain.TabInfo `json:"tab"`
}

// Validate checks the request for obvious problems.
func (r *TabExtractRequest) Validate() error {
	if r.Tab.URL == "" {
		return errors.New("tab.url is required")
	}
	return nil
}

// GenerateRequest runs a generation task over previously extracted tab
// data.
type GenerateRequest struct {
	TabData domain.TabData `json:"tabData"`
}

// Validate checks that extracted article text is present.
func (r *GenerateRequest) Validate() error {
	if r.TabData.Article == nil || r.TabData.Article.TextContent == "" {
		return errors.New("tabData.article with text content is required")
	}
	return nil
}

// FlashcardRequest turns a selected text passage into a flashcard.
type FlashcardRequest struct {
	Text string `json:"text"`
}

// Validate checks that a passage was supplied.
func (r *FlashcardRequest) Validate() error {
	if r.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

// ImageScoreRequest grades an image against a description. Image is
// base64-encoded.
type ImageScoreRequest struct {
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Validate checks that both inputs are present.
func (r *ImageScoreRequest) Validate() error {
	if r.Image == "" {
		return errors.New("image is required")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	return nil
}

// RecordAnswerRequest appends one answered question to the history.
type RecordAnswerRequest struct {
	Entry domain.AnswerHistoryEntry `json:"entry"`
}

// Validate checks the minimal answer fields.
func (r *RecordAnswerRequest) Validate() error {
	if r.Entry.Question == "" {
		return errors.New("entry.question is required")
	}
	if r.Entry.SelectedAnswer == "" {
		return errors.New("entry.selectedAnswer is required")
	}
	return nil
}
