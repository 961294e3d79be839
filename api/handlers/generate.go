// ABOUTME: Handlers for the generation tasks
// ABOUTME: POST /generate/{summary,quiz,crossword,suggestions,flashcard,imagescore}

package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"quizzer-app-api/api/dto/requests"
	"quizzer-app-api/api/dto/responses"
	"quizzer-app-api/core/domain"
	"quizzer-app-api/core/interfaces"
)

// Generator runs the model-backed generation tasks.
type Generator interface {
	Summary(ctx context.Context, article *domain.Article) (string, error)
	Quiz(ctx context.Context, article *domain.Article) (*domain.Quiz, error)
	Crossword(ctx context.Context, article *domain.Article) (*domain.CrosswordLayout, error)
	Suggestions(ctx context.Context) (*domain.SuggestionSet, error)
	Flashcard(ctx context.Context, text string) (*domain.Flashcard, error)
	Flashcards(ctx context.Context) ([]domain.Flashcard, error)
	ScoreImage(ctx context.Context, image []byte, description string) (*domain.ImageScore, error)
}

// GenerateHandler serves the generation endpoints.
type GenerateHandler struct {
	generator Generator
	logger    interfaces.Logger
}

// NewGenerateHandler creates a generation handler.
func NewGenerateHandler(generator Generator, logger interfaces.Logger) *GenerateHandler {
	return &GenerateHandler{generator: generator, logger: logger}
}

func (h *GenerateHandler) decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (*requests.GenerateRequest, bool) {
	var req requests.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return nil, false
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return nil, false
	}
	return &req, true
}

// Summary handles POST /generate/summary.
func (h *GenerateHandler) Summary(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.generator.Summary(r.Context(), req.TabData.Article)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.SummaryResponse{
		Envelope: responses.OK(),
		Summary:  summary,
	})
}

// Quiz handles POST /generate/quiz.
func (h *GenerateHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	quiz, err := h.generator.Quiz(r.Context(), req.TabData.Article)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.QuizResponse{
		Envelope: responses.OK(),
		Quiz:     quiz,
	})
}

// Crossword handles POST /generate/crossword.
func (h *GenerateHandler) Crossword(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	layout, err := h.generator.Crossword(r.Context(), req.TabData.Article)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.CrosswordResponse{
		Envelope:        responses.OK(),
		CrosswordLayout: layout,
	})
}

// Suggestions handles POST /generate/suggestions.
func (h *GenerateHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	set, err := h.generator.Suggestions(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.SuggestionsResponse{
		Envelope:    responses.OK(),
		Suggestions: set.Categories,
	})
}

// Flashcard handles POST /generate/flashcard.
func (h *GenerateHandler) Flashcard(w http.ResponseWriter, r *http.Request) {
	var req requests.FlashcardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	card, err := h.generator.Flashcard(r.Context(), req.Text)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.FlashcardResponse{
		Envelope:  responses.OK(),
		Flashcard: card,
	})
}

// ListFlashcards handles GET /flashcards.
func (h *GenerateHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.generator.Flashcards(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if cards == nil {
		cards = []domain.Flashcard{}
	}

	writeJSON(w, http.StatusOK, responses.FlashcardListResponse{
		Envelope:   responses.OK(),
		Flashcards: cards,
	})
}

// ImageScore handles POST /generate/imagescore.
func (h *GenerateHandler) ImageScore(w http.ResponseWriter, r *http.Request) {
	var req requests.ImageScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		writeBadRequest(w, "image is not valid base64")
		return
	}

	score, err := h.generator.ScoreImage(r.Context(), image, req.Description)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.ImageScoreResponse{
		Envelope:  responses.OK(),
		Score:     score.Score,
		Reasoning: score.Reasoning,
	})
}
