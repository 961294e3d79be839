// ABOUTME: Handlers for the answer history
// ABOUTME: POST /history/answers records, GET /history/answers lists

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"quizzer-app-api/api/dto/requests"
	"quizzer-app-api/api/dto/responses"
	"quizzer-app-api/core/domain"
	"quizzer-app-api/core/interfaces"
)

// AnswerHistory records and lists answered quiz questions.
type AnswerHistory interface {
	Record(ctx context.Context, entry domain.AnswerHistoryEntry) error
	List(ctx context.Context) ([]domain.AnswerHistoryEntry, error)
}

// HistoryHandler serves the answer history endpoints.
type HistoryHandler struct {
	history AnswerHistory
	logger  interfaces.Logger
}

// NewHistoryHandler creates a history handler.
func NewHistoryHandler(svc AnswerHistory, logger interfaces.Logger) *HistoryHandler {
	return &HistoryHandler{history: svc, logger: logger}
}

// Record handles POST /history/answers.
func (h *HistoryHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req requests.RecordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.history.Record(r.Context(), req.Entry); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.OK())
}

// List handles GET /history/answers.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.history.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if entries == nil {
		entries = []domain.AnswerHistoryEntry{}
	}

	writeJSON(w, http.StatusOK, responses.HistoryResponse{
		Envelope: responses.OK(),
		History:  entries,
	})
}
