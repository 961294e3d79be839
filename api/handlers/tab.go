// ABOUTME: Handler for tab content extraction
// ABOUTME: POST /tab/extract runs the full acquisition/readability/translation pipeline

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

// TabExtractor runs the tab content extraction pipeline.
type TabExtractor interface {
	Extract(ctx context.Context, tab domain.TabInfo) (*domain.TabData, error)
}

// TabHandler serves tab extraction requests.
type TabHandler struct {
	extractor TabExtractor
	logger    interfaces.Logger
}

// NewTabHandler creates a tab handler.
func NewTabHandler(extractor TabExtractor, logger interfaces.Logger) *TabHandler {
	return &TabHandler{extractor: extractor, logger: logger}
}

// Extract handles POST /tab/extract.
func (h *TabHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req requests.TabExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	tabData, err := h.extractor.Extract(r.Context(), req.Tab)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.TabExtractResponse{
		Envelope: responses.OK(),
		TabData:  tabData,
	})
}
