// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Maps the error taxonomy to HTTP statuses and writes envelope responses

package handlers

import (
	"encoding/json"
	"net/http"

	"quizzer-app-api/api/dto/responses"
	cerrors "quizzer-app-api/core/errors"
	"quizzer-app-api/core/interfaces"
)

// statusFor maps an errorType tag to an HTTP status.
func statusFor(errorType string) int {
	switch errorType {
	case cerrors.TypeTabExtraction:
		return http.StatusUnprocessableEntity
	case cerrors.TypeModelAcquisition:
		return http.StatusServiceUnavailable
	case cerrors.TypeTranslation:
		return http.StatusServiceUnavailable
	case cerrors.TypeGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes payload with the given status.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError classifies err and writes the failed envelope.
func writeError(w http.ResponseWriter, logger interfaces.Logger, err error) {
	errorType := cerrors.TypeOf(err)
	logger.Error("Request failed", map[string]interface{}{
		"errorType": errorType,
		"error":     err.Error(),
	})
	writeJSON(w, statusFor(errorType), responses.Failure(err.Error(), errorType))
}

// writeBadRequest writes a validation failure. Validation problems are
// not part of the error taxonomy; they fail before any pipeline runs.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, responses.Failure(message, cerrors.TypeUnknown))
}
