package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "apnadost/backend/internal/errors"
)

// This file contains shared DTOs for API responses and helpers for sending
// consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error payloads.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// LivenessResponse is the GET / payload.
type LivenessResponse struct {
	Message string `json:"message"`
}

// respondWithError maps sentinel errors from the business layer onto HTTP
// status codes and a short client-facing detail string. The full error chain
// (including any captured upstream response body) is logged but never sent to
// the client.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var detail string

	switch {
	case errors.Is(err, apperrors.ErrAuth):
		statusCode = http.StatusUnauthorized
		detail = err.Error()
	case errors.Is(err, apperrors.ErrValidation):
		statusCode = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, apperrors.ErrConfiguration):
		statusCode = http.StatusInternalServerError
		detail = "Service is not configured correctly"
	case errors.Is(err, apperrors.ErrGeneration):
		statusCode = http.StatusInternalServerError
		detail = "Could not generate a response"
	default:
		statusCode = http.StatusInternalServerError
		detail = "An unexpected internal server error occurred"
	}

	slog.Warn("Responding with error", "status_code", statusCode, "detail", detail, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Detail: detail})
}

// respondWithJSON marshals a payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
