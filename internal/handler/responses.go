package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/WarekiBot_Go/internal/conversion"
	"github.com/osse101/WarekiBot_Go/pkg/wareki"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConversionErrorResponse is returned when an era code or year is rejected.
type ConversionErrorResponse struct {
	Input     string           `json:"input"`
	ErrorKind wareki.ErrorKind `json:"error_kind"`
	Error     string           `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceError maps conversion errors to an HTTP status and user message.
// Rejected inputs are 422: the request was well formed, the value was not.
func mapServiceError(err error) (int, string) {
	var convErr *wareki.Error
	switch {
	case errors.As(err, &convErr):
		return http.StatusUnprocessableEntity, convErr.Error()
	case errors.Is(err, conversion.ErrEmptyBatch):
		return http.StatusBadRequest, ErrMsgEmptyBatch
	case errors.Is(err, conversion.ErrBatchTooLarge):
		return http.StatusRequestEntityTooLarge, ErrMsgBatchTooLarge
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs and writes a service error.
func respondServiceError(w http.ResponseWriter, r *http.Request, input string, err error) {
	status, msg := mapServiceError(err)

	var convErr *wareki.Error
	if errors.As(err, &convErr) {
		respondJSON(w, status, ConversionErrorResponse{
			Input:     input,
			ErrorKind: convErr.Kind,
			Error:     msg,
		})
		return
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Conversion request failed", "error", err, "path", r.URL.Path)
	}
	respondError(w, status, msg)
}
