package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/WarekiBot_Go/internal/logger"
	"github.com/osse101/WarekiBot_Go/pkg/wareki"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req ConvertBatchRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Convert batch"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgBodyTooLarge)
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalBoolQueryParam reads a boolean query parameter. A missing
// parameter yields defaultValue; an unparsable one writes a 400 and ok=false.
func GetOptionalBoolQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue bool) (value bool, ok bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidBool, paramName))
		return false, false
	}
	return value, true
}

// parsePrefixStyle maps a validated style string to wareki.PrefixStyle
func parsePrefixStyle(style string) wareki.PrefixStyle {
	if strings.EqualFold(style, StyleDigit) {
		return wareki.DigitPrefix
	}
	return wareki.LetterPrefix
}
