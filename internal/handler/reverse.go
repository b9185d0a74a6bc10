package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ReverseQuery holds the validated inputs of GET /api/v1/reverse/{year}.
// Any integer year is accepted here; years without an era code are a 422
// from the service.
type ReverseQuery struct {
	Year  int
	Style string `validate:"prefixstyle"`
}

// HandleReverse renders a Gregorian year as an era code.
// @Summary Gregorian year to era code
// @Description Years shared by two eras resolve to the newer era (1989 is H01, not S64)
// @Tags convert
// @Produce json
// @Param year path int true "Gregorian year"
// @Param style query string false "letter (default) or digit"
// @Success 200 {object} conversion.EraCode
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} ConversionErrorResponse
// @Router /api/v1/reverse/{year} [get]
// @Security ApiKeyAuth
func (h *ConvertHandler) HandleReverse(w http.ResponseWriter, r *http.Request) {
	rawYear := chi.URLParam(r, "year")
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidYear)
		return
	}

	q := ReverseQuery{Year: year, Style: r.URL.Query().Get(QueryStyle)}
	if err := GetValidator().ValidateStruct(q); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return
	}

	code, err := h.service.ToEraCode(r.Context(), q.Year, parsePrefixStyle(q.Style))
	if err != nil {
		respondServiceError(w, r, rawYear, err)
		return
	}

	respondJSON(w, http.StatusOK, code)
}
