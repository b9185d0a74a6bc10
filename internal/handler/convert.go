package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/WarekiBot_Go/internal/conversion"
	"github.com/osse101/WarekiBot_Go/internal/logger"
)

// ConvertBatchRequest is the body of POST /api/v1/convert. The batch size
// limit and per-code checks belong to the service; a bad code is reported in
// its own result.
type ConvertBatchRequest struct {
	Codes   []string `json:"codes" validate:"required,min=1"`
	Lenient bool     `json:"lenient"`
}

// ConvertBatchResponse wraps per-code results in input order.
type ConvertBatchResponse struct {
	Results   []conversion.Result `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// ConvertHandler serves the conversion endpoints.
type ConvertHandler struct {
	service        conversion.Service
	defaultLenient bool
}

// NewConvertHandler creates a ConvertHandler. defaultLenient applies when a
// request does not set the lenient flag itself.
func NewConvertHandler(service conversion.Service, defaultLenient bool) *ConvertHandler {
	return &ConvertHandler{service: service, defaultLenient: defaultLenient}
}

// HandleConvert converts a single era code.
// @Summary Convert an era code
// @Description Converts a three-character era code (M45, 431, ...) into a Gregorian year
// @Tags convert
// @Produce json
// @Param code path string true "Era code"
// @Param lenient query bool false "Fold full-width characters and case before converting"
// @Success 200 {object} conversion.Result
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ConversionErrorResponse
// @Router /api/v1/convert/{code} [get]
// @Security ApiKeyAuth
func (h *ConvertHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	code, err := codeParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidCode)
		return
	}

	lenient, ok := GetOptionalBoolQueryParam(r, w, QueryLenient, h.defaultLenient)
	if !ok {
		return
	}

	res, err := h.service.Convert(r.Context(), code, lenient)
	if err != nil {
		respondServiceError(w, r, code, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// HandleConvertBatch converts many codes in one request.
// @Summary Convert era codes in bulk
// @Description Converts every code and reports each outcome in input order; rejected codes do not fail the request
// @Tags convert
// @Accept json
// @Produce json
// @Param request body ConvertBatchRequest true "Codes to convert"
// @Success 200 {object} ConvertBatchResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /api/v1/convert [post]
// @Security ApiKeyAuth
func (h *ConvertHandler) HandleConvertBatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	req := ConvertBatchRequest{Lenient: h.defaultLenient}
	if err := DecodeAndValidateRequest(r, w, &req, "Convert batch"); err != nil {
		return
	}

	results, err := h.service.ConvertBatch(r.Context(), req.Codes, req.Lenient)
	if err != nil {
		respondServiceError(w, r, "", err)
		return
	}

	resp := ConvertBatchResponse{Results: results}
	for _, res := range results {
		if res.OK {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}

	log.Debug("Batch converted", "count", len(results), "failed", resp.Failed)
	respondJSON(w, http.StatusOK, resp)
}

// codeParam returns the decoded {code} segment. chi routes on RawPath when
// the path holds escaped reserved characters ("H%2F1"), and then the param
// is still escaped.
func codeParam(r *http.Request) (string, error) {
	code := chi.URLParam(r, "code")
	if r.URL.RawPath == "" {
		return code, nil
	}
	return url.PathUnescape(code)
}
