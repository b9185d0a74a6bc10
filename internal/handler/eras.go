package handler

import (
	"net/http"
	"strconv"
)

// EraResponse describes one supported era.
type EraResponse struct {
	Name      string `json:"name"`
	Letter    string `json:"letter"`
	Digit     string `json:"digit"`
	Offset    int    `json:"offset"`
	FirstYear int    `json:"first_year"`
	// MaxYear and LastYear are omitted for the current, open-ended era.
	MaxYear  int `json:"max_year,omitempty"`
	LastYear int `json:"last_year,omitempty"`
}

// HandleGetEras lists the eras the converter understands.
// @Summary List supported eras
// @Tags convert
// @Produce json
// @Success 200 {array} EraResponse
// @Router /api/v1/eras [get]
// @Security ApiKeyAuth
func (h *ConvertHandler) HandleGetEras(w http.ResponseWriter, r *http.Request) {
	eras := h.service.Eras(r.Context())

	out := make([]EraResponse, 0, len(eras))
	for _, e := range eras {
		resp := EraResponse{
			Name:      e.Name,
			Letter:    string(e.Letter),
			Digit:     string(e.Digit),
			Offset:    e.Offset,
			FirstYear: e.FirstYear(),
			MaxYear:   e.MaxYear,
		}
		if last, ok := e.LastYear(); ok {
			resp.LastYear = last
		}
		out = append(out, resp)
	}

	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(24*60*60))
	respondJSON(w, http.StatusOK, out)
}
