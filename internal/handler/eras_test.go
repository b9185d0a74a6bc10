package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WarekiBot_Go/internal/conversion"
)

func TestHandleGetEras(t *testing.T) {
	router := newTestRouter(conversion.NewService(conversion.Options{}), false)

	w := serve(t, router, http.MethodGet, "/api/v1/eras", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age")

	var eras []EraResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &eras))
	require.Len(t, eras, 5)

	assert.Equal(t, EraResponse{Name: "Meiji", Letter: "M", Digit: "1", Offset: 1867, FirstYear: 1868, MaxYear: 45, LastYear: 1912}, eras[0])
	assert.Equal(t, EraResponse{Name: "Reiwa", Letter: "R", Digit: "5", Offset: 2018, FirstYear: 2019}, eras[4])
	assert.NotContains(t, w.Body.String(), `"max_year":0`)
}
