package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordConversion(t *testing.T) {
	before := testutil.ToFloat64(ConversionsTotal.WithLabelValues("Heisei", OutcomeSuccess))
	RecordConversion("Heisei", OutcomeSuccess)
	after := testutil.ToFloat64(ConversionsTotal.WithLabelValues("Heisei", OutcomeSuccess))
	assert.Equal(t, before+1, after)

	before = testutil.ToFloat64(ConversionsTotal.WithLabelValues(EraUnknown, "invalid_length"))
	RecordConversion("", "invalid_length")
	after = testutil.ToFloat64(ConversionsTotal.WithLabelValues(EraUnknown, "invalid_length"))
	assert.Equal(t, before+1, after)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/convert/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/convert/{code}", "422")
	before := testutil.ToFloat64(counter)

	for _, code := range []string{"M46", "T16", "S65"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/convert/"+code, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestMiddleware_WithoutRouter(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "200")
	before := testutil.ToFloat64(counter)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
