package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WarekiBot_Go/internal/config"
	"github.com/osse101/WarekiBot_Go/internal/conversion"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            8080,
		LogLevel:        "info",
		LogFormat:       "text",
		Environment:     "test",
		ServiceName:     "wareki-api",
		RateLimit:       1000,
		RateLimitWindow: time.Minute,
		MaxTrackedIPs:   100,
		MaxBatchSize:    100,
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(cfg *config.Config) http.Handler {
	svc := conversion.NewService(conversion.Options{MaxBatchSize: cfg.MaxBatchSize})
	return NewServer(cfg, svc).Handler()
}

func do(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	h := newTestServer(testConfig())

	t.Run("convert", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/convert/431", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var res conversion.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, 2019, res.GregorianYear)
		assert.Equal(t, "Heisei", res.Era)
	})

	t.Run("convert rejects out of range year", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/convert/M46", "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Meiji until 45.")
	})

	t.Run("batch", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/convert", `{"codes":["M45","X01"]}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"succeeded":1`)
		assert.Contains(t, rec.Body.String(), `"failed":1`)
	})

	t.Run("reverse", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/reverse/1989?style=digit", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"401"`)
	})

	t.Run("eras", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/eras", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Reiwa")
	})

	t.Run("health and metrics", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", "", nil).Code)
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/version", "", nil).Code)

		rec := do(h, http.MethodGet, "/metrics", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "wareki_http_requests_total")
	})

	t.Run("security headers and request id", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/healthz", "", nil)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})
}

func TestServer_APIKey(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = "secret"
	h := newTestServer(cfg)

	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodGet, "/api/v1/convert/M45", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/v1/convert/M45", "", map[string]string{HeaderAPIKey: "secret"}).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", "", nil).Code)
}

func TestServer_LenientDefault(t *testing.T) {
	cfg := testConfig()
	cfg.Lenient = true
	h := newTestServer(cfg)

	t.Run("default applies when request is silent", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/v1/convert/h31", "", nil).Code)
	})

	t.Run("request can turn it off", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/convert/h31?lenient=false", "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error_kind":"unknown_era"`)
	})

	t.Run("batch can turn it off", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/convert", `{"codes":["h31"],"lenient":false}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"succeeded":0`)
		assert.Contains(t, rec.Body.String(), `"error_kind":"unknown_era"`)
	})
}

func TestServer_EscapedCode(t *testing.T) {
	h := newTestServer(testConfig())

	rec := do(h, http.MethodGet, "/api/v1/convert/H%2F1", "", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"input":"H/1"`)
	assert.Contains(t, rec.Body.String(), `"error_kind":"invalid_year"`)
}

func TestServer_FailedAuthCountsTowardRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = "secret"
	cfg.RateLimit = 2
	h := newTestServer(cfg)

	wrongKey := map[string]string{HeaderAPIKey: "guess"}
	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodGet, "/api/v1/eras", "", wrongKey).Code)
	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodGet, "/api/v1/eras", "", wrongKey).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodGet, "/api/v1/eras", "", wrongKey).Code)
	assert.Equal(t, http.StatusTooManyRequests,
		do(h, http.MethodGet, "/api/v1/eras", "", map[string]string{HeaderAPIKey: "secret"}).Code)
}

func TestServer_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 2
	h := newTestServer(cfg)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/v1/eras", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/v1/eras", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodGet, "/api/v1/eras", "", nil).Code)
}

func TestServer_BodyLimit(t *testing.T) {
	h := newTestServer(testConfig())

	body := `{"codes":["` + strings.Repeat("M", MaxRequestBodyBytes) + `"]}`
	rec := do(h, http.MethodPost, "/api/v1/convert", body, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
