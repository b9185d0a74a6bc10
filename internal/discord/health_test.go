package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatus struct {
	connected, reachable bool
}

func (f fakeStatus) Connected() bool                     { return f.connected }
func (f fakeStatus) APIReachable(_ context.Context) bool { return f.reachable }

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name       string
		status     fakeStatus
		wantCode   int
		wantStatus string
	}{
		{"healthy", fakeStatus{true, true}, http.StatusOK, StatusHealthy},
		{"gateway down", fakeStatus{false, true}, http.StatusServiceUnavailable, StatusDegraded},
		{"api down", fakeStatus{true, false}, http.StatusServiceUnavailable, StatusDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newHTTPServer("0", tt.status)
			rec := httptest.NewRecorder()

			srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var health HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
			assert.Equal(t, tt.wantStatus, health.Status)
			assert.Equal(t, tt.status.connected, health.Connected)
			assert.Equal(t, tt.status.reachable, health.APIReachable)
		})
	}
}

func TestHTTPServer_Metrics(t *testing.T) {
	srv := newHTTPServer("0", fakeStatus{true, true})
	rec := httptest.NewRecorder()

	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBotStatus_NoClient(t *testing.T) {
	status := botStatus{bot: &Bot{}}
	assert.False(t, status.Connected())
	assert.False(t, status.APIReachable(context.Background()))
}
