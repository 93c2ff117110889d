package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/salesdash-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "dev"}}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHealthLive(t *testing.T) {
	w := httptest.NewRecorder()
	HealthLive(testConfig())(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dev", w.Header().Get("X-Salesdash-Env"))
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
}

func TestHealthReadyWithoutRedis(t *testing.T) {
	w := httptest.NewRecorder()
	HealthReady(testConfig(), nil, stubPinger{}, nil)(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "ok", data["database"])
	assert.Equal(t, "disabled", data["redis"])
	assert.Equal(t, "ready", data["status"])
}

func TestHealthReadyReportsFailingDependency(t *testing.T) {
	w := httptest.NewRecorder()
	HealthReady(testConfig(), nil, stubPinger{}, stubPinger{err: errors.New("connection refused")})(
		w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_READY", body["code"])
	assert.Contains(t, body["error"], "redis: connection refused")
	data := body["data"].(map[string]any)
	assert.Equal(t, "ok", data["database"])
	assert.Equal(t, "unavailable", data["redis"])
}
