package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/salesdash-backend/internal/reports"
	"github.com/angelmondragon/salesdash-backend/pkg/config"
	"github.com/angelmondragon/salesdash-backend/pkg/enums"
	"github.com/angelmondragon/salesdash-backend/pkg/logger"
	"github.com/angelmondragon/salesdash-backend/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

// recordingService remembers which kinds were requested.
type recordingService struct {
	kinds []enums.ReportKind
}

func (s *recordingService) Run(ctx context.Context, kind enums.ReportKind, raw reports.RawParams) (*reports.Result, error) {
	s.kinds = append(s.kinds, kind)
	count := 0
	return &reports.Result{Kind: kind, Data: []any{}, Count: &count}, nil
}

func testRouter(t *testing.T) (http.Handler, *recordingService) {
	t.Helper()
	cfg := &config.Config{
		App:  config.AppConfig{Env: "dev"},
		HTTP: config.HTTPConfig{CORSOrigins: []string{"http://localhost:3000"}},
	}
	svc := &recordingService{}
	registry := metrics.NewRegistry()
	metrics.NewReportMetrics(registry).ObserveCacheLookup(metrics.CacheMiss)
	return NewRouter(cfg, logger.New(logger.Options{ServiceName: "test", Output: io.Discard}), stubPinger{}, nil, svc, registry), svc
}

func TestEveryReportKindIsRouted(t *testing.T) {
	router, svc := testRouter(t)

	for _, kind := range enums.ReportKinds() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/"+kind.String(), nil))
		assert.Equal(t, http.StatusOK, w.Code, kind)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"), kind)
	}
	assert.Equal(t, enums.ReportKinds(), svc.kinds)
}

func TestUnknownRouteIsNotFoundEnvelope(t *testing.T) {
	router, svc := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/top-secret", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Empty(t, svc.kinds)
}

func TestHealthAndMetricsRoutes(t *testing.T) {
	router, _ := testRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "summary_cache_lookups_total"))
}
