package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup outcomes recorded by ObserveCacheLookup.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheStale = "stale"
	CacheError = "error"
)

// ReportMetrics records query latency, failures and cache effectiveness for
// the reporting endpoints.
type ReportMetrics struct {
	queryDuration *prometheus.HistogramVec
	queryFailures *prometheus.CounterVec
	rowsReturned  *prometheus.HistogramVec
	cacheLookups  *prometheus.CounterVec
}

// NewReportMetrics registers the report metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	if reg == nil {
		return &ReportMetrics{}
	}
	queryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_query_duration_seconds",
		Help:    "Duration of report store queries in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})
	queryFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_query_failures_total",
		Help: "Report queries that failed, by error code.",
	}, []string{"report", "code"})
	rowsReturned := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_rows_returned",
		Help:    "Rows returned per report query.",
		Buckets: []float64{0, 1, 10, 50, 100, 250, 500},
	}, []string{"report"})
	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "summary_cache_lookups_total",
		Help: "Sales summary cache lookups by outcome.",
	}, []string{"result"})
	reg.MustRegister(queryDuration, queryFailures, rowsReturned, cacheLookups)
	return &ReportMetrics{
		queryDuration: queryDuration,
		queryFailures: queryFailures,
		rowsReturned:  rowsReturned,
		cacheLookups:  cacheLookups,
	}
}

// ObserveQuery records the duration and row count of a successful query.
func (m *ReportMetrics) ObserveQuery(report string, duration time.Duration, rows int) {
	if m == nil || m.queryDuration == nil {
		return
	}
	label := normalizeLabel(report)
	m.queryDuration.WithLabelValues(label).Observe(duration.Seconds())
	m.rowsReturned.WithLabelValues(label).Observe(float64(rows))
}

// IncFailure counts a failed query for the report and error code.
func (m *ReportMetrics) IncFailure(report, code string) {
	if m == nil || m.queryFailures == nil {
		return
	}
	m.queryFailures.WithLabelValues(normalizeLabel(report), normalizeLabel(code)).Inc()
}

// ObserveCacheLookup counts a summary cache lookup outcome.
func (m *ReportMetrics) ObserveCacheLookup(result string) {
	if m == nil || m.cacheLookups == nil {
		return
	}
	m.cacheLookups.WithLabelValues(normalizeLabel(result)).Inc()
}

// NewRegistry builds a private registry carrying the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// RegisterDBStats exports connection pool usage as go_sql_* series labeled
// with dbName.
func RegisterDBStats(reg prometheus.Registerer, db *sql.DB, dbName string) error {
	if reg == nil || db == nil {
		return nil
	}
	return reg.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Handler exposes the registry in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
