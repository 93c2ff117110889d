package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/salesdash-backend/api/controllers"
	reportcontrollers "github.com/angelmondragon/salesdash-backend/api/controllers/reports"
	"github.com/angelmondragon/salesdash-backend/api/middleware"
	"github.com/angelmondragon/salesdash-backend/api/responses"
	"github.com/angelmondragon/salesdash-backend/internal/reports"
	"github.com/angelmondragon/salesdash-backend/pkg/config"
	"github.com/angelmondragon/salesdash-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesdash-backend/pkg/errors"
	"github.com/angelmondragon/salesdash-backend/pkg/logger"
	"github.com/angelmondragon/salesdash-backend/pkg/metrics"
)

// NewRouter mounts health, metrics and one GET route per report kind.
// redisP may be nil when Redis is not configured.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisP controllers.Pinger,
	reportService reports.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.HTTP.CORSOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(registry))
	}

	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
		for _, kind := range enums.ReportKinds() {
			r.Get("/"+kind.String(), reportcontrollers.Report(reportService, kind, logg))
		}
	})

	return r
}
