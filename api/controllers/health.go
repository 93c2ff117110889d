package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/angelmondragon/salesdash-backend/api/responses"
	"github.com/angelmondragon/salesdash-backend/pkg/config"
	"github.com/angelmondragon/salesdash-backend/pkg/logger"
	"github.com/angelmondragon/salesdash-backend/pkg/types"
	"go.uber.org/multierr"
)

const readyProbeTimeout = 2 * time.Second

// Pinger is any dependency the readiness probe can reach.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Salesdash-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and, when configured, Redis. A nil redis
// pinger is reported as disabled.
func HealthReady(cfg *config.Config, logg *logger.Logger, db Pinger, redis Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Salesdash-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyProbeTimeout)
		defer cancel()

		checks := map[string]string{"database": "ok", "redis": "disabled"}
		var errs error
		if err := ping(ctx, db); err != nil {
			checks["database"] = "unavailable"
			errs = multierr.Append(errs, fmt.Errorf("database: %w", err))
		}
		if redis != nil {
			checks["redis"] = "ok"
			if err := ping(ctx, redis); err != nil {
				checks["redis"] = "unavailable"
				errs = multierr.Append(errs, fmt.Errorf("redis: %w", err))
			}
		}

		if errs != nil {
			if logg != nil {
				logg.Error(logg.WithField(r.Context(), "checks", checks), "health.not_ready", errs)
			}
			responses.WriteEnvelope(w, http.StatusServiceUnavailable, types.Envelope{
				Success: false,
				Data:    checks,
				Message: "Service is not ready.",
				Error:   errs.Error(),
				Code:    "NOT_READY",
			})
			return
		}

		checks["status"] = "ready"
		responses.WriteSuccess(w, checks)
	}
}

func ping(ctx context.Context, p Pinger) error {
	if p == nil {
		return fmt.Errorf("not configured")
	}
	return p.Ping(ctx)
}
