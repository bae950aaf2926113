package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/rotikita/rotikita-backend/api/responses"
	"github.com/rotikita/rotikita-backend/pkg/config"
	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
	"github.com/rotikita/rotikita-backend/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is the readiness surface a backing dependency exposes.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RotiKita-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RotiKita-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		checks["database"] = "ok"
		if dbP == nil {
			checks["database"] = "not configured"
			healthy = false
		} else if err := dbP.Ping(ctx); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}

		checks["redis"] = "ok"
		if redisP == nil {
			checks["redis"] = "not configured"
			healthy = false
		} else if err := redisP.Ping(ctx); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		}

		if !healthy {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "service not ready").WithDetails(checks))
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
