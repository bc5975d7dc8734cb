package controllers

import (
	"context"
	"net/http"
	"time"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/dto/responses"
	"tutorat-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	healthStatusUp       = "up"
	healthStatusDown     = "down"
	healthStatusDegraded = "degraded"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Log    *zap.Logger
	Checks map[string]HealthCheck
}

func NewHealthController(logger *zap.Logger, checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		Log:    logger,
		Checks: checks,
	}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	response := responses.HealthCheck{
		Status:   healthStatusUp,
		Services: make(map[string]string, len(ctrl.Checks)),
	}
	for name, check := range ctrl.Checks {
		if err := check(ctx); err != nil {
			ctrl.Log.Warn("HealthController.Health dependency down",
				zap.String("dependency", name),
				zap.Error(err),
			)
			response.Services[name] = healthStatusDown
			response.Status = healthStatusDegraded
			continue
		}
		response.Services[name] = healthStatusUp
	}

	code := constvars.StatusOK
	if response.Status != healthStatusUp {
		code = constvars.StatusServiceUnavailable
	}
	utils.BuildSuccessResponse(w, code, constvars.HealthCheckSuccessMessage, response)
}
