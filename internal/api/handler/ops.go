package handler

import (
	"net/http"
	"time"

	"github.com/fareboard/fareboard/internal/api/models"
	"github.com/fareboard/fareboard/internal/api/response"
	"github.com/fareboard/fareboard/internal/booking"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	store     *booking.Store
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, store *booking.Store) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		store:     store,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
// The service is ready once the startup load has resolved; an empty dataset
// is ready (the dashboard serves zero-state), only a pending load is not.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.store.Status() == booking.StatusLoading {
		response.ServiceUnavailable(w, r, "dataset is still loading")
		return
	}

	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - dataset and subsystem status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())
	datasetStatus := h.store.Status()

	dataset := models.DatasetStatus{
		Status: string(datasetStatus),
	}
	if snap := h.store.Snapshot(); snap != nil {
		loadedAt := models.Timestamp(snap.LoadedAt)
		dataset.Records = len(snap.Records)
		dataset.LoadedAt = &loadedAt
	}

	storeHealth := models.HealthStatusOK
	if datasetStatus != booking.StatusReady {
		storeHealth = models.HealthStatusDegraded
	}

	status := models.SystemStatus{
		Status: storeHealth,
		Time:   now,
		Subsystems: []models.SubsystemStatus{
			{Name: "record-store", Status: storeHealth},
		},
		Dataset: dataset,
	}
	response.JSON(w, r, http.StatusOK, status)
}
