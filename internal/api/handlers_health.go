// Propmatch - Real Estate Listing Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/propmatch

package api

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/propmatch/internal/models"
)

// breakerSource is a catalog source fetched through a circuit breaker.
type breakerSource interface {
	State() gobreaker.State
}

// HealthLive handles the Kubernetes-style liveness probe.
//
// @Summary Liveness probe
// @Description Returns 200 while the process is serving HTTP
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.healthStatus("alive"), models.Metadata{})
}

// HealthReady handles the readiness probe. The service is ready once a
// catalog snapshot has been published, even an empty one.
//
// @Summary Readiness probe
// @Description Returns 200 once the catalog is loaded, 503 before
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.store.Ready() {
		w.Header().Set("Retry-After", "5")
		respondJSON(w, r, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data:   h.healthStatus("not_ready"),
			Metadata: models.Metadata{
				Timestamp: time.Now().UTC(),
			},
			Error: &models.APIError{
				Code:    CodeCatalogUnavailable,
				Message: "Catalog has not been loaded yet",
			},
		})
		return
	}

	respondSuccess(w, r, h.healthStatus("ready"), models.Metadata{})
}

func (h *Handler) healthStatus(status string) models.HealthStatus {
	health := models.HealthStatus{
		Status: status,
		Uptime: time.Since(h.startTime).Seconds(),
	}
	if src := h.store.Source(); src != nil {
		health.CatalogSource = src.String()
		if b, ok := src.(breakerSource); ok {
			health.BreakerState = b.State().String()
		}
	}
	if snap := h.store.Snapshot(); snap != nil {
		loadedAt := snap.LoadedAt
		health.CatalogLoaded = true
		health.CatalogVersion = snap.Version
		health.Listings = snap.Len()
		health.LoadedAt = &loadedAt
	}
	return health
}
