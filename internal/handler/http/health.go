// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/service"
	"github.com/MKhiriev/go-health-server/internal/utils"
)

// health is the liveness probe. It never consults dependencies.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, h.services.HealthService.Liveness(r.Context()), http.StatusOK)
	return err
}

// readiness answers 200 when every dependency responds and 503 with the
// per-check report otherwise.
func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) error {
	status, err := h.services.HealthService.Readiness(r.Context())

	code := http.StatusOK
	if err != nil {
		if !errors.Is(err, service.ErrNotReady) {
			return err
		}
		logger.FromRequest(r).Warn().Err(err).Msg("readiness check failed")
		code = http.StatusServiceUnavailable
	}

	_, err = utils.WriteJSON(w, status, code)
	return err
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) error {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	_, err := utils.WriteJSON(w, buildInfo.Response(), http.StatusOK)
	return err
}
