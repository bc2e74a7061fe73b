package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/utils"
	"github.com/MKhiriev/go-health-server/models"
)

// handleError is the terminal error handler. It logs err with the request
// logger and, unless the response was already started, writes a JSON
// [models.ErrorResponse] with the mapped status code.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Int("status", status).
		Msg("request failed")

	if tw, ok := w.(*responseWriter); ok && tw.wroteHeader {
		log.Warn().Int("sent_status", tw.status).Msg("response already started, error not sent to client")
		return
	}

	resp := models.ErrorResponse{
		Status:  models.StatusError,
		Message: messageFromError(err, status),
	}
	if h.development {
		resp.Details = err.Error()
	}

	if _, writeErr := utils.WriteJSON(w, resp, status); writeErr != nil {
		log.Error().Err(writeErr).Msg("failed to write error response")
	}
}

func (h *Handler) notFound(_ http.ResponseWriter, r *http.Request) error {
	return fmt.Errorf("%w: %s %s", ErrRouteNotFound, r.Method, r.URL.Path)
}
