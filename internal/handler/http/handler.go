package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/service"
)

// HandlerFunc is an HTTP handler that reports failures by returning an
// error. Adapt it with [Handler.Handle].
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

type Handler struct {
	services *service.Services

	development    bool
	requestTimeout time.Duration
	maxBodyBytes   int64

	// mounts are registered inside the body parsing group by Init.
	mounts []func(r chi.Router)

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		development:    cfg.App.IsDevelopment(),
		requestTimeout: cfg.Server.RequestTimeout,
		maxBodyBytes:   cfg.Server.MaxBodyBytes,
		logger:         logger,
	}
}

// Mount adds routes to the body parsing group. It must be called before
// Init.
func (h *Handler) Mount(fn func(r chi.Router)) {
	h.mounts = append(h.mounts, fn)
}

// Handle adapts fn to an [http.HandlerFunc]. A non-nil error returned by fn
// is passed to the terminal error handler.
func (h *Handler) Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tw := trackResponse(w)
		if err := fn(tw, r); err != nil {
			h.handleError(tw, r, err)
		}
	}
}
