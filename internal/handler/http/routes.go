package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, h.withGZip, h.withRecover)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.GetHead)

	// probes, registered before body parsing
	router.Get("/health", h.Handle(h.health))
	router.Get("/ready", h.Handle(h.readiness))
	router.Get("/version", h.Handle(h.version))

	router.Group(func(r chi.Router) {
		r.Use(h.withBodyParsing)
		for _, mount := range h.mounts {
			mount(r)
		}
	})

	notFound := h.Handle(h.notFound)
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, notFound))

	return router
}
