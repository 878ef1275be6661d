package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(compressLevel, "application/json", "text/plain"))

	router.Post("/api/subjects", h.createSubject)
	router.Get("/api/subjects", h.listSubjects)
	router.Get("/api/subjects/{id}", h.getSubject)
	router.Put("/api/subjects/{id}", h.updateSubject)
	router.Delete("/api/subjects/{id}", h.deleteSubject)
	router.Get("/api/subjects/{id}/users", h.getSubjectUsers)

	router.Get("/api/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
