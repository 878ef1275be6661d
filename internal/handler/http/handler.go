package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/service"
)

// RequestObserver records per-request metrics and serves them.
type RequestObserver interface {
	ObserveHTTPRequest(route, method string, status int, duration time.Duration)
	Handler() http.Handler
}

type Handler struct {
	services *service.Services
	metrics  RequestObserver

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. metrics may be nil, in which case
// requests are not observed and /metrics is not mounted.
func NewHandler(services *service.Services, metrics RequestObserver, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
