// Package grpc exposes the service's gRPC surface: the standard
// grpc.health.v1 health service and server reflection, used by
// orchestration probes.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/go-subjects/internal/logger"
)

// SubjectsServiceName is the health-check service name reported next to
// the overall ("") server status.
const SubjectsServiceName = "subjects.v1.Subjects"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows storage availability. A
// handler instance is created once at startup and shared by the gRPC
// server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both the overall and the subjects
// service status start as SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus(SubjectsServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		health: hs,
		logger: logger,
	}
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// SetStorageUp flips the reported status between SERVING and NOT_SERVING.
func (h *Handler) SetStorageUp(up bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if up {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(SubjectsServiceName, status)
}

// Shutdown marks every service NOT_SERVING so probes fail while the server
// drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
