package server

import (
	"context"
	"log/slog"
	"whisperwall/contract"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// RuntimeService is the health service name probed by operators.
const RuntimeService = "whisperwall.Runtime"

var _ contract.Worker = (*HealthReporter)(nil)

// NewServer builds the admin gRPC server. It only exposes health and reflection.
func NewServer(log *slog.Logger, hs *health.Server) *grpc.Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(log)))
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)
	return s
}

// HealthReporter reports SERVING for as long as it is supervised.
type HealthReporter struct {
	log     *slog.Logger
	health  *health.Server
	service string
}

func NewHealthReporter(log *slog.Logger, hs *health.Server) *HealthReporter {
	hs.SetServingStatus(RuntimeService, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthReporter{log: log, health: hs, service: RuntimeService}
}

func (h *HealthReporter) Run(ctx context.Context) error {
	h.health.SetServingStatus(h.service, healthpb.HealthCheckResponse_SERVING)
	h.log.Debug("Runtime reported as serving", "service", h.service)
	<-ctx.Done()
	h.health.SetServingStatus(h.service, healthpb.HealthCheckResponse_NOT_SERVING)
	h.log.Debug("Runtime reported as not serving", "service", h.service)
	return nil
}
