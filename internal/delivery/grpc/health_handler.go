package grpc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// ServiceName is the name callers may ask about besides the empty "whole server" name.
const ServiceName = "catalog.CatalogService"

const pingTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	healthpb.UnimplementedHealthServer
	db  Pinger
	log *logrus.Logger
}

func NewHealthHandler(db Pinger, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: logger,
	}
}

func (h *HealthHandler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		h.log.Warnf("gRPC Handler: health check for unknown service %q", svc)
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.db.PingContext(pingCtx); err != nil {
		h.log.Errorf("gRPC Handler: database ping failed: %v", err)
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}

// NewServer builds a grpc server exposing the health service and server reflection.
func NewServer(handler *HealthHandler, logger *logrus.Logger) *gogrpc.Server {
	server := gogrpc.NewServer()
	healthpb.RegisterHealthServer(server, handler)
	reflection.Register(server)
	logger.Info("gRPC health and reflection services registered")
	return server
}
