package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer serves the standard grpc.health.v1.Health service so
// orchestrators can probe the process over gRPC.
type HealthServer struct {
	grpcServer *grpc.Server
	health     *health.Server
	listener   net.Listener
	service    string
	log        *slog.Logger
}

func NewHealthServer(port, service string, log *slog.Logger) (*HealthServer, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания listener: %w", err)
	}
	return newHealthServer(listener, service, log), nil
}

func newHealthServer(listener net.Listener, service string, log *slog.Logger) *HealthServer {
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, hs)

	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	hs.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)

	return &HealthServer{
		grpcServer: grpcServer,
		health:     hs,
		listener:   listener,
		service:    service,
		log:        log,
	}
}

func (s *HealthServer) Addr() string {
	return s.listener.Addr().String()
}

// Run blocks until the server stops.
func (s *HealthServer) Run() error {
	s.log.Info("gRPC health сервер запускается", slog.String("addr", s.Addr()))
	if err := s.grpcServer.Serve(s.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("ошибка запуска gRPC сервера: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING, then stops gracefully or forcibly once ctx is done.
func (s *HealthServer) Shutdown(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("gRPC health сервер остановлен")
	case <-ctx.Done():
		s.log.Warn("timeout graceful shutdown, force stop")
		s.grpcServer.Stop()
	}
}
