package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const readHeaderTimeout = 5 * time.Second

// start запускает HTTP сервер и, если задан адрес, gRPC health сервер.
// Возвращается после отмены ctx и корректной остановки серверов.
func (a *App) start(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           newRouter(a.handler, a.logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 2)

	go func() {
		a.logger.Info("Starting server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	grpcServer, healthServer, err := a.startGRPC(errCh)
	if err != nil {
		return errors.Join(err, server.Close())
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("Shutdown signal received")
	case runErr = <-errCh:
		a.logger.Error("Server failed", zap.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if healthServer != nil {
		healthServer.Shutdown()
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown failed", zap.Error(err))
		return errors.Join(runErr, err)
	}

	a.logger.Info("Server stopped")
	return runErr
}

// startGRPC поднимает стандартный gRPC health сервис
func (a *App) startGRPC(errCh chan<- error) (*grpc.Server, *health.Server, error) {
	if a.config.GRPCAddress == "" {
		return nil, nil, nil
	}

	listener, err := net.Listen("tcp", a.config.GRPCAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on grpc address: %w", err)
	}

	grpcServer, healthServer := newGRPCServer()

	go func() {
		a.logger.Info("Starting gRPC health server", zap.String("address", a.config.GRPCAddress))
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- fmt.Errorf("grpc server failed: %w", err)
		}
	}()

	return grpcServer, healthServer, nil
}

// newGRPCServer создает gRPC сервер с health сервисом в статусе SERVING
func newGRPCServer() (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	return grpcServer, healthServer
}
