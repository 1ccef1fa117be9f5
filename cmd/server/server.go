package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/terrain-api/internal/config"
	"github.com/KirkDiggler/terrain-api/internal/errors"
	"github.com/KirkDiggler/terrain-api/internal/handlers/terrain/v1alpha1"
	"github.com/KirkDiggler/terrain-api/internal/imaging"
	terrainorch "github.com/KirkDiggler/terrain-api/internal/orchestrators/terrain"
	"github.com/KirkDiggler/terrain-api/internal/pkg/clock"
	"github.com/KirkDiggler/terrain-api/internal/pkg/idgen"
)

// terrainServiceName is the health service name reported for terrain generation
const terrainServiceName = "terrain.api.v1alpha1.TerrainService"

const shutdownTimeout = 30 * time.Second

var (
	envFile        string
	httpPort       int
	grpcPort       int
	frontendURL    string
	logLevel       string
	logFormat      string
	pngCompression string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP and gRPC health servers",
	Long:  `Start the terrain HTTP server along with a gRPC server exposing health and reflection.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "HTTP port (overrides HTTP_PORT)")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC port (overrides GRPC_PORT)")
	serverCmd.Flags().StringVar(&frontendURL, "frontend-url", "", "Allowed CORS origin (overrides FRONTEND_URL)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
	serverCmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: text or json (overrides LOG_FORMAT)")
	serverCmd.Flags().StringVar(&pngCompression, "png-compression", "", "PNG compression (overrides PNG_COMPRESSION)")
}

func loadServerConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("http-port") {
		cfg.HTTPPort = httpPort
	}
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("frontend-url") {
		cfg.FrontendURL = frontendURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if flags.Changed("png-compression") {
		cfg.PNGCompression = pngCompression
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	encoder, err := imaging.NewPNGEncoder(cfg.PNGCompression)
	if err != nil {
		return fmt.Errorf("failed to create encoder: %w", err)
	}

	terrainService, err := terrainorch.NewOrchestrator(&terrainorch.Config{
		Encoder:     encoder,
		IDGenerator: idgen.NewUUID(""),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create terrain orchestrator: %w", err)
	}

	terrainHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		TerrainService: terrainService,
	})
	if err != nil {
		return fmt.Errorf("failed to create terrain handler: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           v1alpha1.NewRouter(terrainHandler, v1alpha1.RouterConfig{AllowedOrigin: cfg.FrontendURL}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(terrainServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcSrv)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := grpcSrv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort, "allowed_origin", cfg.FrontendURL)
		if err := httpSrv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping")
	case err := <-errChan:
		shutdown(healthServer, grpcSrv, httpSrv)
		return err
	}

	shutdown(healthServer, grpcSrv, httpSrv)
	return nil
}

func shutdown(healthServer *health.Server, grpcSrv *grpc.Server, httpSrv *http.Server) {
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown incomplete", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		grpcSrv.Stop()
	case <-stopped:
		slog.Info("Servers stopped gracefully")
	}
}

func recoverPanic(p any) error {
	slog.Error("recovered from panic in grpc handler", "panic", p)
	return errors.ToGRPCError(errors.Internalf("panic: %v", p))
}
