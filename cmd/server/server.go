package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/skilltree-api/internal/config"
	"github.com/KirkDiggler/skilltree-api/internal/handlers/skilltree/v1alpha1"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort     int
	store        string
	redisAddrs   []string
	sqlitePath   string
	catalogPath  string
	metricsAddr  string
	shareBaseURL string
	logLevel     string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the build planner gRPC server. Settings come from SKILLTREE_*
environment variables; flags given on the command line override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&store, "store", "memory", "build store: redis, sqlite or memory")
	serverCmd.Flags().StringSliceVar(&redisAddrs, "redis-addr", nil, "redis endpoints, more than one selects cluster mode")
	serverCmd.Flags().StringVar(&sqlitePath, "sqlite-path", "", "sqlite database file")
	serverCmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML skill catalog, defaults to the embedded catalog")
	serverCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address serving /metrics, disabled when empty")
	serverCmd.Flags().StringVar(&shareBaseURL, "share-base-url", "", "site origin used in share links")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
}

// loadServerConfig reads the environment and applies explicitly set flags
func loadServerConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("store") {
		cfg.Store = config.Store(store)
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddrs = redisAddrs
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = sqlitePath
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = metricsAddr
	}
	if flags.Changed("share-base-url") {
		cfg.ShareBaseURL = shareBaseURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := wire(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			slog.Warn("Failed to close storage", "error", err)
		}
	}()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		PlannerService: deps.planner,
	})
	if err != nil {
		return fmt.Errorf("failed to create build planner handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterBuildPlannerServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	metricsServer := startMetricsServer(cfg.MetricsAddr, deps.registry, errChan)

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping")
	case err := <-errChan:
		srv.Stop()
		return err
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Failed to stop metrics server", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}

	return nil
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	loggerFunc := interceptorLogger(logger)
	loggingOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandler(func(p any) error {
			slog.Error("Recovered from panic in handler", "panic", p)
			return status.Error(codes.Internal, "internal error")
		}),
	}

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(loggerFunc, loggingOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(loggerFunc, loggingOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
}

// interceptorLogger adapts slog to the go-grpc-middleware logger. The
// middleware levels share slog's numeric values.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// startMetricsServer serves /metrics on addr. It returns nil when addr is
// empty.
func startMetricsServer(addr string, registry *prometheus.Registry, errChan chan<- error) *http.Server {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Metrics server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("metrics server failed: %w", err)
		}
	}()

	return server
}
