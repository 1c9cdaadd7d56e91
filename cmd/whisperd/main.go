package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"whisperwall/auth"
	"whisperwall/clock"
	"whisperwall/domain"
	"whisperwall/domain/event"
	"whisperwall/infrastructure/grpc/server"
	"whisperwall/infrastructure/http/client"
	httpserver "whisperwall/infrastructure/http/server"
	"whisperwall/infrastructure/search"
	"whisperwall/infrastructure/storage"
	"whisperwall/internal"
	"whisperwall/observability"
	"whisperwall/ratelimit"
	"whisperwall/runtime"
	"whisperwall/runtime/workers"
	"whisperwall/services"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const shutdownTimeout = 10 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "whisperd terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Every defer (database close, listeners) runs before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()
	clk := clock.System{}

	// 2. Storage: sqlite for jobs and whispers, badger for the audit trail
	sqlDB, err := storage.OpenSQLite(config.SQLitePath, 5*time.Second)
	if err != nil {
		return exitRuntime, fmt.Errorf("sqlite opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing SQLite...")
		_ = sqlDB.Close()
	}()
	jobRepository := storage.NewJobRepository(sqlDB, logger, clk)
	whisperRepository := storage.NewWhisperRepository(sqlDB, logger, clk)
	if err := whisperRepository.EnsureSchema(ctx); err != nil {
		return exitRuntime, fmt.Errorf("whisper schema: %w", err)
	}
	if err := jobRepository.EnsureSchema(ctx); err != nil {
		return exitRuntime, fmt.Errorf("job schema: %w", err)
	}

	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	auditRepository := storage.NewAuditRepository(db, logger)

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.SearchIndexPath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Setup Supervision & Orchestration
	telemetryChan := make(chan event.Event, config.BufferSize)
	contentChan := make(chan domain.CreateWhisper, config.BufferSize)
	zones := domain.NewZones(config.ZoneList())
	tokens := auth.NewTokenManager(config.AuthSecret)
	var validator runtime.TokenValidator
	if tokens.Enabled() {
		validator = tokens.UserIDFromToken
	} else {
		logger.Warn("AUTH_SECRET is empty, authenticate events will be dropped")
	}

	sup := workers.NewSupervisor(logger, telemetryChan, config.RestartInterval)
	registry := runtime.NewRegistry(logger, clk, zones, runtime.RegistryConfig{
		IPLimit:          config.IPLimit,
		IPWindow:         config.IPWindow,
		ContentSpacing:   config.ContentSpacing,
		PulseSpacing:     config.PulseSpacing,
		IdleTimeout:      config.IdleTimeout,
		ReauthInterval:   config.ReauthInterval,
		ZoneStaleness:    config.ZoneStaleness,
		EmotionStaleness: config.EmotionStaleness,
		SinkTimeout:      config.SinkTimeout,
		CommandBuffer:    config.BufferSize,
	}, contentChan, telemetryChan, validator)
	collector := observability.NewCollector()

	orchestrator := runtime.NewOrchestrator(logger, clk, runtime.OrchestratorConfig{
		NumberOfWorkers: config.NumberOfWorkers,
		CharReplacement: charReplacement,
		Zones:           zones,
		Whisper: services.WhisperConfig{
			ReplyProbability: config.ReplyProbability,
			ReplyMinDelay:    config.ReplyMinDelay,
			ReplyMaxDelay:    config.ReplyMaxDelay,
			WhisperTTL:       config.WhisperTTL,
		},
		Scheduler: workers.SchedulerConfig{
			PollInterval:      config.PollInterval,
			BatchSize:         config.JobBatchSize,
			Concurrency:       config.JobConcurrency,
			RetryCeiling:      config.RetryCeiling,
			RetryBackoff:      config.RetryBackoff,
			GenerationTimeout: config.GenerationTimeout,
		},
		CleanupInterval:      config.CleanupInterval,
		ExpirySchedule:       config.ExpirySchedule,
		MetricInterval:       config.MetricInterval,
		LowCapacityThreshold: config.LowCapacityRatio,
	}, sup, registry, contentChan, telemetryChan, runtime.Dependencies{
		Jobs:      jobRepository,
		Whispers:  whisperRepository,
		Audit:     auditRepository,
		Index:     search.NewWhisperIndex(blugeWriter, logger),
		Generator: client.NewGenerationClient(logger, config.APIBaseURL, config.GenerationTimeout, config.GenerationRatePerSec),
		Metrics:   collector,
		Probe:     observability.NewMemoryProbe(),
		Random:    services.SystemRandom{},
	})
	if err := orchestrator.Prepare(); err != nil {
		return exitRuntime, fmt.Errorf("orchestrator preparation failed: %w", err)
	}

	healthServer := health.NewServer()
	orchestrator.Add(server.NewHealthReporter(logger, healthServer))

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		url := fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint)
		logger.Info("Debug Badger inspector available", "url", url)
		debugServer := internal.StartDebugServer(db, config.DebugPort, endpoint, AuditMapper, statsProvider(registry))
		defer func() { _ = debugServer.Close() }()
	}

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 3)
	orchestratorDone := make(chan struct{})

	// 5. Start the runtime
	go func() {
		defer close(orchestratorDone)
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 6. HTTP Server Setup
	router := httpserver.NewRouter(httpserver.RouterConfig{
		Log:            logger,
		AllowedOrigins: config.OriginList(),
		Clock:          clk,
		CreateLimiter:  ratelimit.NewFixedWindow(config.IPLimit, config.IPWindow),
		Tokens:         tokens,
		Metrics:        collector.Handler(),
		WhisperHandler: httpserver.NewWhisperHandler(orchestrator.WhisperService(), orchestrator.JobService()),
		JobHandler:     httpserver.NewJobHandler(orchestrator.JobService()),
		ZoneHandler:    httpserver.NewZoneHandler(zones, registry),
		AdminHandler:   httpserver.NewAdminHandler(auth.NewAdminLogin(tokens, config.AdminPasswordHash, config.AdminTokenTTL)),
		WebSocketHandler: httpserver.NewWebSocketHandler(logger, registry, httpserver.WebSocketConfig{
			AllowedOrigins: config.OriginList(),
			BufferSize:     config.SessionBufferSize,
		}),
	})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", config.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. gRPC Server Setup
	address := fmt.Sprintf("0.0.0.0:%d", config.GRPCPort)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	grpcServer := server.NewServer(logger, healthServer)
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range grpcServer.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 9. Graceful shutdown: stop accepting traffic, then drain the workers
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown incomplete", "error", err)
	}
	grpcServer.GracefulStop()
	orchestrator.Stop()
	select {
	case <-orchestratorDone:
	case <-shutdownCtx.Done():
		logger.Warn("Workers did not stop in time")
	}
	logger.Info("Program stopped cleanly")
	return code, runErr
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	return options
}

func AuditMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)
	entry, err := storage.DecodeAuditEntry(val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Type = string(entry.Action)
	row.EntityID = fmt.Sprintf("job %d", entry.JobID)
	row.Detail = fmt.Sprintf("target=%s status=%s %s", entry.TargetID, entry.Status, entry.Detail)
	return row
}

func statsProvider(registry *runtime.Registry) internal.StatsProvider {
	return func() map[string]any {
		stats := registry.Stats()
		return map[string]any{
			"Accepted":           stats.Accepted,
			"Rate limit drops":   stats.RateLimitDrops,
			"Validation drops":   stats.ValidationDrops,
			"Delivery drops":     stats.DeliveryDrops,
			"Backpressure drops": stats.BackpressureDrops,
			"Time":               time.Now().UTC().Format(time.RFC822),
		}
	}
}
