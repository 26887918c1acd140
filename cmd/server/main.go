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
	"team-chat/auth"
	"team-chat/domain/event"
	"team-chat/infrastructure/grpc/server"
	"team-chat/infrastructure/grpc/transport"
	"team-chat/infrastructure/httpserver"
	"team-chat/internal"
	"team-chat/moderation"
	"team-chat/observability"
	"team-chat/repositories"
	"team-chat/runtime"
	"team-chat/runtime/workers"
	"team-chat/services"
	"team-chat/sink"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal error.
// Returning instead of exiting lets the deferred closes run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) && config.DebugPort > 0 {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, internal.MessageMapper)
	}

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	moderator, err := loadModerator(logger, config, charReplacement)
	if err != nil {
		return exitConfig, fmt.Errorf("moderator loading failed: %w", err)
	}

	// 3. Supervision & Orchestration
	telemetryChan := make(chan event.Event, config.BufferSize)
	sup := workers.NewSupervisor(logger, telemetryChan, config.RestartInterval)
	monitoring := observability.NewMonitoringManager(logger)
	orchestrator := runtime.NewOrchestrator(logger, sup, runtime.NewRegistry(), monitoring,
		telemetryChan, config.BufferSize,
		config.SinkTimeout, config.MetricInterval, config.HeartbeatInterval)

	searchIndex := repositories.NewSearchIndex(blugeWriter, logger)
	searchSink := sink.NewSearchSink(searchIndex, logger, config.SearchBatch, config.SearchBufferTimeout)
	orchestrator.RegisterSinks(searchSink)

	// 4. Services
	users := repositories.NewUserRepository(db)
	members := repositories.NewMemberRepository(db)
	workspaceRepository := repositories.NewWorkspaceRepository(db)
	issuer := auth.NewTokenIssuer(config.AuthSecret, config.AuthTokenDuration)

	uploadService := services.NewUploadService(logger, repositories.NewFileRepository(db), monitoring,
		services.UploadConfig{
			BaseURL:  config.PublicBaseURL,
			TokenTTL: config.UploadTokenTTL,
			MaxBytes: config.UploadMaxBytes,
		})
	chatService := services.NewChatService(logger,
		repositories.NewMessageRepository(db, logger),
		repositories.NewReactionRepository(db),
		members, workspaceRepository, searchIndex, moderator, uploadService,
		orchestrator, monitoring,
		services.ChatConfig{MaxBodyLength: config.MaxBodyLength, MaxPageSize: config.MaxPageSize})
	workspaceService := services.NewWorkspaceService(logger, workspaceRepository, members, users)
	authService := services.NewAuthService(users, issuer)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 3)

	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 6. gRPC Server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	interceptor := auth.NewInterceptor(issuer, transport.PublicMethods...)
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			interceptor.Unary(),
		),
		grpc.ChainStreamInterceptor(interceptor.Stream()),
	)
	transport.RegisterChatServiceServer(s,
		server.NewChatServer(logger, chatService, workspaceService, authService, uploadService))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus(transport.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("📡 gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. HTTP file endpoints
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.HTTPPort),
		Handler:           httpserver.NewRouter(httpserver.NewFileHandler(logger, uploadService)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP file server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 9. Graceful Shutdown
	logger.Info("Shutting down gracefully...")
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown failed", "error", err)
	}
	s.GracefulStop()
	orchestrator.Stop()
	if err := searchSink.Flush(); err != nil {
		logger.Warn("Final search flush failed", "error", err)
	}
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

// loadModerator prefers the word lists of CENSORED_DIR over the embedded ones.
func loadModerator(logger *slog.Logger, config internal.Config, charReplacement rune) (*moderation.Moderator, error) {
	if config.CensoredDir == "" {
		return runtime.LoadModerator(logger, charReplacement)
	}
	return runtime.LoadModeratorFrom(logger, os.DirFS(config.CensoredDir), ".", charReplacement)
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
