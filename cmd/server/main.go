package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"transit-ops/auth"
	"transit-ops/internal"
	"transit-ops/moderation"
	"transit-ops/observability"
	"transit-ops/repositories"
	"transit-ops/runtime"
	"transit-ops/runtime/workers"
	"transit-ops/server"
)

//go:embed censored.txt
var censoredFile embed.FS

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every deferred cleanup executes
// before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	maskChar, err := config.CharacterRune()
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLogger(nil))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	incidentStore := repositories.NewIncidentRepository(db, blugeWriter, logger)
	userStore := repositories.NewUserRepository(db, logger)

	// 3. Broadcast masking
	moderator, err := loadModerator(maskChar)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to build moderator: %w", err)
	}

	// 4. Core: registry, router, dispatcher, gate
	stats := observability.NewStats()
	registry := runtime.NewRegistry(logger)
	router := runtime.NewRouter(logger)
	dispatcher := runtime.NewDispatcher(logger, registry, router, stats, moderator, config.DeliveryTimeout)
	gate := auth.NewGate(logger, userStore, []byte(config.JWTSecret), config.AuthLookupTimeout)

	// 5. Supervised background workers
	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(
		workers.NewHeartbeatWorker(logger, registry, config.HeartbeatInterval, config.DeliveryTimeout),
		workers.NewHealthMonitoringWorker(logger, registry, stats, config.MetricInterval),
	)
	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		supervisor.Run(ctx)
	}()

	// 6. HTTP surface
	socket := server.NewSocketServer(logger, gate, registry, incidentStore, stats, config.ConnectionBufferSize)
	handlers := server.NewHandlers(logger, incidentStore, dispatcher, registry, stats)
	mux := server.NewRouter(handlers, socket)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Alert service listening", "addr", httpServer.Addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return exitRuntime, err
		}
	case <-ctx.Done():
		logger.Info("Shutdown requested")
	}

	// 7. Graceful shutdown: stop accepting, then stop workers.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Forced HTTP shutdown", "err", err)
	}
	supervisor.Stop()
	<-supervisorDone

	return exitOK, nil
}

// loadModerator builds the broadcast text filter from the embedded
// censored word list.
func loadModerator(maskChar rune) (*moderation.Moderator, error) {
	raw, err := censoredFile.ReadFile("censored.txt")
	if err != nil {
		return nil, err
	}
	var words []string
	for _, line := range strings.Split(string(raw), "\n") {
		if word := strings.TrimSpace(line); word != "" {
			words = append(words, word)
		}
	}
	return moderation.NewModerator(words, maskChar)
}
