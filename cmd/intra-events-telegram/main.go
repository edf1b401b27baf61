package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jgengo/intra-events-telegram/internal/api"
	"github.com/jgengo/intra-events-telegram/internal/config"
	"github.com/jgengo/intra-events-telegram/internal/logging"
	"github.com/jgengo/intra-events-telegram/internal/telegram"
	"github.com/jgengo/intra-events-telegram/internal/version"
	"github.com/jgengo/intra-events-telegram/internal/watcher"
	"github.com/jgengo/intra-events-telegram/internal/webhook"
)

func main() {
	// Handle subcommands before starting the server
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "test-telegram":
			if err := testTelegram(); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func configPath() string {
	if p := os.Getenv("IET_CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}

func run() error {
	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logManager, logger := logging.NewManager(logging.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FilePath:       cfg.Logging.FilePath,
		FileMaxSizeMB:  cfg.Logging.FileMaxSizeMB,
		FileMaxFiles:   cfg.Logging.FileMaxFiles,
		FileMaxAgeDays: cfg.Logging.FileMaxAgeDays,
	})
	defer logManager.Close() //nolint:errcheck
	slog.SetDefault(logger)

	logger.Info("starting",
		slog.String("version", version.Version),
		slog.String("environment", cfg.Environment),
	)

	registry := webhook.NewRegistry(logger)
	registry.Register(webhook.KindEvent, cfg.Webhooks.EventSecret)
	registry.Register(webhook.KindExam, cfg.Webhooks.ExamSecret)

	sink := telegram.New(cfg.Telegram.BotToken, cfg.Telegram.GroupID, logger)
	defer sink.Close()

	router := api.NewRouter(api.RouterDeps{
		Registry: registry,
		Sink:     sink,
		Logger:   logger,
		BasePath: cfg.Server.BasePath,
	})

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Hot-reload logging settings on config file changes
	go watcher.NewService(path, logManager, logger).Start(ctx)

	go func() {
		logger.Info("server starting", slog.String("addr", addr), slog.String("base_path", cfg.Server.BasePath))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// testTelegram verifies the bot credential and chat wiring: getMe, then a
// short diagnostic batch. Offline operation; the server is not started.
func testTelegram() error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, logger := logging.NewManager(logging.Config{Level: "debug", Format: "text"})

	sink := telegram.New(cfg.Telegram.BotToken, cfg.Telegram.GroupID, logger)
	defer sink.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if !sink.TestConnection(ctx) {
		return fmt.Errorf("telegram connection failed")
	}

	sent := sink.SendMessages(ctx, []string{
		"Connectivity check 1/2: webhook bridge can reach this chat.",
		"Connectivity check 2/2: batch sends are working.",
	})
	fmt.Printf("sent %d/2 test messages\n", sent)
	return nil
}
