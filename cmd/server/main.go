package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/keelson/sitedesk/internal/config"
	"github.com/keelson/sitedesk/internal/domain/account"
	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/domain/changeorder"
	"github.com/keelson/sitedesk/internal/domain/document"
	"github.com/keelson/sitedesk/internal/domain/inspection"
	"github.com/keelson/sitedesk/internal/domain/project"
	"github.com/keelson/sitedesk/internal/server"
	"github.com/keelson/sitedesk/internal/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	services := server.Services{
		Accounts:     account.NewService(sqlite.NewProfileRepository(db), logger),
		Projects:     project.NewService(sqlite.NewProjectRepository(db), logger),
		Documents:    document.NewService(sqlite.NewDocumentRepository(db), logger),
		Bids:         bid.NewService(sqlite.NewBidRepository(db), logger),
		ChangeOrders: changeorder.NewService(sqlite.NewChangeOrderRepository(db), logger),
		Inspections:  inspection.NewService(sqlite.NewInspectionRepository(db), logger),
	}

	tokens := server.NewTokenIssuer([]byte(cfg.Auth.Secret), 24*time.Hour)
	router := server.New(services, tokens, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
