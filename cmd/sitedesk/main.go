package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keelson/sitedesk/internal/client"
	"github.com/keelson/sitedesk/internal/config"
	"github.com/keelson/sitedesk/internal/session"
	"github.com/keelson/sitedesk/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Stdout belongs to the TUI, so logs go to a file or nowhere.
	logWriter := io.Writer(io.Discard)
	if cfg.Log.Path != "" {
		file, err := openLogFile(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = file
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	store, err := session.NewStore(cfg.Session.TokenPath)
	if err != nil {
		logger.Error("failed to open session store", "error", err)
		fmt.Fprintf(os.Stderr, "session error: %v\n", err)
		os.Exit(1)
	}

	api := client.New(cfg.API.BaseURL, store)
	logger.Info("starting dashboard", "api", cfg.API.BaseURL)

	program := tea.NewProgram(tui.NewModel(api), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("dashboard error", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
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
