package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/khancreations/shootsync/internal/backup"
	"github.com/khancreations/shootsync/internal/cli"
	"github.com/khancreations/shootsync/internal/db"
	"github.com/khancreations/shootsync/internal/gallery"
	"github.com/khancreations/shootsync/internal/intelligence"
	"github.com/khancreations/shootsync/internal/llm"
	"github.com/khancreations/shootsync/internal/repository"
	"github.com/khancreations/shootsync/internal/service"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := newLogger()

	// DB path: env var or default ~/.shootsync/shootsync.db
	dbPath := os.Getenv("SHOOTSYNC_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".shootsync", "shootsync.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	bookingRepo := repository.NewSQLiteBookingRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	mirrorRepo := repository.NewSQLiteMirrorRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	backupSvc := backup.NewService(bookingRepo, settingsRepo, mirrorRepo, logger)

	app := &cli.App{
		Bookings: service.NewBookingService(bookingRepo, uow, backupSvc),
		Tracking: service.NewTrackingService(bookingRepo, uow, backupSvc),
		Settings: service.NewSettingsService(settingsRepo),
		Backup:   backupSvc,
		Gallery:  gallery.NewHTTPBrowser(""),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Natural-language capture only when the model is switched on.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewSlogObserver(logger)
		}
		app.Parse = intelligence.NewParseService(llm.NewOllamaClient(llmCfg, observer))
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if v := os.Getenv("SHOOTSYNC_DEBUG"); v != "" {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}))
}
