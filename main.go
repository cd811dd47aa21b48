package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quiz-admin/cliparse"
	"github.com/danielhkuo/quiz-admin/db"
	"github.com/danielhkuo/quiz-admin/middleware"
	"github.com/danielhkuo/quiz-admin/router"
	"github.com/danielhkuo/quiz-admin/service"
	"github.com/danielhkuo/quiz-admin/store"
)

func main() {
	var err error

	// Local .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		slog.Error("invalid database type", "error", err)
		os.Exit(1)
	}
	schema, err := db.SchemaFor(dialect)
	if err != nil {
		slog.Error("no schema for database", "error", err)
		os.Exit(1)
	}

	// Connect and create schema (tables)
	ctx := context.Background()
	dbStore, err := db.Open(ctx, cfg.DatabaseURL, schema)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer dbStore.Close()
	slog.Info("Database schema ready", "type", dialect)

	// Seed the configured admin
	if cfg.AdminEmail != "" {
		admins := service.NewAdminService(store.New(dbStore))
		if _, err := admins.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			slog.Error("admin seeding failed", "error", err)
			os.Exit(1)
		}
	}

	// Create router
	handler := router.NewRouter(dbStore, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(handler),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
