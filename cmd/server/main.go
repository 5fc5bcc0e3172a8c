package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atlax/atlax/internal/api"
	"github.com/atlax/atlax/internal/assets"
	"github.com/atlax/atlax/internal/auth"
	"github.com/atlax/atlax/internal/config"
	"github.com/atlax/atlax/internal/storage/sqlite"
	"github.com/atlax/atlax/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	ingestor, err := assets.NewIngestor(cfg.UploadDir, "/uploads")
	if err != nil {
		slog.Error("Failed to initialize upload directory", "error", err)
		os.Exit(1)
	}

	authn := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	server := api.New(store, authn, jwtManager, ingestor, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		WelcomeGrant:   cfg.WelcomeGrant,
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
