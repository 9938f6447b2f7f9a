package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ryuk156/backend-AOL/internal/config"
	"github.com/ryuk156/backend-AOL/internal/email"
	"github.com/ryuk156/backend-AOL/internal/handler"
	"github.com/ryuk156/backend-AOL/internal/jwt"
	"github.com/ryuk156/backend-AOL/internal/logger"
	"github.com/ryuk156/backend-AOL/internal/router"
	"github.com/ryuk156/backend-AOL/internal/service"
	"github.com/ryuk156/backend-AOL/internal/storage/pg"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		logger.Log.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	gateway, err := email.New(&cfg.Public, &cfg.Private)
	if err != nil {
		logger.Log.Error("failed to set up smtp gateway", "error", err)
		os.Exit(1)
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	verification := service.NewVerification(storage, storage, gateway, cfg.Public.AppBaseURL, cfg.Public.VerificationTokenTTL.Std())
	credential := service.NewCredential(storage, verification, gateway, jwtService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gc := service.NewTokenGarbageCollector(storage)
	gc.StartBackgroundCleanup(ctx, cfg.Public.TokenCleanupInterval.Std())

	h := handler.New(credential, verification, storage, cfg)
	r := router.New(h, jwtService, cfg.Public.AllowedOrigins)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("shutdown error", "error", err)
		}
	}()

	logger.Log.Info("server started", "port", httpPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("server stopped")
}
