package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adboard/internal/api/controller"
	"adboard/internal/api/repository"
	"adboard/internal/api/service"
	"adboard/internal/config"
	"adboard/internal/db"
	"adboard/internal/logger"
	"adboard/internal/server"
	"adboard/internal/telemetry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(cfg.LogLevel)

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.Initialize(pool); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	tokenRepo := repository.NewTokenRepository(pool)
	adRepo := repository.NewAdvertisementRepository(pool)

	// Create services
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokenService := service.NewTokenService(tokenRepo)
	userService := service.NewUserService(userRepo, tokenService, hasher)
	adService := service.NewAdvertisementService(adRepo, tokenService)

	// Create controllers
	userController := controller.NewUserController(userService)
	adController := controller.NewAdvertisementController(adService)

	// Create the Gin-based server
	srv := server.NewServer(userController, adController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on %s", cfg.ServerAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
