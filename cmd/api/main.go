package main

import (
	"context"
	"go-resume-backend/config"
	v1 "go-resume-backend/internal/delivery/http/v1"
	"go-resume-backend/internal/provider"
	"go-resume-backend/internal/repository/store"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/llm"
	"go-resume-backend/pkg/logger"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           Resume Backend API
// @version         1.0
// @description     AI polish proxy and resume document store using Clean Architecture.
// @host            localhost:3001
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume backend", "port", cfg.Port, "store", cfg.StoreDriver)

	// 3. Setup Store Backend
	backend, err := newBackend(cfg)
	if err != nil {
		logger.Log.Error("Failed to open store backend", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	resumeStore, err := store.New(context.Background(), backend, cfg.Doubao.ModelID)
	if err != nil {
		logger.Log.Error("Failed to load store state", "error", err)
		os.Exit(1)
	}

	// 4. Setup Providers
	registry := provider.NewRegistry(cfg)
	for _, p := range registry.List() {
		logger.Log.Info("Registered AI provider", "provider", p.ID, "mode", p.Mode())
	}
	chat := llm.NewClient(cfg.PolishTimeout)

	// 5. Setup UseCases
	validate := validator.New()
	polishUC := usecase.NewPolishUsecase(registry, chat, cfg.SystemPrompt, cfg.MockDelay)
	resumeUC := usecase.NewResumeUsecase(resumeStore, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		PolishUC: polishUC,
		ResumeUC: resumeUC,
		Registry: registry,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.StoreDriver {
	case "memory":
		return store.NewMemoryBackend(), nil
	case "sqlite":
		return store.NewSQLiteBackend(cfg.StorePath)
	case "postgres":
		return store.NewPostgresBackend(context.Background(), cfg.DBUrl)
	default:
		return store.NewFileBackend(cfg.StorePath)
	}
}
