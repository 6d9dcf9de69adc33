package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alauddinGen-Z/SLA/internal/common"
	"github.com/alauddinGen-Z/SLA/internal/export"
	"github.com/alauddinGen-Z/SLA/internal/llm/gemini"
	"github.com/alauddinGen-Z/SLA/internal/pipeline"
	"github.com/alauddinGen-Z/SLA/internal/repository"
	"github.com/alauddinGen-Z/SLA/internal/server"
	"github.com/alauddinGen-Z/SLA/internal/storage"
)

func main() {
	cfg := common.LoadConfig()

	logger := common.InitLogger(&cfg.Log)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Info("configuration loaded successfully")

	ctx := context.Background()

	store, err := storage.NewMinioStore(&cfg.Storage)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Error("failed to ensure storage bucket", "error", err)
		os.Exit(1)
	}

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	contracts := repository.NewContractRepository(entc, logger)
	incidents := repository.NewIncidentRepository(entc, logger)
	claims := repository.NewClaimRepository(entc, logger)

	generator := gemini.NewClient(gemini.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	paralegal := pipeline.NewParalegal(store, generator, contracts, logger)
	enforcer := pipeline.NewEnforcer(generator, contracts, claims, logger)
	exporter := export.NewService(logger)

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(cfg, logger, paralegal, enforcer, store, contracts, incidents, claims, exporter, pool)

	httpSrv := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      srv.Router(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", cfg.Server.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited gracefully")
}
