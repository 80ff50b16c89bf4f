package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omnipdr/omnipdr/internal/api"
	"github.com/omnipdr/omnipdr/internal/catalog"
	"github.com/omnipdr/omnipdr/internal/config"
	"github.com/omnipdr/omnipdr/internal/db"
	"github.com/omnipdr/omnipdr/internal/logger"
	"github.com/omnipdr/omnipdr/internal/repository/sqlite"
	"github.com/omnipdr/omnipdr/internal/scoring"
	"github.com/omnipdr/omnipdr/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("OmniPDR Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("catalog_tolerance=%.1f", cfg.CatalogTolerance)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	students := sqlite.NewStudentRepository(database.DB)
	studentService := services.NewStudentService(students)
	scoreService := services.NewScoreService(students, scoring.NewCalculator(nil), catalog.New(nil), cfg.CatalogTolerance)

	srv := api.NewServer(studentService, scoreService)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("OmniPDR Server Stopped")
	log.Info("===========================================")
}
