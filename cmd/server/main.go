package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/internal/handler"
	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/server"
	"github.com/MKhiriev/skillvance-api/internal/service"
	"github.com/MKhiriev/skillvance-api/internal/store"
	"github.com/MKhiriev/skillvance-api/internal/workers"
	"github.com/MKhiriev/skillvance-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// startupTimeout bounds connecting, migrating and provisioning the default admin.
const startupTimeout = 30 * time.Second

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("skillvance-api")
	if err := run(build, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(build models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()

	storages, err := store.NewStorages(startupCtx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	if err = services.AuthService.EnsureDefaultAdmin(startupCtx, cfg.Bootstrap); err != nil {
		return fmt.Errorf("error provisioning default admin: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	workersCtx, stopWorkers := context.WithCancel(context.Background())
	workersDone := make(chan struct{})
	go func() {
		workers.NewWorkers(services.AuthService, cfg.Workers, log).Run(workersCtx)
		close(workersDone)
	}()

	srv.RunServer()

	stopWorkers()
	<-workersDone

	return nil
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(build.Version))
	fmt.Printf("Build date: %s\n", orNA(build.Date))
	fmt.Printf("Build commit: %s\n", orNA(build.Commit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
