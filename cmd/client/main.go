package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/skillvance-api/internal/adapter"
	"github.com/MKhiriev/skillvance-api/internal/client"
	"github.com/MKhiriev/skillvance-api/internal/config"
	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New(os.Stderr, "skillvance-client")

	cfg, command, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPAdminClient(cfg.Address, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	app, err := client.NewApp(api, models.Credentials{Identifier: cfg.Email, Secret: cfg.Password}, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, command); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	// stdout carries command output, so build info goes to stderr
	fmt.Fprintf(os.Stderr, "Build version: %s\n", orNA(build.Version))
	fmt.Fprintf(os.Stderr, "Build date: %s\n", orNA(build.Date))
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", orNA(build.Commit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
