package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-snooze-client/internal/adapter"
	"github.com/MKhiriev/go-snooze-client/internal/client"
	"github.com/MKhiriev/go-snooze-client/internal/config"
	"github.com/MKhiriev/go-snooze-client/internal/logger"
	"github.com/MKhiriev/go-snooze-client/internal/service"
	"github.com/MKhiriev/go-snooze-client/internal/store"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env is fine, explicit env vars and flags still apply
	_ = godotenv.Load()

	log := logger.NewClientLogger("go-snooze-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	app := client.NewApp(services, log)
	if err = app.Run(config.CommandArgs()); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
