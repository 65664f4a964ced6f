package main

import (
	"fmt"

	"github.com/MKhiriev/go-user-hub/internal/adapter"
	"github.com/MKhiriev/go-user-hub/internal/client"
	"github.com/MKhiriev/go-user-hub/internal/config"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/service"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("user-hub-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	watcher := workers.NewSessionWatcher(localStorage.SessionRepository, services.Broadcaster, cfg.Workers.WatchInterval, log)
	jobs := workers.NewWorkers(watcher)

	app := client.NewApp(services, jobs, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
