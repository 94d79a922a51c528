package main

import (
	"context"
	"fmt"

	"github.com/bitsofme/bitsofme-client/internal/adapter"
	"github.com/bitsofme/bitsofme-client/internal/client"
	"github.com/bitsofme/bitsofme-client/internal/config"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/internal/service"
	"github.com/bitsofme/bitsofme-client/internal/session"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log := logger.New("bitsofme-client", "debug")
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("bitsofme-client", cfg.App.LogLevel)

	gateway, err := adapter.NewHTTPServerGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server gateway")
	}

	creds := session.NewCredentials()
	var store *session.FileStore
	if cfg.Session.CredentialPath != "" {
		store = session.NewFileStore(cfg.Session.CredentialPath)
	}

	services, err := service.NewServices(gateway, creds, store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app := client.NewApp(services, log)
	if err = app.Run(context.Background()); err != nil {
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
